package field

// Validator checks a value and reports the outcome as a Result.
// It must be a pure function of its argument: validating the same value
// twice yields the same Result. A panicking validator is a contract
// violation and the panic propagates to the caller of Validate.
type Validator[V, E any] func(V) Result[E]

// Result is the outcome of a single validation run. The zero value is an
// invalid result without a hint.
type Result[E any] struct {
	valid  bool
	hinted bool
	hint   E
}

// Valid reports the value as acceptable.
func Valid[E any]() Result[E] {
	return Result[E]{valid: true}
}

// Invalid reports the value as unacceptable without further detail.
// A cell receiving this result records its static hint.
func Invalid[E any]() Result[E] {
	return Result[E]{}
}

// InvalidHint reports the value as unacceptable with a hint carrying
// context-specific detail.
func InvalidHint[E any](hint E) Result[E] {
	return Result[E]{hinted: true, hint: hint}
}

// OK reports whether the result marks the value as acceptable.
func (r Result[E]) OK() bool {
	return r.valid
}

// Hint returns the dynamic hint if the result carries one.
func (r Result[E]) Hint() (E, bool) {
	return r.hint, r.hinted
}

// Predicate adapts a plain boolean predicate into a Validator.
// A false return maps to Invalid, so the cell's static hint applies.
func Predicate[V, E any](fn func(V) bool) Validator[V, E] {
	return func(v V) Result[E] {
		if fn(v) {
			return Valid[E]()
		}
		return Invalid[E]()
	}
}
