package field

// Snapshot is a point-in-time view of a cell's observable state.
type Snapshot[V, E any] struct {
	Value     V
	Hint      E
	HasHint   bool
	SavePoint V
}

// Cell tracks a single input value, the hint recorded by its last
// validation, and the save point Reset restores. The value lives in a
// Store; the hint and save point are owned by the cell itself.
//
// A cell is an isolated unit of state: instances share nothing and are not
// safe for concurrent use.
type Cell[V, E any] struct {
	store      Store[V]
	validate   Validator[V, E]
	staticHint E
	savePoint  V
	hint       E
	hasHint    bool
	onChange   func(Snapshot[V, E])
}

// Option configures a cell during construction.
type Option[V, E any] func(*Cell[V, E])

// WithOnChange registers fn to be called with a fresh snapshot after every
// operation that may change observable state. This is the explicit
// notify step hosts hook re-rendering into.
func WithOnChange[V, E any](fn func(Snapshot[V, E])) Option[V, E] {
	return func(c *Cell[V, E]) {
		c.onChange = fn
	}
}

// New creates a cell holding initial in an ImmediateStore, with no hint
// recorded and the save point baselined to initial. staticHint is recorded
// whenever validate fails without a hint of its own.
//
// Panics if validate is nil, following the fail-fast construction pattern:
// a cell without a validator is a programming error, not a runtime
// condition.
func New[V, E any](initial V, staticHint E, validate Validator[V, E], opts ...Option[V, E]) *Cell[V, E] {
	return NewWithStore(NewImmediateStore(initial), staticHint, validate, opts...)
}

// NewWithStore creates a cell over a caller-supplied store. The save point
// baselines to the value the store reports at construction time; the store
// must be seeded before the cell is created.
func NewWithStore[V, E any](store Store[V], staticHint E, validate Validator[V, E], opts ...Option[V, E]) *Cell[V, E] {
	if store == nil {
		panic("field: nil store")
	}
	if validate == nil {
		panic("field: nil validator")
	}

	c := &Cell[V, E]{
		store:      store,
		validate:   validate,
		staticHint: staticHint,
		savePoint:  store.Value(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Value returns the value the store currently exposes.
func (c *Cell[V, E]) Value() V {
	return c.store.Value()
}

// Set replaces the current value. The hint and save point are untouched
// and no validation runs.
func (c *Cell[V, E]) Set(v V) {
	c.store.Set(v)
	c.notify()
}

// Update replaces the value with fn applied to the value current when the
// store applies the write. Under a batching store, queued updates compose
// in order instead of overwriting each other from stale reads.
func (c *Cell[V, E]) Update(fn func(V) V) {
	c.store.Update(fn)
	c.notify()
}

// Validate runs the validator against the value the store reports now and
// records the outcome. It is the only operation that sets a hint. Under a
// batching store, a write from the same tick may not have been applied
// yet, so Validate can observe the previous value.
func (c *Cell[V, E]) Validate() bool {
	res := c.validate(c.store.Value())
	if res.OK() {
		c.clearHint()
		c.notify()
		return true
	}

	if hint, ok := res.Hint(); ok {
		c.hint = hint
	} else {
		c.hint = c.staticHint
	}
	c.hasHint = true
	c.notify()
	return false
}

// Reset restores the save point as the current value and clears the hint.
// Unconditional: it does not consult the validator.
func (c *Cell[V, E]) Reset() {
	c.store.Set(c.savePoint)
	c.clearHint()
	c.notify()
}

// Commit advances the save point to the current value. The value and hint
// are untouched.
func (c *Cell[V, E]) Commit() {
	c.savePoint = c.store.Value()
	c.notify()
}

// CommitValue advances the save point to v regardless of the current
// value. The value and hint are untouched.
func (c *Cell[V, E]) CommitValue(v V) {
	c.savePoint = v
	c.notify()
}

// Hint returns the hint recorded by the last failing Validate.
func (c *Cell[V, E]) Hint() (E, bool) {
	return c.hint, c.hasHint
}

// Valid reports whether no hint is recorded.
func (c *Cell[V, E]) Valid() bool {
	return !c.hasHint
}

// SavePoint returns the value Reset would restore.
func (c *Cell[V, E]) SavePoint() V {
	return c.savePoint
}

// Snapshot returns the cell's current observable state.
func (c *Cell[V, E]) Snapshot() Snapshot[V, E] {
	return Snapshot[V, E]{
		Value:     c.store.Value(),
		Hint:      c.hint,
		HasHint:   c.hasHint,
		SavePoint: c.savePoint,
	}
}

func (c *Cell[V, E]) clearHint() {
	var zero E
	c.hint = zero
	c.hasHint = false
}

func (c *Cell[V, E]) notify() {
	if c.onChange != nil {
		c.onChange(c.Snapshot())
	}
}
