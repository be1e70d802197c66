// Package rules provides ready-made validators for field cells.
//
// Each builder returns a field.Validator that fails with a Hint carrying a
// human-readable message plus a translation key and values, so hints can
// be rendered directly or passed through an i18n layer. Combine validators
// with All, or apply one conditionally with When.
//
// Example:
//
//	cell := field.New("", rules.Hint{Message: "invalid email"},
//		rules.All(
//			rules.Required(),
//			rules.Email(),
//		),
//	)
package rules

import (
	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Numeric covers the built-in number types the numeric builders accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Hint describes why a value failed validation, with translation support.
type Hint struct {
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// String returns the plain message, so a Hint can be dropped into any
// string-rendering context.
func (h Hint) String() string {
	return h.Message
}

// All combines validators; the first failing result wins. With no
// validators every value passes.
func All[V, E any](validators ...field.Validator[V, E]) field.Validator[V, E] {
	return func(v V) field.Result[E] {
		for _, validate := range validators {
			if res := validate(v); !res.OK() {
				return res
			}
		}
		return field.Valid[E]()
	}
}

// When applies validate only to values for which cond holds; other values
// pass untouched.
func When[V, E any](cond func(V) bool, validate field.Validator[V, E]) field.Validator[V, E] {
	return func(v V) field.Result[E] {
		if !cond(v) {
			return field.Valid[E]()
		}
		return validate(v)
	}
}
