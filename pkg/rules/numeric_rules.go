package rules

import (
	"fmt"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Min fails for values below min.
func Min[T Numeric](min T) field.Validator[T, Hint] {
	return func(v T) field.Result[Hint] {
		if v < min {
			return field.InvalidHint(Hint{
				Message:        fmt.Sprintf("must be at least %v", min),
				TranslationKey: "validation.min",
				TranslationValues: map[string]any{
					"min": min,
				},
			})
		}
		return field.Valid[Hint]()
	}
}

// Max fails for values above max.
func Max[T Numeric](max T) field.Validator[T, Hint] {
	return func(v T) field.Result[Hint] {
		if v > max {
			return field.InvalidHint(Hint{
				Message:        fmt.Sprintf("must be at most %v", max),
				TranslationKey: "validation.max",
				TranslationValues: map[string]any{
					"max": max,
				},
			})
		}
		return field.Valid[Hint]()
	}
}

// Between fails for values outside the inclusive [min, max] range.
func Between[T Numeric](min, max T) field.Validator[T, Hint] {
	return func(v T) field.Result[Hint] {
		if v < min || v > max {
			return field.InvalidHint(Hint{
				Message:        fmt.Sprintf("must be between %v and %v", min, max),
				TranslationKey: "validation.between",
				TranslationValues: map[string]any{
					"min": min,
					"max": max,
				},
			})
		}
		return field.Valid[Hint]()
	}
}
