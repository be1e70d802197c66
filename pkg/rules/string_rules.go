package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Required fails for strings that are empty after trimming whitespace.
func Required() field.Validator[string, Hint] {
	return func(v string) field.Result[Hint] {
		if strings.TrimSpace(v) == "" {
			return field.InvalidHint(Hint{
				Message:        "field is required",
				TranslationKey: "validation.required",
			})
		}
		return field.Valid[Hint]()
	}
}

// MinLen fails for strings shorter than min bytes.
func MinLen(min int) field.Validator[string, Hint] {
	return func(v string) field.Result[Hint] {
		if len(v) < min {
			return field.InvalidHint(Hint{
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"min": min,
				},
			})
		}
		return field.Valid[Hint]()
	}
}

// MaxLen fails for strings longer than max bytes.
func MaxLen(max int) field.Validator[string, Hint] {
	return func(v string) field.Result[Hint] {
		if len(v) > max {
			return field.InvalidHint(Hint{
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"max": max,
				},
			})
		}
		return field.Valid[Hint]()
	}
}

// Match fails for strings not matching re. The message describes the
// expected format to the user; the raw pattern goes into the translation
// values.
func Match(re *regexp.Regexp, message string) field.Validator[string, Hint] {
	return func(v string) field.Result[Hint] {
		if !re.MatchString(v) {
			return field.InvalidHint(Hint{
				Message:        message,
				TranslationKey: "validation.pattern",
				TranslationValues: map[string]any{
					"pattern": re.String(),
				},
			})
		}
		return field.Valid[Hint]()
	}
}

// Email fails for strings that are not a bare RFC 5322 address.
// Display names ("Alice <alice@example.com>") are rejected.
func Email() field.Validator[string, Hint] {
	invalid := field.InvalidHint(Hint{
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	})
	return func(v string) field.Result[Hint] {
		if strings.TrimSpace(v) == "" {
			return invalid
		}
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return invalid
		}
		return field.Valid[Hint]()
	}
}
