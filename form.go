package fieldkit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// Form binding errors
var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrMissingField         = errors.New("missing form field")
)

// BindForm reads the named field of an application/x-www-form-urlencoded
// request body into the cell via Set. The cell's hint and save point stay
// untouched and no validation runs.
func BindForm[E any](r *http.Request, name string, c *field.Cell[string, E]) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
	}

	// Extract media type without parameters
	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	if mediaType != "application/x-www-form-urlencoded" {
		return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	if !r.PostForm.Has(name) {
		return fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	c.Set(r.PostForm.Get(name))
	return nil
}

// BindAndValidate binds the submitted value and validates it in one step.
// The boolean mirrors Validate's return. The cell must use an immediate
// store: under a batched store the validation would observe the value from
// before the bind.
func BindAndValidate[E any](r *http.Request, name string, c *field.Cell[string, E]) (bool, error) {
	if err := BindForm(r, name, c); err != nil {
		return false, err
	}
	return c.Validate(), nil
}
