package fieldkit

import "github.com/google/uuid"

// HintElementID returns the DOM id of the hint element belonging to a
// field. Deterministic, so server-rendered markup and later patches agree.
func HintElementID(fieldName string) string {
	return fieldName + "-hint"
}

// NewFieldName generates a unique name for a field that has no natural
// one, e.g. rows of a dynamically grown list.
func NewFieldName() string {
	return "field-" + uuid.NewString()
}
