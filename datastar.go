package fieldkit

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/fieldkit/pkg/field"
)

// DataStar detection constants
const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam is the query parameter used by DataStar for signals
	DataStarQueryParam = "datastar"
)

// IsDataStar checks if the request is a DataStar request.
// DataStar requests typically accept Server-Sent Events (SSE) and may include
// signals in the query parameter or request body.
func IsDataStar(r *http.Request) bool {
	// Check Accept header for SSE
	accept := r.Header.Get("Accept")
	if strings.Contains(accept, DataStarAcceptHeader) {
		return true
	}

	// Check for DataStar query parameter
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}

	// Check Content-Type for DataStar-specific types
	contentType := r.Header.Get("Content-Type")
	return strings.Contains(contentType, "application/x-datastar")
}

// NewDataStarSSE creates a new Server-Sent Event generator for DataStar responses.
// This is a wrapper around the DataStar SDK's NewSSE function.
func NewDataStarSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

// FieldSignals is the JSON shape published for one field: the current
// value, the hint from the last failing validation (null while valid), and
// the validity flag.
type FieldSignals[V, E any] struct {
	Value V    `json:"value"`
	Error *E   `json:"error"`
	Valid bool `json:"valid"`
}

// PatchFieldSignals publishes the cell's current state as a signal named
// after the field, so client-side expressions like $email.valid stay in
// sync with the server-side cell.
func PatchFieldSignals[V, E any](sse *datastar.ServerSentEventGenerator, name string, c *field.Cell[V, E]) error {
	snap := c.Snapshot()

	signals := FieldSignals[V, E]{
		Value: snap.Value,
		Valid: !snap.HasHint,
	}
	if snap.HasHint {
		signals.Error = &snap.Hint
	}

	data, err := json.Marshal(map[string]any{name: signals})
	if err != nil {
		return fmt.Errorf("fieldkit: marshal signals for field %q: %w", name, err)
	}
	return sse.PatchSignals(data)
}

// PatchFieldHint morphs the field's hint element to show message, or to an
// empty element when message is empty. The message is HTML-escaped.
func PatchFieldHint(sse *datastar.ServerSentEventGenerator, fieldName, message string) error {
	id := HintElementID(fieldName)
	element := fmt.Sprintf(`<span id=%q class="field-hint">%s</span>`,
		id, template.HTMLEscapeString(message))
	return sse.PatchElements(element, datastar.WithSelector("#"+id))
}
