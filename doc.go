// Package fieldkit glues single-field validation cells to hypermedia UI
// hosts.
//
// The state logic itself lives in pkg/field: a Cell tracks one input
// value, the hint from its last validation, and the save point Reset
// restores. This root package covers the host boundary around a cell:
//
//   - Binding a submitted form value into a cell (BindForm,
//     BindAndValidate)
//   - Publishing cell state as DataStar signals over SSE
//     (PatchFieldSignals, PatchFieldHint)
//   - Steering HTMX responses at a field's hint element (RetargetHint,
//     TriggerInvalidEvent)
//   - Stable element and signal naming (HintElementID, NewFieldName)
//
// Basic server-side round trip:
//
//	cell := field.New("", rules.Hint{Message: "invalid email"},
//		rules.All(rules.Required(), rules.Email()),
//	)
//
//	func handle(w http.ResponseWriter, r *http.Request) {
//		ok, err := fieldkit.BindAndValidate(r, "email", cell)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		if fieldkit.IsDataStar(r) {
//			sse := fieldkit.NewDataStarSSE(w, r)
//			_ = fieldkit.PatchFieldSignals(sse, "email", cell)
//			return
//		}
//		if !ok {
//			fieldkit.RetargetHint(w, "email")
//		}
//		// render as usual
//	}
//
// The package is router-agnostic: everything works against plain
// net/http handlers.
package fieldkit
