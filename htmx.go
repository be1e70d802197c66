package fieldkit

import (
	"encoding/json"
	"net/http"
)

// HTMX header constants
const (
	// Request headers
	HXRequest     = "HX-Request"
	HXBoosted     = "HX-Boosted"
	HXTarget      = "HX-Target"
	HXTrigger     = "HX-Trigger"
	HXTriggerName = "HX-Trigger-Name"

	// Response headers
	HXReswap   = "HX-Reswap"
	HXRetarget = "HX-Retarget"
	HXReselect = "HX-Reselect"
)

// InvalidFieldEvent is the client-side event fired by TriggerInvalidEvent.
const InvalidFieldEvent = "fieldkit:invalid"

// IsHTMX checks if the request is an HTMX request
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HXRequest) == "true"
}

// IsHTMXBoosted checks if the request is an HTMX boosted request
func IsHTMXBoosted(r *http.Request) bool {
	return r.Header.Get(HXBoosted) == "true"
}

// GetHTMXTriggerName returns the name of the triggered element if it exists
func GetHTMXTriggerName(r *http.Request) string {
	return r.Header.Get(HXTriggerName)
}

// RetargetHint redirects the HTMX swap at the field's hint element, so a
// failed validation response replaces the hint instead of the form.
func RetargetHint(w http.ResponseWriter, fieldName string) {
	w.Header().Set(HXRetarget, "#"+HintElementID(fieldName))
	w.Header().Set(HXReswap, "outerHTML")
}

// TriggerInvalidEvent fires the fieldkit:invalid event on the client with
// the failing field's name and hint message as the event detail.
func TriggerInvalidEvent(w http.ResponseWriter, fieldName, message string) error {
	payload, err := json.Marshal(map[string]any{
		InvalidFieldEvent: map[string]string{
			"field":   fieldName,
			"message": message,
		},
	})
	if err != nil {
		return err
	}
	w.Header().Set(HXTrigger, string(payload))
	return nil
}
