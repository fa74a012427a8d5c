package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"tenderdesk/internal/config"
)

// ParseJSON decodes JSON from the request body into the given
// destination, capping the body size.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxJSONBytes)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
