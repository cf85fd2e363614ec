package httputil

import (
	"encoding/json"
	"net/http"
)

// ErrorResp is the body of every API error response.
type ErrorResp struct {
	Message string `json:"message"`
}

// WriteRawJSON writes v as the JSON response body with the given status.
// HTML characters are not escaped so paths and messages stay readable.
func WriteRawJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteError writes an ErrorResp with the given status.
func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteRawJSON(w, status, ErrorResp{Message: message})
}
