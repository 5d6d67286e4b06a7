// Package shared holds response helpers used by every HTTP handler.
package shared

import (
	"encoding/json"
	"net/http"

	"contactsdemo/pkg/domainerrors"
)

// ErrorResponse is the JSON envelope for every error the API returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err onto an HTTP status and writes the error envelope.
// Internal errors are reported without their underlying detail.
func WriteError(w http.ResponseWriter, err error) {
	code := domainerrors.CodeOf(err)
	status := domainerrors.ToHTTPStatus(code)

	description := err.Error()
	if status >= http.StatusInternalServerError && code == domainerrors.CodeInternal {
		description = "internal error"
	}

	WriteJSON(w, status, ErrorResponse{
		Error:            string(code),
		ErrorDescription: description,
	})
}
