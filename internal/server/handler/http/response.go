package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avagyan/expense-tracker/internal/apperrors"
)

// writeJSON serializes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a JSON error response. Application errors carry
// their own status; anything else is an unexpected failure reported as 500
// with the raw error string. The field parameter names the JSON key holding
// the message ("message" on auth endpoints, "msg" on expense endpoints).
func writeError(w http.ResponseWriter, field string, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, map[string]string{field: appErr.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{field: err.Error()})
}
