package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jobboard/internal/apperror"
)

// errorResponse is the envelope every failed request carries. Message is a
// single string for most failures and a list when several validation
// problems are reported together; clients normalize both forms.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

// writeError writes the JSON error envelope with the given status.
func writeError(w http.ResponseWriter, status int, message any) {
	writeJSON(w, status, errorResponse{Error: errorBody{Message: message, Status: status}})
}

// writeAppError maps a service error onto its HTTP status. Anything outside
// the taxonomy is an infrastructure failure: it is logged with the request
// ID and collapsed to a generic 500 so no store detail reaches callers.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperror.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperror.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperror.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v request_id=%s", err, requestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
