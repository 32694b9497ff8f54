package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sportvest/sportvest/internal/common"
	"github.com/sportvest/sportvest/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"message": message,
		"success": false,
	})
}

// writeDomainError maps a service error onto the wire contract: validation
// and credential failures are 400, denied-or-absent resources are 404 so an
// outsider cannot probe what exists, and everything else is a generic 500
// with the detail kept in the log.
func writeDomainError(ctx context.Context, w http.ResponseWriter, logger logging.Logger, err error) {
	switch {
	case errors.Is(err, common.ErrNotFoundOrDenied):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrMissingField),
		errors.Is(err, common.ErrPasswordMismatch),
		errors.Is(err, common.ErrWeakPassword),
		errors.Is(err, common.ErrUsernameTaken),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrMissingIdentity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error(ctx, "request failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
