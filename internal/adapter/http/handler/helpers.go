package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/corebank/ledgerengine/internal/adapter/http/dto"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/logger"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status and writes it. Server-side
// failures are logged with the request's logger.
func writeDomainError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := mapDomainError(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(message)
	}
	writeError(w, status, message, err.Error())
}

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrPostingNotFound, http.StatusNotFound},
	{domain.ErrTrackerNotFound, http.StatusNotFound},
	{domain.ErrDayNotClosed, http.StatusNotFound},
	{domain.ErrAccountNotFound, http.StatusNotFound},

	{domain.ErrInvalidAmount, http.StatusBadRequest},
	{domain.ErrInvalidReference, http.StatusBadRequest},

	{domain.ErrBranchDayClosed, http.StatusConflict},
	{domain.ErrPreviousDayNotClosed, http.StatusConflict},
	{domain.ErrCannotReverseReversal, http.StatusConflict},
	{domain.ErrDuplicatePosting, http.StatusConflict},
	{domain.ErrConcurrentPosting, http.StatusConflict},
	{domain.ErrTrackerConflict, http.StatusConflict},
	{domain.ErrTrackerFailed, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},

	{domain.ErrUnknownEvent, http.StatusUnprocessableEntity},
	{domain.ErrUnknownAttribute, http.StatusUnprocessableEntity},
	{domain.ErrRuleNotFound, http.StatusUnprocessableEntity},
	{domain.ErrRuleConflict, http.StatusUnprocessableEntity},
	{domain.ErrInvalidRuleSet, http.StatusUnprocessableEntity},
	{domain.ErrMappingNotFound, http.StatusUnprocessableEntity},
	{domain.ErrShareConfigInvalid, http.StatusUnprocessableEntity},
	{domain.ErrInvalidConfig, http.StatusUnprocessableEntity},
	{domain.ErrAccountNotLeaf, http.StatusUnprocessableEntity},
	{domain.ErrInvalidEntry, http.StatusUnprocessableEntity},
	{domain.ErrMissingAttribute, http.StatusUnprocessableEntity},
	{domain.ErrUnbalancedEntry, http.StatusUnprocessableEntity},
	{domain.ErrDayCloseUnbalanced, http.StatusUnprocessableEntity},
	{domain.ErrTrialBalanceUnbalanced, http.StatusUnprocessableEntity},

	{domain.ErrDayCloseNotQuiescent, http.StatusServiceUnavailable},
	{usecase.ErrNoSnapshot, http.StatusServiceUnavailable},
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateParam reads a YYYY-MM-DD URL parameter.
func parseDateParam(r *http.Request, key string) (time.Time, error) {
	raw := chi.URLParam(r, key)
	d, err := domain.ParseBusinessDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q is not a YYYY-MM-DD date", key, raw)
	}
	return d, nil
}
