package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/corebank/ledgerengine/internal/adapter/http/dto"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// DayCloseService closes branch days and reports balances.
type DayCloseService interface {
	CloseDay(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error)
	GetDayClose(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error)
	GetTrialBalance(ctx context.Context, branchID string, asOf time.Time) (*domain.TrialBalanceFile, error)
}

// DayCloseHandler handles day close and trial balance requests.
type DayCloseHandler struct {
	closes DayCloseService
	clock  usecase.Clock
}

// NewDayCloseHandler creates a new DayCloseHandler.
func NewDayCloseHandler(closes DayCloseService, clock usecase.Clock) *DayCloseHandler {
	return &DayCloseHandler{closes: closes, clock: clock}
}

// Close runs the day close of a branch. A failed close is reported with
// was_processing_successful=false next to the error status.
func (h *DayCloseHandler) Close(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchID")
	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	result, err := h.closes.CloseDay(r.Context(), branchID, date)
	if err != nil {
		if result != nil {
			writeJSON(w, mapDomainError(err), dto.DayCloseFromDomain(result))
			return
		}
		writeDomainError(w, r, "failed to close day", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DayCloseFromDomain(result))
}

// Get returns a stored day close.
func (h *DayCloseHandler) Get(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchID")
	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	result, err := h.closes.GetDayClose(r.Context(), branchID, date)
	if err != nil {
		writeDomainError(w, r, "failed to get day close", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DayCloseFromDomain(result))
}

// TrialBalance returns branch balances as of the as_of query date, today
// when omitted.
func (h *DayCloseHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "branchID")

	asOf := domain.BusinessDate(h.clock.Now())
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		d, err := domain.ParseBusinessDate(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid as_of", err.Error())
			return
		}
		asOf = d
	}

	file, err := h.closes.GetTrialBalance(r.Context(), branchID, asOf)
	if err != nil {
		writeDomainError(w, r, "failed to build trial balance", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromDomain(file))
}
