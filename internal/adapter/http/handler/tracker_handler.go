package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/corebank/ledgerengine/internal/adapter/http/dto"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// TrackerService administers transaction trackers.
type TrackerService interface {
	Get(ctx context.Context, reference string) (*domain.TransactionTracker, error)
	List(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error)
	RetryFailed(ctx context.Context, reference string) (*usecase.PostingResult, *domain.TransactionTracker, error)
}

// TrackerHandler handles tracker requests.
type TrackerHandler struct {
	trackers TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackers TrackerService) *TrackerHandler {
	return &TrackerHandler{trackers: trackers}
}

// List lists trackers by status, failed by default.
func (h *TrackerHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.TrackerFailed
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseTrackerStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid status", err.Error())
			return
		}
		status = parsed
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	trackers, err := h.trackers.List(r.Context(), status, limit, offset)
	if err != nil {
		writeDomainError(w, r, "failed to list trackers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrackersFromDomain(trackers))
}

// Get returns the tracker of a reference.
func (h *TrackerHandler) Get(w http.ResponseWriter, r *http.Request) {
	tracker, err := h.trackers.Get(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		writeDomainError(w, r, "failed to get tracker", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrackerFromDomain(tracker))
}

// Retry requeues a failed tracker and runs it.
func (h *TrackerHandler) Retry(w http.ResponseWriter, r *http.Request) {
	result, tracker, err := h.trackers.RetryFailed(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		if tracker != nil && tracker.Status != domain.TrackerPosted {
			writeJSON(w, mapDomainError(err), dto.TrackerFromDomain(tracker))
			return
		}
		writeDomainError(w, r, "failed to retry tracker", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostingFromResult(result, tracker))
}
