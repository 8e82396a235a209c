package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/corebank/ledgerengine/internal/adapter/http/dto"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// PostingService resolves, posts and reverses operations.
type PostingService interface {
	ResolveAndPost(ctx context.Context, cmd domain.PostingCommand) (*usecase.PostingResult, *domain.TransactionTracker, error)
	Preview(ctx context.Context, cmd domain.PostingCommand) ([]domain.AccountingEntry, error)
	Reverse(ctx context.Context, reference string) (*usecase.PostingResult, error)
	GetPosting(ctx context.Context, reference string) (*usecase.PostingResult, error)
}

// PostingHandler handles posting-related HTTP requests.
type PostingHandler struct {
	postings PostingService
	clock    usecase.Clock
}

// NewPostingHandler creates a new PostingHandler.
func NewPostingHandler(postings PostingService, clock usecase.Clock) *PostingHandler {
	return &PostingHandler{postings: postings, clock: clock}
}

// Create resolves and posts an operation. A replay of a committed
// reference answers 200, a fresh posting 201, and a posting whose tracker
// is still retrying 202.
func (h *PostingHandler) Create(w http.ResponseWriter, r *http.Request) {
	cmd, ok := h.decodeCommand(w, r)
	if !ok {
		return
	}
	cmd.PostedBy = domain.ActorFromContext(r.Context())

	result, tracker, err := h.postings.ResolveAndPost(r.Context(), cmd)
	if err != nil {
		if tracker != nil && (tracker.Status == domain.TrackerRetrying || tracker.Status == domain.TrackerPending) {
			writeJSON(w, http.StatusAccepted, dto.TrackerFromDomain(tracker))
			return
		}
		writeDomainError(w, r, "failed to post operation", err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, dto.PostingFromResult(result, tracker))
}

// Preview resolves an operation without posting it.
func (h *PostingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	cmd, ok := h.decodeCommand(w, r)
	if !ok {
		return
	}

	lines, err := h.postings.Preview(r.Context(), cmd)
	if err != nil {
		writeDomainError(w, r, "failed to resolve operation", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PreviewFromEntries(lines))
}

// Get retrieves a posted entry set by reference.
func (h *PostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "reference")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "missing reference", "")
		return
	}

	result, err := h.postings.GetPosting(r.Context(), ref)
	if err != nil {
		writeDomainError(w, r, "failed to get posting", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PostingFromResult(result, nil))
}

// Reverse posts the offsetting entry set of a reference.
func (h *PostingHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "reference")
	if ref == "" {
		writeError(w, http.StatusBadRequest, "missing reference", "")
		return
	}

	result, err := h.postings.Reverse(r.Context(), ref)
	if err != nil {
		writeDomainError(w, r, "failed to reverse posting", err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, dto.PostingFromResult(result, nil))
}

func (h *PostingHandler) decodeCommand(w http.ResponseWriter, r *http.Request) (domain.PostingCommand, bool) {
	var req dto.PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return domain.PostingCommand{}, false
	}

	cmd, err := req.ToCommand(h.clock.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return domain.PostingCommand{}, false
	}
	return cmd, true
}
