package handler

import (
	"context"
	"net/http"

	"github.com/corebank/ledgerengine/internal/adapter/http/dto"
	"github.com/corebank/ledgerengine/internal/domain"
)

// AuditReader lists recorded operator actions.
type AuditReader interface {
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// AuditHandler handles audit trail requests.
type AuditHandler struct {
	audit AuditReader
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(audit AuditReader) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns audit entries newest first, filtered by the actor, action,
// resource_type and resource_id query parameters.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := parseIntQuery(r, "limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	offset := parseIntQuery(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	logs, err := h.audit.List(r.Context(), domain.AuditFilter{
		Actor:        q.Get("actor"),
		Action:       domain.AuditAction(q.Get("action")),
		ResourceType: q.Get("resource_type"),
		ResourceID:   q.Get("resource_id"),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		writeDomainError(w, r, "failed to list audit logs", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AuditLogsFromDomain(logs))
}
