package memory

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// AuditRepository implements usecase.AuditRepository.
type AuditRepository struct {
	store *Store
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(store *Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// Create appends an audit entry immediately.
func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	assignAuditID(log)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.audit = append(r.store.audit, *log)
	return nil
}

// CreateTx stages an audit entry with the transaction.
func (r *AuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	assignAuditID(log)
	cp := *log
	return asTx(tx).stage(func(s *Store) {
		s.audit = append(s.audit, cp)
	})
}

// List returns matching entries, newest first.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.AuditLog
	skipped := 0
	for i := len(r.store.audit) - 1; i >= 0; i-- {
		l := r.store.audit[i]
		if !auditMatches(l, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		cp := l
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func assignAuditID(log *domain.AuditLog) {
	if log.ID == "" {
		log.ID = ulid.Make().String()
	}
}

func auditMatches(l domain.AuditLog, f domain.AuditFilter) bool {
	switch {
	case f.Actor != "" && l.Actor != f.Actor:
		return false
	case f.Action != "" && l.Action != f.Action:
		return false
	case f.ResourceType != "" && l.ResourceType != f.ResourceType:
		return false
	case f.ResourceID != "" && l.ResourceID != f.ResourceID:
		return false
	}
	return true
}
