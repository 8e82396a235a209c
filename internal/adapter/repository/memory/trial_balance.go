package memory

import (
	"context"

	"github.com/corebank/ledgerengine/internal/domain"
)

// TrialBalanceRepository implements usecase.TrialBalanceRepository.
type TrialBalanceRepository struct {
	store *Store
}

// NewTrialBalanceRepository creates a new TrialBalanceRepository.
func NewTrialBalanceRepository(store *Store) *TrialBalanceRepository {
	return &TrialBalanceRepository{store: store}
}

// Save stores a generated trial balance.
func (r *TrialBalanceRepository) Save(ctx context.Context, file *domain.TrialBalanceFile) error {
	cp := *file
	cp.Lines = append([]domain.TrialBalanceLine(nil), file.Lines...)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.trialFiles[file.Reference.ID] = cp
	return nil
}

// Count returns how many trial balances were stored.
func (r *TrialBalanceRepository) Count() int {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.trialFiles)
}
