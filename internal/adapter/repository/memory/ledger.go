package memory

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// CheckConsistency sums every committed entry and counts unbalanced references.
func (r *LedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var debit, credit decimal.Decimal
	var unbalanced int64
	for _, entries := range r.store.entries {
		var d, c decimal.Decimal
		for _, e := range entries {
			d = d.Add(e.Debit)
			c = c.Add(e.Credit)
		}
		if !d.Equal(c) {
			unbalanced++
		}
		debit = debit.Add(d)
		credit = credit.Add(c)
	}
	return debit, credit, unbalanced, nil
}
