package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// DayCloseRepository implements usecase.DayCloseRepository.
type DayCloseRepository struct {
	store *Store
}

// NewDayCloseRepository creates a new DayCloseRepository.
func NewDayCloseRepository(store *Store) *DayCloseRepository {
	return &DayCloseRepository{store: store}
}

// Save stages a successful close.
func (r *DayCloseRepository) Save(ctx context.Context, tx usecase.Transaction, close *domain.CloseOfDayData) error {
	cp := copyClose(close)
	return asTx(tx).stage(func(s *Store) {
		byDate, ok := s.closes[cp.BranchID]
		if !ok {
			byDate = make(map[string]domain.CloseOfDayData)
			s.closes[cp.BranchID] = byDate
		}
		byDate[cp.BusinessDate.Format(domain.DateLayout)] = cp
	})
}

// Get returns the close of a branch day.
func (r *DayCloseRepository) Get(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.closes[branchID][domain.BusinessDate(date).Format(domain.DateLayout)]
	if !ok {
		return nil, fmt.Errorf("%w: branch %s day %s", domain.ErrDayNotClosed, branchID, date.Format(domain.DateLayout))
	}
	cp := copyClose(&c)
	return &cp, nil
}

// GetLatestBefore returns the latest close strictly before date, or nil.
func (r *DayCloseRepository) GetLatestBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	date = domain.BusinessDate(date)
	return r.latest(branchID, func(d time.Time) bool { return d.Before(date) }), nil
}

// GetLatestOnOrBefore returns the latest close on or before date, or nil.
func (r *DayCloseRepository) GetLatestOnOrBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	date = domain.BusinessDate(date)
	return r.latest(branchID, func(d time.Time) bool { return !d.After(date) }), nil
}

func (r *DayCloseRepository) latest(branchID string, match func(time.Time) bool) *domain.CloseOfDayData {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var best *domain.CloseOfDayData
	for _, c := range r.store.closes[branchID] {
		if !match(c.BusinessDate) {
			continue
		}
		if best == nil || c.BusinessDate.After(best.BusinessDate) {
			cp := copyClose(&c)
			best = &cp
		}
	}
	return best
}

func copyClose(c *domain.CloseOfDayData) domain.CloseOfDayData {
	cp := *c
	cp.Accounts = append([]domain.EndOfDayData(nil), c.Accounts...)
	cp.EntryReferences = append([]string(nil), c.EntryReferences...)
	return cp
}
