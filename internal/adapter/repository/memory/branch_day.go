package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// BranchDayRepository implements usecase.BranchDayRepository. Every branch
// has one barrier: postings hold it shared, a day close holds it exclusively.
type BranchDayRepository struct {
	store *Store
}

// NewBranchDayRepository creates a new BranchDayRepository.
func NewBranchDayRepository(store *Store) *BranchDayRepository {
	return &BranchDayRepository{store: store}
}

// Admit takes a shared hold on the branch barrier and rejects dates on or
// before the latest closed day of the branch.
func (r *BranchDayRepository) Admit(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time) error {
	t := asTx(tx)
	date = domain.BusinessDate(date)

	if err := t.hold(ctx, r.store.barriers.get(branchID), 1); err != nil {
		return err
	}

	r.store.mu.RLock()
	last, closedAny := r.store.lastClosed[branchID]
	r.store.mu.RUnlock()
	if closedAny && !date.After(last) {
		return fmt.Errorf("%w: branch %s day %s", domain.ErrBranchDayClosed, branchID, date.Format(domain.DateLayout))
	}

	key := dayKey(branchID, date)
	return t.stage(func(s *Store) {
		if _, ok := s.branchDays[key]; !ok {
			s.branchDays[key] = &domain.BranchDay{BranchID: branchID, BusinessDate: date, Status: domain.BranchDayOpen}
		}
	})
}

// BeginClose takes the exclusive hold on the branch barrier. New postings
// queue behind it while in-flight ones drain.
func (r *BranchDayRepository) BeginClose(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time, drainTimeout time.Duration) (*domain.BranchDay, error) {
	t := asTx(tx)
	date = domain.BusinessDate(date)

	waitCtx, cancel := context.WithTimeout(ctx, drainTimeout)
	defer cancel()
	if err := t.hold(waitCtx, r.store.barriers.get(branchID), barrierWeight); err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: branch %s after %s", domain.ErrDayCloseNotQuiescent, branchID, drainTimeout)
		}
		return nil, err
	}

	return r.Get(ctx, branchID, date)
}

// MarkClosed stages the closed status of the branch day.
func (r *BranchDayRepository) MarkClosed(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time, closedAt time.Time) error {
	date = domain.BusinessDate(date)
	key := dayKey(branchID, date)

	return asTx(tx).stage(func(s *Store) {
		day, ok := s.branchDays[key]
		if !ok {
			day = &domain.BranchDay{BranchID: branchID, BusinessDate: date}
			s.branchDays[key] = day
		}
		at := closedAt
		day.Status = domain.BranchDayClosed
		day.CloseAttempts++
		day.LastError = ""
		day.ClosedAt = &at
		if last, ok := s.lastClosed[branchID]; !ok || date.After(last) {
			s.lastClosed[branchID] = date
		}
	})
}

// RecordFailure counts a failed close attempt.
func (r *BranchDayRepository) RecordFailure(ctx context.Context, branchID string, date time.Time, message string, at time.Time) error {
	date = domain.BusinessDate(date)
	key := dayKey(branchID, date)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day, ok := r.store.branchDays[key]
	if !ok {
		day = &domain.BranchDay{BranchID: branchID, BusinessDate: date, Status: domain.BranchDayOpen}
		r.store.branchDays[key] = day
	}
	day.CloseAttempts++
	day.LastError = message
	return nil
}

// Get returns the branch day, or an open day if it was never touched.
func (r *BranchDayRepository) Get(ctx context.Context, branchID string, date time.Time) (*domain.BranchDay, error) {
	date = domain.BusinessDate(date)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if day, ok := r.store.branchDays[dayKey(branchID, date)]; ok {
		cp := *day
		return &cp, nil
	}
	return &domain.BranchDay{BranchID: branchID, BusinessDate: date, Status: domain.BranchDayOpen}, nil
}

// ListOpenBefore returns the open days of a branch before date, oldest first.
func (r *BranchDayRepository) ListOpenBefore(ctx context.Context, branchID string, date time.Time) ([]*domain.BranchDay, error) {
	date = domain.BusinessDate(date)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.BranchDay
	for _, day := range r.store.branchDays {
		if day.BranchID == branchID && day.Status == domain.BranchDayOpen && day.BusinessDate.Before(date) {
			cp := *day
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BusinessDate.Before(out[j].BusinessDate) })
	return out, nil
}
