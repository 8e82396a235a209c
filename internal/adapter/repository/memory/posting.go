package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// PostingRepository implements usecase.PostingRepository.
type PostingRepository struct {
	store *Store
}

// NewPostingRepository creates a new PostingRepository.
func NewPostingRepository(store *Store) *PostingRepository {
	return &PostingRepository{store: store}
}

// GetByReference returns the committed entries of a reference in line order.
func (r *PostingRepository) GetByReference(ctx context.Context, reference string) ([]*domain.PostedEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := r.store.entries[reference]
	out := make([]*domain.PostedEntry, 0, len(stored))
	for i := range stored {
		e := stored[i]
		out = append(out, &e)
	}
	return out, nil
}

// GetHeader returns the header of a reference.
func (r *PostingRepository) GetHeader(ctx context.Context, reference string) (*domain.PostingHeader, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	h, ok := r.store.headers[reference]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPostingNotFound, reference)
	}
	return &h, nil
}

// LockAccountDays holds one exclusive lock per account-day until tx ends.
func (r *PostingRepository) LockAccountDays(ctx context.Context, tx usecase.Transaction, keys []domain.AccountDayKey) error {
	t := asTx(tx)
	for _, k := range keys {
		if err := t.hold(ctx, r.store.locks.get("acct:"+k.String()), 1); err != nil {
			return err
		}
	}
	return nil
}

// CreateHeader reserves the reference for tx. A second writer of the same
// reference waits until the first transaction ends.
func (r *PostingRepository) CreateHeader(ctx context.Context, tx usecase.Transaction, header *domain.PostingHeader) error {
	t := asTx(tx)
	if err := t.hold(ctx, r.store.locks.get("ref:"+header.Reference), 1); err != nil {
		return err
	}

	r.store.mu.RLock()
	_, exists := r.store.headers[header.Reference]
	r.store.mu.RUnlock()
	if exists {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePosting, header.Reference)
	}

	h := *header
	return t.stage(func(s *Store) {
		s.headers[h.Reference] = h
	})
}

// CreateEntries stages the entries of one reference.
func (r *PostingRepository) CreateEntries(ctx context.Context, tx usecase.Transaction, entries []*domain.PostedEntry) error {
	if len(entries) == 0 {
		return nil
	}
	copied := make([]domain.PostedEntry, 0, len(entries))
	for _, e := range entries {
		copied = append(copied, *e)
	}
	ref := copied[0].TransactionReference

	return asTx(tx).stage(func(s *Store) {
		s.entries[ref] = append(s.entries[ref], copied...)
	})
}

// SumByBranchDay aggregates movements of a branch on one value date.
func (r *PostingRepository) SumByBranchDay(ctx context.Context, branchID string, date time.Time) ([]domain.AccountMovement, error) {
	date = domain.BusinessDate(date)
	return r.sum(branchID, func(d time.Time) bool { return d.Equal(date) }), nil
}

// SumByBranchRange aggregates movements with value dates in (after, through].
func (r *PostingRepository) SumByBranchRange(ctx context.Context, branchID string, after, through time.Time) ([]domain.AccountMovement, error) {
	through = domain.BusinessDate(through)
	return r.sum(branchID, func(d time.Time) bool {
		return (after.IsZero() || d.After(after)) && !d.After(through)
	}), nil
}

func (r *PostingRepository) sum(branchID string, match func(time.Time) bool) []domain.AccountMovement {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	byAccount := make(map[string]*domain.AccountMovement)
	for _, entries := range r.store.entries {
		for _, e := range entries {
			if e.BranchID != branchID || !match(e.ValueDate) {
				continue
			}
			m, ok := byAccount[e.AccountID]
			if !ok {
				m = &domain.AccountMovement{AccountID: e.AccountID, AccountNumber: e.AccountNumber}
				byAccount[e.AccountID] = m
			}
			m.Debit = m.Debit.Add(e.Debit)
			m.Credit = m.Credit.Add(e.Credit)
			m.EntryCount++
		}
	}

	out := make([]domain.AccountMovement, 0, len(byAccount))
	for _, m := range byAccount {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountNumber < out[j].AccountNumber })
	return out
}

// ListReferencesByBranchDay returns the sorted references touching a branch day.
func (r *PostingRepository) ListReferencesByBranchDay(ctx context.Context, branchID string, date time.Time) ([]string, error) {
	date = domain.BusinessDate(date)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var refs []string
	for ref, entries := range r.store.entries {
		for _, e := range entries {
			if e.BranchID == branchID && e.ValueDate.Equal(date) {
				refs = append(refs, ref)
				break
			}
		}
	}
	sort.Strings(refs)
	return refs, nil
}
