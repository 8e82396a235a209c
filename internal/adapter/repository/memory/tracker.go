package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// TrackerRepository implements usecase.TrackerRepository.
type TrackerRepository struct {
	store *Store
}

// NewTrackerRepository creates a new TrackerRepository.
func NewTrackerRepository(store *Store) *TrackerRepository {
	return &TrackerRepository{store: store}
}

// Create stores a new tracker.
func (r *TrackerRepository) Create(ctx context.Context, tracker *domain.TransactionTracker) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.trackers[tracker.Reference]; ok {
		return fmt.Errorf("%w: %s", domain.ErrTrackerExists, tracker.Reference)
	}
	tracker.Version = 1
	r.store.trackers[tracker.Reference] = copyTracker(tracker)
	return nil
}

// Get returns the tracker of a reference.
func (r *TrackerRepository) Get(ctx context.Context, reference string) (*domain.TransactionTracker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.trackers[reference]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTrackerNotFound, reference)
	}
	cp := copyTracker(&t)
	return &cp, nil
}

// Update writes the tracker when its version is current.
func (r *TrackerRepository) Update(ctx context.Context, tracker *domain.TransactionTracker) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.trackers[tracker.Reference]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrTrackerNotFound, tracker.Reference)
	}
	if stored.Version != tracker.Version {
		return fmt.Errorf("%w: %s at version %d, have %d", domain.ErrTrackerConflict, tracker.Reference, stored.Version, tracker.Version)
	}
	tracker.Version++
	r.store.trackers[tracker.Reference] = copyTracker(tracker)
	return nil
}

// ListByStatus returns trackers in a status ordered by creation.
func (r *TrackerRepository) ListByStatus(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error) {
	return r.list(func(t *domain.TransactionTracker) bool { return t.Status == status }, limit, offset), nil
}

// ListDue returns trackers the retry worker should pick up.
func (r *TrackerRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.TransactionTracker, error) {
	stale := now.Add(-usecase.StalePendingAfter)
	return r.list(func(t *domain.TransactionTracker) bool {
		switch t.Status {
		case domain.TrackerRetrying:
			return t.NextAttemptAt != nil && !t.NextAttemptAt.After(now)
		case domain.TrackerPending:
			return !t.UpdatedAt.After(stale)
		}
		return false
	}, limit, 0), nil
}

func (r *TrackerRepository) list(match func(*domain.TransactionTracker) bool, limit, offset int) []*domain.TransactionTracker {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []*domain.TransactionTracker
	for _, t := range r.store.trackers {
		if match(&t) {
			cp := copyTracker(&t)
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Reference < out[j].Reference
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func copyTracker(t *domain.TransactionTracker) domain.TransactionTracker {
	cp := *t
	cp.Payload = append([]byte(nil), t.Payload...)
	if t.NextAttemptAt != nil {
		next := *t.NextAttemptAt
		cp.NextAttemptAt = &next
	}
	return cp
}
