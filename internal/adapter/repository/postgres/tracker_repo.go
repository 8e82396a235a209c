package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// TrackerRepository implements usecase.TrackerRepository with optimistic
// versioning on every update.
type TrackerRepository struct {
	queries *generated.Queries
}

// NewTrackerRepository creates a new TrackerRepository.
func NewTrackerRepository(pool *pgxpool.Pool) *TrackerRepository {
	return newTrackerRepository(pool)
}

func newTrackerRepository(db querier) *TrackerRepository {
	return &TrackerRepository{queries: generated.New(db)}
}

// Create inserts a tracker at version 1.
func (r *TrackerRepository) Create(ctx context.Context, tracker *domain.TransactionTracker) error {
	n, err := r.queries.CreateTracker(ctx, generated.CreateTrackerParams{
		Reference:     tracker.Reference,
		Payload:       tracker.Payload,
		Status:        string(tracker.Status),
		HasPassed:     tracker.HasPassed,
		NumberOfRetry: int32(tracker.NumberOfRetry),
		LastError:     tracker.LastError,
		NextAttemptAt: optionalTimestamptz(tracker.NextAttemptAt),
		CreatedAt:     timeToPgTimestamptz(tracker.CreatedAt),
		UpdatedAt:     timeToPgTimestamptz(tracker.UpdatedAt),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTrackerExists, tracker.Reference)
	}

	tracker.Version = 1

	return nil
}

// Get returns the tracker of a reference.
func (r *TrackerRepository) Get(ctx context.Context, reference string) (*domain.TransactionTracker, error) {
	row, err := r.queries.GetTracker(ctx, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTrackerNotFound, reference)
		}

		return nil, err
	}

	return rowToTracker(row), nil
}

// Update writes the tracker when its version is current.
func (r *TrackerRepository) Update(ctx context.Context, tracker *domain.TransactionTracker) error {
	n, err := r.queries.UpdateTracker(ctx, generated.UpdateTrackerParams{
		Reference:     tracker.Reference,
		Status:        string(tracker.Status),
		HasPassed:     tracker.HasPassed,
		NumberOfRetry: int32(tracker.NumberOfRetry),
		LastError:     tracker.LastError,
		NextAttemptAt: optionalTimestamptz(tracker.NextAttemptAt),
		UpdatedAt:     timeToPgTimestamptz(tracker.UpdatedAt),
		Version:       tracker.Version,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.Get(ctx, tracker.Reference); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s at version %d", domain.ErrTrackerConflict, tracker.Reference, tracker.Version)
	}

	tracker.Version++

	return nil
}

// ListByStatus returns trackers in a status ordered by creation.
func (r *TrackerRepository) ListByStatus(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error) {
	rows, err := r.queries.ListTrackersByStatus(ctx, generated.ListTrackersByStatusParams{
		Status: string(status),
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToTrackers(rows), nil
}

// ListDue returns trackers the retry worker should pick up.
func (r *TrackerRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.TransactionTracker, error) {
	rows, err := r.queries.ListDueTrackers(ctx, generated.ListDueTrackersParams{
		Now:         timeToPgTimestamptz(now),
		StaleBefore: timeToPgTimestamptz(now.Add(-usecase.StalePendingAfter)),
		Limit:       int32(limit),
	})
	if err != nil {
		return nil, err
	}

	return rowsToTrackers(rows), nil
}

func rowsToTrackers(rows []generated.TransactionTracker) []*domain.TransactionTracker {
	out := make([]*domain.TransactionTracker, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToTracker(row))
	}

	return out
}

func rowToTracker(row generated.TransactionTracker) *domain.TransactionTracker {
	return &domain.TransactionTracker{
		Reference:     row.Reference,
		Payload:       row.Payload,
		Status:        domain.TrackerStatus(row.Status),
		HasPassed:     row.HasPassed,
		NumberOfRetry: int(row.NumberOfRetry),
		LastError:     row.LastError,
		NextAttemptAt: timestamptzPtr(row.NextAttemptAt),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
		Version:       row.Version,
	}
}
