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

// BranchDayRepository implements usecase.BranchDayRepository. Postings hold
// a shared advisory lock on the branch, a day close holds it exclusively.
type BranchDayRepository struct {
	queries *generated.Queries
}

// NewBranchDayRepository creates a new BranchDayRepository.
func NewBranchDayRepository(pool *pgxpool.Pool) *BranchDayRepository {
	return newBranchDayRepository(pool)
}

func newBranchDayRepository(db querier) *BranchDayRepository {
	return &BranchDayRepository{queries: generated.New(db)}
}

// Admit takes the shared branch lock and rejects dates on or before the
// latest closed day of the branch.
func (r *BranchDayRepository) Admit(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())
	date = domain.BusinessDate(date)

	if err := queries.LockBranchShared(ctx, branchID); err != nil {
		return err
	}

	last, err := queries.GetLastClosedDate(ctx, branchID)
	if err != nil {
		return err
	}
	if last.Valid && !date.After(pgDateToTime(last)) {
		return fmt.Errorf("%w: branch %s day %s", domain.ErrBranchDayClosed, branchID, date.Format(domain.DateLayout))
	}

	return queries.EnsureBranchDay(ctx, generated.EnsureBranchDayParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(date),
	})
}

// BeginClose takes the exclusive branch lock, giving in-flight postings
// drainTimeout to commit, and locks the branch day row.
func (r *BranchDayRepository) BeginClose(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time, drainTimeout time.Duration) (*domain.BranchDay, error) {
	queries := generated.New(tx.(*Tx).PgxTx())
	date = domain.BusinessDate(date)

	if err := queries.SetLockTimeout(ctx, fmt.Sprintf("%dms", drainTimeout.Milliseconds())); err != nil {
		return nil, err
	}
	if err := queries.LockBranchExclusive(ctx, branchID); err != nil {
		if hasPgCode(err, pgErrLockNotAvailable) {
			return nil, fmt.Errorf("%w: branch %s after %s", domain.ErrDayCloseNotQuiescent, branchID, drainTimeout)
		}

		return nil, err
	}
	if err := queries.SetLockTimeout(ctx, "0"); err != nil {
		return nil, err
	}

	key := generated.EnsureBranchDayParams{BranchID: branchID, BusinessDate: dateToPgDate(date)}
	if err := queries.EnsureBranchDay(ctx, key); err != nil {
		return nil, err
	}

	row, err := queries.GetBranchDayForUpdate(ctx, generated.GetBranchDayForUpdateParams(key))
	if err != nil {
		return nil, err
	}

	return rowToBranchDay(row), nil
}

// MarkClosed records the branch day as closed.
func (r *BranchDayRepository) MarkClosed(ctx context.Context, tx usecase.Transaction, branchID string, date time.Time, closedAt time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.MarkBranchDayClosed(ctx, generated.MarkBranchDayClosedParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
		ClosedAt:     timeToPgTimestamptz(closedAt),
	})
}

// RecordFailure counts a failed close attempt outside the close transaction.
func (r *BranchDayRepository) RecordFailure(ctx context.Context, branchID string, date time.Time, message string, at time.Time) error {
	return r.queries.RecordBranchDayFailure(ctx, generated.RecordBranchDayFailureParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
		LastError:    message,
	})
}

// Get returns the branch day, or an open day if it was never touched.
func (r *BranchDayRepository) Get(ctx context.Context, branchID string, date time.Time) (*domain.BranchDay, error) {
	date = domain.BusinessDate(date)

	row, err := r.queries.GetBranchDay(ctx, generated.GetBranchDayParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(date),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.BranchDay{BranchID: branchID, BusinessDate: date, Status: domain.BranchDayOpen}, nil
		}

		return nil, err
	}

	return rowToBranchDay(row), nil
}

// ListOpenBefore returns the open days of a branch before date, oldest first.
func (r *BranchDayRepository) ListOpenBefore(ctx context.Context, branchID string, date time.Time) ([]*domain.BranchDay, error) {
	rows, err := r.queries.ListOpenBranchDaysBefore(ctx, generated.ListOpenBranchDaysBeforeParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
	})
	if err != nil {
		return nil, err
	}

	days := make([]*domain.BranchDay, 0, len(rows))
	for _, row := range rows {
		days = append(days, rowToBranchDay(row))
	}

	return days, nil
}

func rowToBranchDay(row generated.BranchDay) *domain.BranchDay {
	return &domain.BranchDay{
		BranchID:      row.BranchID,
		BusinessDate:  pgDateToTime(row.BusinessDate),
		Status:        domain.BranchDayStatus(row.Status),
		CloseAttempts: int(row.CloseAttempts),
		LastError:     row.LastError,
		ClosedAt:      timestamptzPtr(row.ClosedAt),
	}
}
