package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// PostingRepository implements usecase.PostingRepository.
type PostingRepository struct {
	queries *generated.Queries
}

// NewPostingRepository creates a new PostingRepository.
func NewPostingRepository(pool *pgxpool.Pool) *PostingRepository {
	return newPostingRepository(pool)
}

func newPostingRepository(db querier) *PostingRepository {
	return &PostingRepository{queries: generated.New(db)}
}

// GetByReference returns the committed entries of a reference in line order.
func (r *PostingRepository) GetByReference(ctx context.Context, reference string) ([]*domain.PostedEntry, error) {
	rows, err := r.queries.ListPostedEntries(ctx, reference)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.PostedEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToPostedEntry(row))
	}

	return entries, nil
}

// GetHeader returns the header of a reference.
func (r *PostingRepository) GetHeader(ctx context.Context, reference string) (*domain.PostingHeader, error) {
	row, err := r.queries.GetPosting(ctx, reference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPostingNotFound, reference)
		}

		return nil, err
	}

	return &domain.PostingHeader{
		Reference:       row.Reference,
		EventCode:       row.EventCode,
		AttributeCode:   row.AttributeCode,
		ReversalOf:      row.ReversalOf.String,
		SnapshotVersion: row.SnapshotVersion,
		LineCount:       int(row.LineCount),
		PostedBy:        row.PostedBy,
		PostedAt:        row.PostedAt.Time,
	}, nil
}

// LockAccountDays takes one transaction-scoped advisory lock per key.
func (r *PostingRepository) LockAccountDays(ctx context.Context, tx usecase.Transaction, keys []domain.AccountDayKey) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	for _, k := range keys {
		if err := queries.LockAccountDay(ctx, "acct:"+k.String()); err != nil {
			return err
		}
	}

	return nil
}

// CreateHeader inserts the posting header. A concurrent writer of the same
// reference blocks on the primary key until the first transaction ends.
func (r *PostingRepository) CreateHeader(ctx context.Context, tx usecase.Transaction, header *domain.PostingHeader) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	n, err := queries.CreatePosting(ctx, generated.CreatePostingParams{
		Reference:       header.Reference,
		EventCode:       header.EventCode,
		AttributeCode:   header.AttributeCode,
		ReversalOf:      optionalText(header.ReversalOf),
		SnapshotVersion: header.SnapshotVersion,
		LineCount:       int32(header.LineCount),
		PostedBy:        header.PostedBy,
		PostedAt:        timeToPgTimestamptz(header.PostedAt),
	})
	if err != nil {
		if hasPgCode(err, pgErrUniqueViolation) {
			// the partial index on reversal_of: the original is already reversed
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePosting, header.Reference)
		}

		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrDuplicatePosting, header.Reference)
	}

	return nil
}

// CreateEntries inserts the entries of one reference.
func (r *PostingRepository) CreateEntries(ctx context.Context, tx usecase.Transaction, entries []*domain.PostedEntry) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	for _, e := range entries {
		err := queries.CreatePostedEntry(ctx, generated.CreatePostedEntryParams{
			ID:                   e.ID,
			TransactionReference: e.TransactionReference,
			LineNo:               int32(e.LineNo),
			AccountID:            e.AccountID,
			AccountNumber:        e.AccountNumber,
			BranchID:             e.BranchID,
			Debit:                decimalToNumeric(e.Debit),
			Credit:               decimalToNumeric(e.Credit),
			ValueDate:            dateToPgDate(e.ValueDate),
			Description:          e.Description,
			EventCode:            e.EventCode,
			AttributeCode:        e.AttributeCode,
			ReversalOf:           optionalText(e.ReversalOf),
			PostedBy:             e.PostedBy,
			PostedAt:             timeToPgTimestamptz(e.PostedAt),
		})
		if err != nil {
			return fmt.Errorf("entry %d of %s: %w", e.LineNo, e.TransactionReference, err)
		}
	}

	return nil
}

// SumByBranchDay aggregates movements of a branch on one value date.
func (r *PostingRepository) SumByBranchDay(ctx context.Context, branchID string, date time.Time) ([]domain.AccountMovement, error) {
	rows, err := r.queries.SumByBranchDay(ctx, generated.SumByBranchDayParams{
		BranchID:  branchID,
		ValueDate: dateToPgDate(domain.BusinessDate(date)),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.AccountMovement, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AccountMovement{
			AccountID:     row.AccountID,
			AccountNumber: row.AccountNumber,
			Debit:         numericToDecimal(row.Debit),
			Credit:        numericToDecimal(row.Credit),
			EntryCount:    int(row.EntryCount),
		})
	}

	return out, nil
}

// SumByBranchRange aggregates movements with value dates in (after, through].
func (r *PostingRepository) SumByBranchRange(ctx context.Context, branchID string, after, through time.Time) ([]domain.AccountMovement, error) {
	var lower pgtype.Date
	if !after.IsZero() {
		lower = dateToPgDate(domain.BusinessDate(after))
	}

	rows, err := r.queries.SumByBranchRange(ctx, generated.SumByBranchRangeParams{
		BranchID: branchID,
		After:    lower,
		Through:  dateToPgDate(domain.BusinessDate(through)),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.AccountMovement, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AccountMovement{
			AccountID:     row.AccountID,
			AccountNumber: row.AccountNumber,
			Debit:         numericToDecimal(row.Debit),
			Credit:        numericToDecimal(row.Credit),
			EntryCount:    int(row.EntryCount),
		})
	}

	return out, nil
}

// ListReferencesByBranchDay returns the sorted references touching a branch day.
func (r *PostingRepository) ListReferencesByBranchDay(ctx context.Context, branchID string, date time.Time) ([]string, error) {
	return r.queries.ListReferencesByBranchDay(ctx, generated.ListReferencesByBranchDayParams{
		BranchID:  branchID,
		ValueDate: dateToPgDate(domain.BusinessDate(date)),
	})
}

func rowToPostedEntry(row generated.PostedEntry) *domain.PostedEntry {
	return &domain.PostedEntry{
		ID:                   row.ID,
		TransactionReference: row.TransactionReference,
		LineNo:               int(row.LineNo),
		AccountID:            row.AccountID,
		AccountNumber:        row.AccountNumber,
		BranchID:             row.BranchID,
		Debit:                numericToDecimal(row.Debit),
		Credit:               numericToDecimal(row.Credit),
		ValueDate:            pgDateToTime(row.ValueDate),
		Description:          row.Description,
		EventCode:            row.EventCode,
		AttributeCode:        row.AttributeCode,
		ReversalOf:           row.ReversalOf.String,
		PostedBy:             row.PostedBy,
		PostedAt:             row.PostedAt.Time,
	}
}
