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

// DayCloseRepository implements usecase.DayCloseRepository.
type DayCloseRepository struct {
	queries *generated.Queries
}

// NewDayCloseRepository creates a new DayCloseRepository.
func NewDayCloseRepository(pool *pgxpool.Pool) *DayCloseRepository {
	return newDayCloseRepository(pool)
}

func newDayCloseRepository(db querier) *DayCloseRepository {
	return &DayCloseRepository{queries: generated.New(db)}
}

// Save writes a successful close with its per-account balances.
func (r *DayCloseRepository) Save(ctx context.Context, tx usecase.Transaction, close *domain.CloseOfDayData) error {
	queries := generated.New(tx.(*Tx).PgxTx())
	date := dateToPgDate(domain.BusinessDate(close.BusinessDate))

	refs := close.EntryReferences
	if refs == nil {
		refs = []string{}
	}

	err := queries.CreateDayClose(ctx, generated.CreateDayCloseParams{
		BranchID:        close.BranchID,
		BusinessDate:    date,
		Beginning:       decimalToNumeric(close.Beginning),
		TotalDebit:      decimalToNumeric(close.TotalDebit),
		TotalCredit:     decimalToNumeric(close.TotalCredit),
		Ending:          decimalToNumeric(close.Ending),
		EntryReferences: refs,
		ClosedAt:        timeToPgTimestamptz(close.ClosedAt),
	})
	if err != nil {
		return err
	}

	for _, a := range close.Accounts {
		err := queries.CreateEndOfDayBalance(ctx, generated.CreateEndOfDayBalanceParams{
			BranchID:         close.BranchID,
			BusinessDate:     date,
			ChartOfAccountID: a.ChartOfAccountID,
			AccountNumber:    a.AccountNumber,
			NormalSide:       string(a.NormalSide),
			Beginning:        decimalToNumeric(a.Beginning),
			Debit:            decimalToNumeric(a.Debit),
			Credit:           decimalToNumeric(a.Credit),
			Ending:           decimalToNumeric(a.Ending),
			EntryCount:       int32(a.EntryCount),
		})
		if err != nil {
			return fmt.Errorf("balance of %s: %w", a.AccountNumber, err)
		}
	}

	return nil
}

// Get returns the close of a branch day.
func (r *DayCloseRepository) Get(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	row, err := r.queries.GetDayClose(ctx, generated.GetDayCloseParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: branch %s day %s", domain.ErrDayNotClosed, branchID, date.Format(domain.DateLayout))
		}

		return nil, err
	}

	return r.withBalances(ctx, row)
}

// GetLatestBefore returns the latest close strictly before date, or nil.
func (r *DayCloseRepository) GetLatestBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	row, err := r.queries.GetLatestDayCloseBefore(ctx, generated.GetLatestDayCloseBeforeParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return r.withBalances(ctx, row)
}

// GetLatestOnOrBefore returns the latest close on or before date, or nil.
func (r *DayCloseRepository) GetLatestOnOrBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	row, err := r.queries.GetLatestDayCloseOnOrBefore(ctx, generated.GetLatestDayCloseOnOrBeforeParams{
		BranchID:     branchID,
		BusinessDate: dateToPgDate(domain.BusinessDate(date)),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return r.withBalances(ctx, row)
}

func (r *DayCloseRepository) withBalances(ctx context.Context, row generated.DayClose) (*domain.CloseOfDayData, error) {
	balances, err := r.queries.ListEndOfDayBalances(ctx, generated.ListEndOfDayBalancesParams{
		BranchID:     row.BranchID,
		BusinessDate: row.BusinessDate,
	})
	if err != nil {
		return nil, err
	}

	out := &domain.CloseOfDayData{
		BranchID:                row.BranchID,
		BusinessDate:            pgDateToTime(row.BusinessDate),
		Beginning:               numericToDecimal(row.Beginning),
		TotalDebit:              numericToDecimal(row.TotalDebit),
		TotalCredit:             numericToDecimal(row.TotalCredit),
		Ending:                  numericToDecimal(row.Ending),
		EntryReferences:         row.EntryReferences,
		WasProcessingSuccessful: true,
		ClosedAt:                row.ClosedAt.Time,
		Accounts:                make([]domain.EndOfDayData, 0, len(balances)),
	}

	for _, b := range balances {
		out.Accounts = append(out.Accounts, domain.EndOfDayData{
			BranchID:         b.BranchID,
			BusinessDate:     pgDateToTime(b.BusinessDate),
			ChartOfAccountID: b.ChartOfAccountID,
			AccountNumber:    b.AccountNumber,
			NormalSide:       domain.Side(b.NormalSide),
			Beginning:        numericToDecimal(b.Beginning),
			Debit:            numericToDecimal(b.Debit),
			Credit:           numericToDecimal(b.Credit),
			Ending:           numericToDecimal(b.Ending),
			EntryCount:       int(b.EntryCount),
		})
	}

	return out, nil
}
