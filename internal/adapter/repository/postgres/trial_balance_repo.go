package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// TrialBalanceRepository implements usecase.TrialBalanceRepository.
type TrialBalanceRepository struct {
	txManager usecase.TransactionManager
}

// NewTrialBalanceRepository creates a new TrialBalanceRepository.
func NewTrialBalanceRepository(txManager usecase.TransactionManager) *TrialBalanceRepository {
	return &TrialBalanceRepository{txManager: txManager}
}

// Save writes the trial balance and its lines in one transaction.
func (r *TrialBalanceRepository) Save(ctx context.Context, file *domain.TrialBalanceFile) (err error) {
	tx, err := r.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	queries := generated.New(tx.(*Tx).PgxTx())
	ref := file.Reference

	var base pgtype.Date
	if ref.BaseClose != nil {
		base = dateToPgDate(*ref.BaseClose)
	}

	err = queries.CreateTrialBalance(ctx, generated.CreateTrialBalanceParams{
		ID:          ref.ID,
		BranchID:    ref.BranchID,
		AsOf:        dateToPgDate(domain.BusinessDate(ref.AsOf)),
		BaseClose:   base,
		TotalDebit:  decimalToNumeric(ref.TotalDebit),
		TotalCredit: decimalToNumeric(ref.TotalCredit),
		GeneratedAt: timeToPgTimestamptz(ref.GeneratedAt),
	})
	if err != nil {
		return err
	}

	for _, line := range file.Lines {
		err = queries.CreateTrialBalanceLine(ctx, generated.CreateTrialBalanceLineParams{
			TrialBalanceID:   ref.ID,
			ChartOfAccountID: line.ChartOfAccountID,
			AccountNumber:    line.AccountNumber,
			NormalSide:       string(line.NormalSide),
			Debit:            decimalToNumeric(line.Debit),
			Credit:           decimalToNumeric(line.Credit),
		})
		if err != nil {
			return fmt.Errorf("trial balance line %s: %w", line.AccountNumber, err)
		}
	}

	return tx.Commit(ctx)
}
