package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInconsistentLedger is returned when the ledger is not balanced.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// ConsistencyReport summarizes a ledger-wide balance check.
type ConsistencyReport struct {
	TotalDebit           decimal.Decimal
	TotalCredit          decimal.Decimal
	UnbalancedReferences int64
	Consistent           bool
}

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// CheckConsistency verifies that the ledger is balanced overall and per
// transaction reference. An inconsistent ledger returns the report together
// with ErrInconsistentLedger.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (*ConsistencyReport, error) {
	debit, credit, unbalanced, err := uc.ledgerRepo.CheckConsistency(ctx)
	if err != nil {
		return nil, err
	}

	report := &ConsistencyReport{
		TotalDebit:           debit,
		TotalCredit:          credit,
		UnbalancedReferences: unbalanced,
	}
	report.Consistent = debit.Equal(credit) && unbalanced == 0
	if !report.Consistent {
		return report, ErrInconsistentLedger
	}

	return report, nil
}
