package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceReference identifies a generated trial balance.
type TrialBalanceReference struct {
	ID          string
	BranchID    string
	AsOf        time.Time
	BaseClose   *time.Time
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	GeneratedAt time.Time
}

// TrialBalanceLine is one account of a trial balance. Exactly one of Debit
// and Credit is non-zero unless the balance is zero.
type TrialBalanceLine struct {
	ChartOfAccountID string
	AccountNumber    string
	NormalSide       Side
	Debit            decimal.Decimal
	Credit           decimal.Decimal
}

// TrialBalanceFile is a point-in-time export of account balances.
type TrialBalanceFile struct {
	Reference TrialBalanceReference
	Lines     []TrialBalanceLine
}

// BuildTrialBalance places each balance in its debit or credit column and
// requires the columns to total the same.
func BuildTrialBalance(ref TrialBalanceReference, balances []AccountBalance) (*TrialBalanceFile, error) {
	file := &TrialBalanceFile{Reference: ref}
	file.Reference.TotalDebit = decimal.Zero
	file.Reference.TotalCredit = decimal.Zero

	for _, b := range balances {
		line := TrialBalanceLine{
			ChartOfAccountID: b.AccountID,
			AccountNumber:    b.AccountNumber,
			NormalSide:       b.NormalSide,
		}
		signed := DebitPositive(b.NormalSide, b.Balance)
		if signed.IsNegative() {
			line.Credit = signed.Neg()
		} else {
			line.Debit = signed
		}
		file.Reference.TotalDebit = file.Reference.TotalDebit.Add(line.Debit)
		file.Reference.TotalCredit = file.Reference.TotalCredit.Add(line.Credit)
		file.Lines = append(file.Lines, line)
	}

	sort.Slice(file.Lines, func(i, j int) bool {
		return file.Lines[i].AccountNumber < file.Lines[j].AccountNumber
	})

	if !file.Reference.TotalDebit.Equal(file.Reference.TotalCredit) {
		return nil, fmt.Errorf("%w: debits %s, credits %s",
			ErrTrialBalanceUnbalanced, file.Reference.TotalDebit, file.Reference.TotalCredit)
	}

	return file, nil
}
