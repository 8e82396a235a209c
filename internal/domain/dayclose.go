package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BranchDayStatus is the posting state of a branch business day.
type BranchDayStatus string

const (
	BranchDayOpen   BranchDayStatus = "open"
	BranchDayClosed BranchDayStatus = "closed"
)

// BranchDay tracks whether a branch day still admits postings.
type BranchDay struct {
	BranchID      string
	BusinessDate  time.Time
	Status        BranchDayStatus
	CloseAttempts int
	LastError     string
	ClosedAt      *time.Time
}

// OpeningBalance is the configured balance of an account on a branch before
// its first day close, measured on the account's normal side.
type OpeningBalance struct {
	BranchID         string
	ChartOfAccountID string
	Balance          decimal.Decimal
}

// AccountBalance is a natural-side balance of one account.
type AccountBalance struct {
	AccountID     string
	AccountNumber string
	NormalSide    Side
	Balance       decimal.Decimal
}

// EndOfDayData is the closing snapshot of one account on a branch day.
type EndOfDayData struct {
	BranchID         string
	BusinessDate     time.Time
	ChartOfAccountID string
	AccountNumber    string
	NormalSide       Side
	Beginning        decimal.Decimal
	Debit            decimal.Decimal
	Credit           decimal.Decimal
	Ending           decimal.Decimal
	EntryCount       int
}

// CloseOfDayData is the closing snapshot of a branch day. Branch totals
// use the debit-positive convention, so Ending = Beginning + TotalDebit - TotalCredit.
type CloseOfDayData struct {
	BranchID                string
	BusinessDate            time.Time
	Beginning               decimal.Decimal
	TotalDebit              decimal.Decimal
	TotalCredit             decimal.Decimal
	Ending                  decimal.Decimal
	Accounts                []EndOfDayData
	EntryReferences         []string
	WasProcessingSuccessful bool
	Message                 string
	ClosedAt                time.Time
}

// EndingBalances returns the balances carried into the next day.
func (c *CloseOfDayData) EndingBalances() []AccountBalance {
	out := make([]AccountBalance, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		out = append(out, AccountBalance{
			AccountID:     a.ChartOfAccountID,
			AccountNumber: a.AccountNumber,
			NormalSide:    a.NormalSide,
			Balance:       a.Ending,
		})
	}
	return out
}

// FailedClose builds the result reported when a close attempt fails.
func FailedClose(branchID string, date time.Time, cause error, now time.Time) *CloseOfDayData {
	return &CloseOfDayData{
		BranchID:                branchID,
		BusinessDate:            date,
		WasProcessingSuccessful: false,
		Message:                 cause.Error(),
		ClosedAt:                now,
	}
}

// BuildDayClose combines beginning balances with the day's movements. Every
// account with a beginning balance is carried forward even without
// movements. sideOf resolves the normal side of accounts that only appear
// in movements.
func BuildDayClose(
	branchID string,
	date time.Time,
	beginning []AccountBalance,
	movements []AccountMovement,
	sideOf func(accountID string) (Side, error),
	refs []string,
	now time.Time,
) (*CloseOfDayData, error) {
	rows := make(map[string]*EndOfDayData, len(beginning)+len(movements))

	for _, b := range beginning {
		rows[b.AccountID] = &EndOfDayData{
			BranchID:         branchID,
			BusinessDate:     date,
			ChartOfAccountID: b.AccountID,
			AccountNumber:    b.AccountNumber,
			NormalSide:       b.NormalSide,
			Beginning:        b.Balance,
		}
	}

	for _, m := range movements {
		row, ok := rows[m.AccountID]
		if !ok {
			side, err := sideOf(m.AccountID)
			if err != nil {
				return nil, err
			}
			row = &EndOfDayData{
				BranchID:         branchID,
				BusinessDate:     date,
				ChartOfAccountID: m.AccountID,
				AccountNumber:    m.AccountNumber,
				NormalSide:       side,
			}
			rows[m.AccountID] = row
		}
		row.Debit = row.Debit.Add(m.Debit)
		row.Credit = row.Credit.Add(m.Credit)
		row.EntryCount += m.EntryCount
	}

	out := &CloseOfDayData{
		BranchID:                branchID,
		BusinessDate:            date,
		EntryReferences:         refs,
		WasProcessingSuccessful: true,
		ClosedAt:                now,
	}

	for _, row := range rows {
		row.Ending = ApplyMovement(row.NormalSide, row.Beginning, row.Debit, row.Credit)

		out.Beginning = out.Beginning.Add(DebitPositive(row.NormalSide, row.Beginning))
		out.TotalDebit = out.TotalDebit.Add(row.Debit)
		out.TotalCredit = out.TotalCredit.Add(row.Credit)
		out.Ending = out.Ending.Add(DebitPositive(row.NormalSide, row.Ending))
		out.Accounts = append(out.Accounts, *row)
	}

	sort.Slice(out.Accounts, func(i, j int) bool {
		if out.Accounts[i].AccountNumber == out.Accounts[j].AccountNumber {
			return out.Accounts[i].ChartOfAccountID < out.Accounts[j].ChartOfAccountID
		}
		return out.Accounts[i].AccountNumber < out.Accounts[j].AccountNumber
	})

	if !out.TotalDebit.Equal(out.TotalCredit) {
		return nil, fmt.Errorf("%w: branch %s on %s debits %s, credits %s",
			ErrDayCloseUnbalanced, branchID, date.Format(DateLayout), out.TotalDebit, out.TotalCredit)
	}
	if !out.Ending.Equal(out.Beginning.Add(out.TotalDebit).Sub(out.TotalCredit)) {
		return nil, fmt.Errorf("%w: branch %s ending %s does not roll forward from %s",
			ErrDayCloseUnbalanced, branchID, out.Ending, out.Beginning)
	}

	return out, nil
}
