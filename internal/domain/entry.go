package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReversalSuffix is appended to a transaction reference to form the
// reference of its reversal.
const ReversalSuffix = ":reversal"

// AccountingEntry is a resolved ledger line that has not been posted yet.
// Exactly one of Debit and Credit is non-zero.
type AccountingEntry struct {
	AccountID            string
	AccountNumber        string
	BranchID             string
	Debit                decimal.Decimal
	Credit               decimal.Decimal
	TransactionReference string
	ValueDate            time.Time
	Description          string
}

// Amount returns the non-zero side of the entry.
func (e *AccountingEntry) Amount() decimal.Decimal {
	if e.Debit.IsPositive() {
		return e.Debit
	}
	return e.Credit
}

// Side returns the booking side of the entry.
func (e *AccountingEntry) Side() Side {
	if e.Debit.IsPositive() {
		return SideDebit
	}
	return SideCredit
}

// PostedEntry is the immutable record of a committed accounting entry.
type PostedEntry struct {
	ID                   string
	TransactionReference string
	LineNo               int
	AccountID            string
	AccountNumber        string
	BranchID             string
	Debit                decimal.Decimal
	Credit               decimal.Decimal
	ValueDate            time.Time
	Description          string
	EventCode            string
	AttributeCode        string
	ReversalOf           string
	PostedBy             string
	PostedAt             time.Time
}

// PostingHeader records one committed entry set.
type PostingHeader struct {
	Reference       string
	EventCode       string
	AttributeCode   string
	ReversalOf      string
	SnapshotVersion int64
	LineCount       int
	PostedBy        string
	PostedAt        time.Time
}

// PostingMeta describes where an entry set came from.
type PostingMeta struct {
	EventCode       string
	AttributeCode   string
	ReversalOf      string
	SnapshotVersion int64
	PostedBy        string
}

// AccountDayKey identifies a per-account, per-day serialization slot.
type AccountDayKey struct {
	BranchID  string
	AccountID string
	Date      time.Time
}

// String renders the key in a stable, sortable form.
func (k AccountDayKey) String() string {
	return k.BranchID + "|" + k.AccountID + "|" + k.Date.Format(DateLayout)
}

// BranchDayKey identifies a branch business day.
type BranchDayKey struct {
	BranchID string
	Date     time.Time
}

// String renders the key in a stable, sortable form.
func (k BranchDayKey) String() string {
	return k.BranchID + "|" + k.Date.Format(DateLayout)
}

// AccountMovement is the aggregate of posted entries on one account.
type AccountMovement struct {
	AccountID     string
	AccountNumber string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
	EntryCount    int
}

// DateLayout is the canonical business date format.
const DateLayout = "2006-01-02"

// BusinessDate truncates t to its UTC calendar day.
func BusinessDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseBusinessDate parses a YYYY-MM-DD date.
func ParseBusinessDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
