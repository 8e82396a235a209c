package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxReferenceLength   = 128
	MaxDescriptionLength = 255
	MaxEntriesPerPosting = 64
)

// ValidateReference validates a client supplied transaction reference.
func ValidateReference(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fmt.Errorf("%w: reference cannot be empty", ErrInvalidReference)
	}
	if len(ref) > MaxReferenceLength {
		return fmt.Errorf("%w: reference exceeds %d characters", ErrInvalidReference, MaxReferenceLength)
	}
	if strings.HasSuffix(ref, ReversalSuffix) {
		return fmt.Errorf("%w: reference suffix %s is reserved", ErrInvalidReference, ReversalSuffix)
	}
	return nil
}

// Validate checks the debit XOR credit invariant of a single line.
func (e *AccountingEntry) Validate() error {
	if e.AccountID == "" {
		return fmt.Errorf("%w: line has no account", ErrInvalidEntry)
	}
	if e.BranchID == "" {
		return fmt.Errorf("%w: line on account %s has no branch", ErrInvalidEntry, e.AccountNumber)
	}
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return fmt.Errorf("%w: line on account %s has a negative amount", ErrInvalidEntry, e.AccountNumber)
	}
	if e.Debit.IsZero() == e.Credit.IsZero() {
		return fmt.Errorf("%w: line on account %s must carry exactly one of debit and credit", ErrInvalidEntry, e.AccountNumber)
	}
	if e.ValueDate.IsZero() {
		return fmt.Errorf("%w: line on account %s has no value date", ErrInvalidEntry, e.AccountNumber)
	}
	if len(e.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidEntry, MaxDescriptionLength)
	}
	return nil
}

// ValidateEntrySet validates every line and requires total debits to equal
// total credits, both overall and within each branch.
func ValidateEntrySet(lines []AccountingEntry) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: an entry set needs at least two lines", ErrInvalidEntry)
	}
	if len(lines) > MaxEntriesPerPosting {
		return fmt.Errorf("%w: an entry set is limited to %d lines", ErrInvalidEntry, MaxEntriesPerPosting)
	}

	var debit, credit decimal.Decimal
	perBranch := make(map[string]decimal.Decimal)
	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return err
		}
		debit = debit.Add(lines[i].Debit)
		credit = credit.Add(lines[i].Credit)
		perBranch[lines[i].BranchID] = perBranch[lines[i].BranchID].Add(lines[i].Debit).Sub(lines[i].Credit)
	}

	if !debit.Equal(credit) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedEntry, debit, credit)
	}

	branches := make([]string, 0, len(perBranch))
	for b := range perBranch {
		branches = append(branches, b)
	}
	sort.Strings(branches)
	for _, b := range branches {
		if !perBranch[b].IsZero() {
			return fmt.Errorf("%w: branch %s is off by %s", ErrUnbalancedEntry, b, perBranch[b])
		}
	}

	return nil
}

// CheckScale fails when v is not a whole number of minor units.
func CheckScale(v decimal.Decimal, minorUnits int32) error {
	if !v.Equal(v.Truncate(minorUnits)) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, v, minorUnits)
	}
	return nil
}

// ValidateEntryScale applies CheckScale to every line amount.
func ValidateEntryScale(lines []AccountingEntry, minorUnits int32) error {
	for i := range lines {
		if err := CheckScale(lines[i].Amount(), minorUnits); err != nil {
			return fmt.Errorf("line on account %s: %w", lines[i].AccountNumber, err)
		}
	}
	return nil
}

// Totals returns the debit and credit sums of lines.
func Totals(lines []AccountingEntry) (debit, credit decimal.Decimal) {
	for i := range lines {
		debit = debit.Add(lines[i].Debit)
		credit = credit.Add(lines[i].Credit)
	}
	return debit, credit
}
