package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Direction is the booking direction of a rule entry. It is applied
// literally and never re-signed from the account category.
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Sign returns +1 for debit and -1 for credit.
func (d Direction) Sign() int64 {
	if d == DirectionCredit {
		return -1
	}
	return 1
}

// Validate checks the direction value.
func (d Direction) Validate() error {
	if d != DirectionDebit && d != DirectionCredit {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidRuleSet, d)
	}
	return nil
}

// BranchSelector picks the branch a resolved line is booked at.
type BranchSelector string

const (
	BranchSource      BranchSelector = "source"
	BranchDestination BranchSelector = "destination"
	BranchHeadOffice  BranchSelector = "head_office"
)

// Normalize returns the selector with the empty value mapped to BranchSource.
func (b BranchSelector) Normalize() BranchSelector {
	if b == "" {
		return BranchSource
	}
	return b
}

// Validate checks the selector value.
func (b BranchSelector) Validate() error {
	switch b.Normalize() {
	case BranchSource, BranchDestination, BranchHeadOffice:
		return nil
	default:
		return fmt.Errorf("%w: unknown branch selector %q", ErrInvalidRuleSet, b)
	}
}

// AccountRefKind distinguishes direct accounts from corresponding lookups.
type AccountRefKind string

const (
	AccountRefDirect        AccountRefKind = "direct"
	AccountRefCorresponding AccountRefKind = "corresponding"
)

// AccountRef names the account of a rule entry, either directly by chart id
// or through a corresponding-account reference code resolved at posting time.
type AccountRef struct {
	Kind             AccountRefKind
	ChartOfAccountID string
	ReferenceCode    string
	// SourceAccountID overrides the operation's source account for the lookup.
	SourceAccountID string
}

// DirectAccount returns a direct account reference.
func DirectAccount(chartOfAccountID string) AccountRef {
	return AccountRef{Kind: AccountRefDirect, ChartOfAccountID: chartOfAccountID}
}

// CorrespondingAccount returns a corresponding-account reference.
func CorrespondingAccount(referenceCode, sourceAccountID string) AccountRef {
	return AccountRef{Kind: AccountRefCorresponding, ReferenceCode: referenceCode, SourceAccountID: sourceAccountID}
}

// FormulaKind enumerates amount formulas.
type FormulaKind string

const (
	FormulaFlat           FormulaKind = "flat"
	FormulaAttributeValue FormulaKind = "attribute_value"
	FormulaPercentOf      FormulaKind = "percent_of"
	FormulaShare          FormulaKind = "share"
)

// AmountFormula computes the amount of a rule entry from the operation's
// attribute values.
type AmountFormula struct {
	Kind FormulaKind
	// Flat
	Value decimal.Decimal
	// AttributeValue, PercentOf and Share read this attribute
	Attribute string
	// PercentOf
	Percent decimal.Decimal
	// Share
	ShareCode string
	Channel   Channel
	Party     Party
}

// Flat returns a constant amount formula.
func Flat(x decimal.Decimal) AmountFormula {
	return AmountFormula{Kind: FormulaFlat, Value: x}
}

// AttributeValue returns a formula reading the named attribute.
func AttributeValue(name string) AmountFormula {
	return AmountFormula{Kind: FormulaAttributeValue, Attribute: name}
}

// PercentOf returns a formula taking pct percent of the named base attribute.
func PercentOf(base string, pct decimal.Decimal) AmountFormula {
	return AmountFormula{Kind: FormulaPercentOf, Attribute: base, Percent: pct}
}

// ShareOf returns a formula taking a party's share-split cut of the base attribute.
func ShareOf(base, shareCode string, channel Channel, party Party) AmountFormula {
	return AmountFormula{Kind: FormulaShare, Attribute: base, ShareCode: shareCode, Channel: channel, Party: party}
}

// Validate checks the formula's own fields.
func (f AmountFormula) Validate() error {
	switch f.Kind {
	case FormulaFlat:
		if f.Value.IsNegative() {
			return fmt.Errorf("%w: flat amount %s is negative", ErrInvalidRuleSet, f.Value)
		}
	case FormulaAttributeValue:
		if f.Attribute == "" {
			return fmt.Errorf("%w: attribute formula without attribute", ErrInvalidRuleSet)
		}
	case FormulaPercentOf:
		if f.Attribute == "" {
			return fmt.Errorf("%w: percent formula without base", ErrInvalidRuleSet)
		}
		if f.Percent.IsNegative() || f.Percent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: percent %s out of range", ErrInvalidRuleSet, f.Percent)
		}
	case FormulaShare:
		if f.Attribute == "" || f.ShareCode == "" {
			return fmt.Errorf("%w: share formula requires base and share code", ErrInvalidRuleSet)
		}
		if err := f.Party.Validate(); err != nil {
			return err
		}
		if err := f.Channel.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown formula kind %q", ErrInvalidRuleSet, f.Kind)
	}
	return nil
}

// AccountingRuleEntry is one line of an accounting rule.
type AccountingRuleEntry struct {
	Sequence    int
	Account     AccountRef
	Direction   Direction
	Branch      BranchSelector
	Formula     AmountFormula
	Description string
}

// AccountingRule binds an event attribute within a product/branch scope to
// the ledger lines it produces. Empty ProductID or BranchID means any.
type AccountingRule struct {
	ID            string
	EventCode     string
	AttributeCode string
	ProductID     string
	BranchID      string
	Entries       []AccountingRuleEntry
}

// ScopeRank orders scopes by specificity: 2 for (product, branch),
// 1 for (product, *), 0 for (*, *). A (*, branch) scope is not supported.
func (r *AccountingRule) ScopeRank() (int, error) {
	switch {
	case r.ProductID != "" && r.BranchID != "":
		return 2, nil
	case r.ProductID != "":
		return 1, nil
	case r.BranchID == "":
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: rule %s is scoped to branch %s without a product", ErrInvalidRuleSet, r.ID, r.BranchID)
	}
}

// LineTemplate is a resolved but not yet evaluated ledger line.
type LineTemplate struct {
	RuleID      string
	Sequence    int
	Account     AccountRef
	Direction   Direction
	Branch      BranchSelector
	Formula     AmountFormula
	Description string
}
