package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the top-level classification of a chart-of-accounts node.
type Category string

const (
	CategoryAsset     Category = "asset"
	CategoryLiability Category = "liability"
	CategoryEquity    Category = "equity"
	CategoryIncome    Category = "income"
	CategoryExpense   Category = "expense"
)

// Side is a booking side of the ledger.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// NormalSide returns the side that increases balances of the category.
func (c Category) NormalSide() (Side, error) {
	switch c {
	case CategoryAsset, CategoryExpense:
		return SideDebit, nil
	case CategoryLiability, CategoryEquity, CategoryIncome:
		return SideCredit, nil
	default:
		return "", fmt.Errorf("%w: unknown account category %q", ErrInvalidConfig, c)
	}
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, err := c.NormalSide(); err != nil {
		return "", err
	}
	return c, nil
}

// ChartOfAccount is a node of the chart of accounts.
type ChartOfAccount struct {
	ID         string
	Number     string
	Name       string
	Category   Category
	NormalSide Side
	ParentID   string
}

// Validate checks that the node is well formed and its normal side agrees
// with its category. An empty NormalSide is filled in from the category.
func (a *ChartOfAccount) Validate() error {
	if a.ID == "" || a.Number == "" {
		return fmt.Errorf("%w: account requires id and number", ErrInvalidConfig)
	}

	side, err := a.Category.NormalSide()
	if err != nil {
		return fmt.Errorf("account %s: %w", a.Number, err)
	}

	if a.NormalSide == "" {
		a.NormalSide = side
	}
	if a.NormalSide != side {
		return fmt.Errorf("%w: account %s is %s but declares %s normal side", ErrInvalidConfig, a.Number, a.Category, a.NormalSide)
	}

	if a.ParentID == a.ID {
		return fmt.Errorf("%w: account %s is its own parent", ErrInvalidConfig, a.Number)
	}

	return nil
}

// ApplyMovement returns the balance after debit and credit movements,
// measured on the account's normal side.
func (a *ChartOfAccount) ApplyMovement(balance, debit, credit decimal.Decimal) decimal.Decimal {
	return ApplyMovement(a.NormalSide, balance, debit, credit)
}

// ApplyMovement returns balance moved by debit and credit on the given normal side.
func ApplyMovement(side Side, balance, debit, credit decimal.Decimal) decimal.Decimal {
	if side == SideCredit {
		return balance.Add(credit).Sub(debit)
	}
	return balance.Add(debit).Sub(credit)
}

// DebitPositive converts a natural-side balance into debit-positive convention.
func DebitPositive(side Side, balance decimal.Decimal) decimal.Decimal {
	if side == SideCredit {
		return balance.Neg()
	}
	return balance
}
