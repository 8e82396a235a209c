package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

// EvaluateFormula computes a line amount from the operation's attribute
// values. A non-empty channel overrides the formula's share channel.
func EvaluateFormula(snap *Snapshot, f domain.AmountFormula, values map[string]decimal.Decimal, channel domain.Channel) (decimal.Decimal, error) {
	policy := snap.Policy()

	switch f.Kind {
	case domain.FormulaFlat:
		return f.Value, nil

	case domain.FormulaAttributeValue:
		return attributeValue(values, f.Attribute)

	case domain.FormulaPercentOf:
		base, err := attributeValue(values, f.Attribute)
		if err != nil {
			return decimal.Zero, err
		}
		return base.Mul(f.Percent).Shift(-2).Truncate(policy.MinorUnits), nil

	case domain.FormulaShare:
		base, err := attributeValue(values, f.Attribute)
		if err != nil {
			return decimal.Zero, err
		}
		sc, ok := snap.ShareConfig(f.ShareCode)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: unknown share config %s", domain.ErrShareConfigInvalid, f.ShareCode)
		}
		ch := f.Channel
		if channel != "" {
			ch = channel
		}
		set, ok := sc.Channels[ch]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: share config %s has no %s channel", domain.ErrShareConfigInvalid, sc.Code, ch)
		}
		parts, err := domain.Split(base, set, policy.MinorUnits, policy.Residual)
		if err != nil {
			return decimal.Zero, err
		}
		return parts[f.Party], nil
	}

	return decimal.Zero, fmt.Errorf("%w: unknown formula kind %q", domain.ErrInvalidRuleSet, f.Kind)
}

func attributeValue(values map[string]decimal.Decimal, name string) (decimal.Decimal, error) {
	v, ok := values[name]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrMissingAttribute, name)
	}
	return v, nil
}

// BuildEntries resolves cmd against snap into unvalidated ledger lines.
// Lines evaluating to zero are dropped.
func BuildEntries(snap *Snapshot, cmd *domain.PostingCommand) ([]domain.AccountingEntry, error) {
	op := &cmd.Context
	lines, err := ResolveLines(snap, cmd.EventCode, cmd.AttributeCode, op.ProductID, op.BranchID)
	if err != nil {
		return nil, err
	}

	values := cmd.AttributeValues()
	valueDate := domain.BusinessDate(cmd.ValueDate)
	headOffice := snap.Policy().HeadOfficeBranch

	entries := make([]domain.AccountingEntry, 0, len(lines))
	for _, line := range lines {
		amount, err := EvaluateFormula(snap, line.Formula, values, op.Channel)
		if err != nil {
			return nil, fmt.Errorf("rule %s line %d: %w", line.RuleID, line.Sequence, err)
		}
		if amount.IsZero() {
			continue
		}

		acc, err := ResolveAccount(snap, line.Account, op)
		if err != nil {
			return nil, fmt.Errorf("rule %s line %d: %w", line.RuleID, line.Sequence, err)
		}
		branch, err := op.BranchFor(line.Branch, headOffice)
		if err != nil {
			return nil, err
		}

		desc := line.Description
		if desc == "" {
			desc = cmd.Description
		}

		entry := domain.AccountingEntry{
			AccountID:            acc.ID,
			AccountNumber:        acc.Number,
			BranchID:             branch,
			TransactionReference: cmd.Reference,
			ValueDate:            valueDate,
			Description:          desc,
		}
		if line.Direction == domain.DirectionDebit {
			entry.Debit = amount
		} else {
			entry.Credit = amount
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
