package usecase

import (
	"fmt"

	"github.com/corebank/ledgerengine/internal/domain"
)

// ResolveRule picks the most specific rule for the operation scope:
// (product, branch) before (product, *) before (*, *).
func ResolveRule(snap *Snapshot, eventCode, attributeCode, productID, branchID string) (*domain.AccountingRule, error) {
	if _, ok := snap.Event(eventCode); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEvent, eventCode)
	}
	if !snap.HasAttribute(eventCode, attributeCode) {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrUnknownAttribute, eventCode, attributeCode)
	}

	type scope struct{ product, branch string }
	var scopes []scope
	if productID != "" {
		if branchID != "" {
			scopes = append(scopes, scope{productID, branchID})
		}
		scopes = append(scopes, scope{productID, ""})
	}
	scopes = append(scopes, scope{"", ""})

	for _, sc := range scopes {
		if rule, ok := snap.Rule(eventCode, attributeCode, sc.product, sc.branch); ok {
			return rule, nil
		}
	}

	return nil, fmt.Errorf("%w: %s/%s product %q branch %q",
		domain.ErrRuleNotFound, eventCode, attributeCode, productID, branchID)
}

// ResolveLines returns the line templates of the matching rule in sequence order.
func ResolveLines(snap *Snapshot, eventCode, attributeCode, productID, branchID string) ([]domain.LineTemplate, error) {
	rule, err := ResolveRule(snap, eventCode, attributeCode, productID, branchID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.LineTemplate, 0, len(rule.Entries))
	for _, e := range rule.Entries {
		lines = append(lines, domain.LineTemplate{
			RuleID:      rule.ID,
			Sequence:    e.Sequence,
			Account:     e.Account,
			Direction:   e.Direction,
			Branch:      e.Branch.Normalize(),
			Formula:     e.Formula,
			Description: e.Description,
		})
	}
	return lines, nil
}
