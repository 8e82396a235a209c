package usecase

import (
	"fmt"

	"github.com/corebank/ledgerengine/internal/domain"
)

// ResolveAccount returns the postable account a rule line refers to.
func ResolveAccount(snap *Snapshot, ref domain.AccountRef, op *domain.OperationContext) (*domain.ChartOfAccount, error) {
	switch ref.Kind {
	case domain.AccountRefDirect:
		return snap.LeafAccount(ref.ChartOfAccountID)
	case domain.AccountRefCorresponding:
		return ResolveCorresponding(snap, ref, op)
	default:
		return nil, fmt.Errorf("%w: unknown account reference kind %q", domain.ErrInvalidRuleSet, ref.Kind)
	}
}

// ResolveCorresponding maps a source account through a document reference
// code to its counterpart. Exceptions keyed by the source account number
// are tried first when the code allows them, then the normal mapping, then
// conditionals in sequence order where the first match wins.
func ResolveCorresponding(snap *Snapshot, ref domain.AccountRef, op *domain.OperationContext) (*domain.ChartOfAccount, error) {
	rc, ok := snap.ReferenceCode(ref.ReferenceCode)
	if !ok {
		return nil, fmt.Errorf("%w: unknown reference code %s", domain.ErrMappingNotFound, ref.ReferenceCode)
	}

	sourceID := ref.SourceAccountID
	if sourceID == "" {
		sourceID = op.SourceAccountID
	}
	if sourceID == "" {
		return nil, fmt.Errorf("%w: %s needs a source account", domain.ErrMappingNotFound, rc.Code)
	}
	source, ok := snap.Account(sourceID)
	if !ok {
		return nil, fmt.Errorf("%w: source account %s", domain.ErrAccountNotFound, sourceID)
	}

	var number string
	exceptionHit := false
	if rc.HasException {
		if ex, ok := snap.Exception(rc.Code, source.Number); ok {
			number = ex.CounterpartNumber
			exceptionHit = true
		}
	}
	if !exceptionHit {
		m, ok := snap.Mapping(rc.Code, source.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s for account %s", domain.ErrMappingNotFound, rc.Code, source.Number)
		}
		number = m.CounterpartNumber
	}

	if !exceptionHit || snap.Policy().Precedence == domain.ConditionalOverridesException {
		for _, c := range snap.Conditionals(rc.Code) {
			if c.Matches(op.Tags) {
				number = c.TargetNumber
				break
			}
		}
	}

	acc, ok := snap.AccountByNumber(number)
	if !ok {
		return nil, fmt.Errorf("%w: counterpart %s", domain.ErrAccountNotFound, number)
	}
	if !snap.IsLeaf(acc.ID) {
		return nil, fmt.Errorf("%w: counterpart %s", domain.ErrAccountNotLeaf, number)
	}
	return acc, nil
}
