package domain

import "fmt"

// CorrespondingPrecedence decides what happens when both an exception and a
// conditional reference apply to the same corresponding lookup.
type CorrespondingPrecedence string

const (
	// ExceptionOverridesConditional keeps an exception hit final.
	ExceptionOverridesConditional CorrespondingPrecedence = "exception"
	// ConditionalOverridesException applies conditionals on top of exceptions.
	ConditionalOverridesException CorrespondingPrecedence = "conditional"
)

// Policy carries the posting policies that are configurable per deployment.
type Policy struct {
	Currency         string
	MinorUnits       int32
	Residual         ResidualParty
	Precedence       CorrespondingPrecedence
	HeadOfficeBranch string
}

// DefaultPolicy returns last-party residuals, exception-first precedence and
// two minor units.
func DefaultPolicy() Policy {
	return Policy{
		Currency:         "USD",
		MinorUnits:       2,
		Residual:         ResidualToLast,
		Precedence:       ExceptionOverridesConditional,
		HeadOfficeBranch: "HO",
	}
}

// Validate checks policy values.
func (p Policy) Validate() error {
	if p.MinorUnits < 0 || p.MinorUnits > 8 {
		return fmt.Errorf("%w: minor units %d out of range", ErrInvalidConfig, p.MinorUnits)
	}
	if p.Residual != ResidualToLast && p.Residual != ResidualToFirst {
		return fmt.Errorf("%w: unknown residual policy %q", ErrInvalidConfig, p.Residual)
	}
	if p.Precedence != ExceptionOverridesConditional && p.Precedence != ConditionalOverridesException {
		return fmt.Errorf("%w: unknown corresponding precedence %q", ErrInvalidConfig, p.Precedence)
	}
	if p.HeadOfficeBranch == "" {
		return fmt.Errorf("%w: head office branch is required", ErrInvalidConfig)
	}
	return nil
}
