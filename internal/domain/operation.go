package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OperationContext carries the scope and inputs of a business operation.
type OperationContext struct {
	ProductID           string                     `json:"product_id,omitempty"`
	BranchID            string                     `json:"branch_id"`
	DestinationBranchID string                     `json:"destination_branch_id,omitempty"`
	Currency            string                     `json:"currency,omitempty"`
	SourceAccountID     string                     `json:"source_account_id,omitempty"`
	Channel             Channel                    `json:"channel,omitempty"`
	Attributes          map[string]decimal.Decimal `json:"attributes,omitempty"`
	Tags                map[string]string          `json:"tags,omitempty"`
}

// BranchFor returns the branch a selector points at.
func (c *OperationContext) BranchFor(sel BranchSelector, headOffice string) (string, error) {
	switch sel.Normalize() {
	case BranchSource:
		return c.BranchID, nil
	case BranchDestination:
		if c.DestinationBranchID == "" {
			return "", fmt.Errorf("%w: operation has no destination branch", ErrInvalidEntry)
		}
		return c.DestinationBranchID, nil
	case BranchHeadOffice:
		return headOffice, nil
	}
	return "", sel.Validate()
}

// PostingCommand is the serialized request the transaction tracker replays.
type PostingCommand struct {
	Reference     string           `json:"reference"`
	EventCode     string           `json:"event_code"`
	AttributeCode string           `json:"attribute_code"`
	Amount        decimal.Decimal  `json:"amount"`
	ValueDate     time.Time        `json:"value_date"`
	Description   string           `json:"description,omitempty"`
	Context       OperationContext `json:"context"`
	PostedBy      string           `json:"posted_by,omitempty"`
}

// Validate checks the command before any configuration lookup.
func (c *PostingCommand) Validate() error {
	if err := ValidateReference(c.Reference); err != nil {
		return err
	}
	if c.EventCode == "" {
		return fmt.Errorf("%w: event code is required", ErrUnknownEvent)
	}
	if c.AttributeCode == "" {
		return fmt.Errorf("%w: attribute code is required", ErrUnknownAttribute)
	}
	if c.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, c.Amount)
	}
	if c.Context.BranchID == "" {
		return fmt.Errorf("%w: branch is required", ErrInvalidEntry)
	}
	for name, v := range c.Context.Attributes {
		if v.IsNegative() {
			return fmt.Errorf("%w: attribute %s is %s", ErrInvalidAmount, name, v)
		}
	}
	return nil
}

// ValidateScale rejects an amount or attribute value carrying more decimal
// places than the currency has minor units.
func (c *PostingCommand) ValidateScale(minorUnits int32) error {
	if err := CheckScale(c.Amount, minorUnits); err != nil {
		return err
	}
	for name, v := range c.Context.Attributes {
		if err := CheckScale(v, minorUnits); err != nil {
			return fmt.Errorf("attribute %s: %w", name, err)
		}
	}
	return nil
}

// AttributeValues returns the operation attributes with the command amount
// bound to the command's attribute code.
func (c *PostingCommand) AttributeValues() map[string]decimal.Decimal {
	values := make(map[string]decimal.Decimal, len(c.Context.Attributes)+1)
	for k, v := range c.Context.Attributes {
		values[k] = v
	}
	if _, ok := values[c.AttributeCode]; !ok {
		values[c.AttributeCode] = c.Amount
	}
	return values
}

// Marshal serializes the command for the tracker payload.
func (c *PostingCommand) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// UnmarshalPostingCommand restores a command from a tracker payload.
func UnmarshalPostingCommand(payload []byte) (*PostingCommand, error) {
	var cmd PostingCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return nil, fmt.Errorf("decode posting command: %w", err)
	}
	return &cmd, nil
}

type actorKey struct{}

// WithActor stores the identity of the poster in ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the poster identity, or "system".
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return "system"
}
