package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

// PostingRequest represents a request to resolve and post a business operation.
type PostingRequest struct {
	Reference           string            `json:"reference"`
	EventCode           string            `json:"event_code"`
	AttributeCode       string            `json:"attribute_code"`
	Amount              string            `json:"amount"`
	ValueDate           string            `json:"value_date,omitempty"`
	Description         string            `json:"description,omitempty"`
	ProductID           string            `json:"product_id,omitempty"`
	BranchID            string            `json:"branch_id"`
	DestinationBranchID string            `json:"destination_branch_id,omitempty"`
	Currency            string            `json:"currency,omitempty"`
	SourceAccountID     string            `json:"source_account_id,omitempty"`
	Channel             string            `json:"channel,omitempty"`
	Attributes          map[string]string `json:"attributes,omitempty"`
	Tags                map[string]string `json:"tags,omitempty"`
}

// ToCommand converts the request into a posting command. An empty value
// date means today.
func (r *PostingRequest) ToCommand(now time.Time) (domain.PostingCommand, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return domain.PostingCommand{}, fmt.Errorf("%w: amount %q", domain.ErrInvalidAmount, r.Amount)
	}

	valueDate := domain.BusinessDate(now)
	if r.ValueDate != "" {
		if valueDate, err = domain.ParseBusinessDate(r.ValueDate); err != nil {
			return domain.PostingCommand{}, fmt.Errorf("%w: value_date %q", domain.ErrInvalidEntry, r.ValueDate)
		}
	}

	var attrs map[string]decimal.Decimal
	if len(r.Attributes) > 0 {
		attrs = make(map[string]decimal.Decimal, len(r.Attributes))
		for name, raw := range r.Attributes {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				return domain.PostingCommand{}, fmt.Errorf("%w: attribute %s %q", domain.ErrInvalidAmount, name, raw)
			}
			attrs[name] = v
		}
	}

	return domain.PostingCommand{
		Reference:     r.Reference,
		EventCode:     r.EventCode,
		AttributeCode: r.AttributeCode,
		Amount:        amount,
		ValueDate:     valueDate,
		Description:   r.Description,
		Context: domain.OperationContext{
			ProductID:           r.ProductID,
			BranchID:            r.BranchID,
			DestinationBranchID: r.DestinationBranchID,
			Currency:            r.Currency,
			SourceAccountID:     r.SourceAccountID,
			Channel:             domain.Channel(r.Channel),
			Attributes:          attrs,
			Tags:                r.Tags,
		},
	}, nil
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
