package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
)

type txBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// ConfigSource implements usecase.ConfigSource over the master-data tables.
// Every table is read in one repeatable-read transaction so a load never
// mixes two versions of the configuration.
type ConfigSource struct {
	pool txBeginner
}

// NewConfigSource creates a new ConfigSource.
func NewConfigSource(pool *pgxpool.Pool) *ConfigSource {
	return &ConfigSource{pool: pool}
}

// Load reads the whole master data set.
func (s *ConfigSource) Load(ctx context.Context) (*domain.ConfigSet, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set, err := loadConfigSet(ctx, generated.New(tx))
	if err != nil {
		return nil, fmt.Errorf("load master data: %w", err)
	}

	return set, tx.Commit(ctx)
}

func loadConfigSet(ctx context.Context, q *generated.Queries) (*domain.ConfigSet, error) {
	set := &domain.ConfigSet{}

	accounts, err := q.ListChartOfAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		set.Accounts = append(set.Accounts, domain.ChartOfAccount{
			ID:         a.ID,
			Number:     a.Number,
			Name:       a.Name,
			Category:   domain.Category(a.Category),
			NormalSide: domain.Side(a.NormalSide),
			ParentID:   a.ParentID.String,
		})
	}

	events, err := q.ListOperationEvents(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		set.Events = append(set.Events, domain.OperationEvent{Code: e.Code, Description: e.Description, MultiEntry: e.MultiEntry})
	}

	attrs, err := q.ListOperationEventAttributes(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		set.Attributes = append(set.Attributes, domain.OperationEventAttribute{EventCode: a.EventCode, Code: a.Code, Description: a.Description})
	}

	if set.Rules, err = loadRules(ctx, q); err != nil {
		return nil, err
	}

	codes, err := q.ListDocumentReferenceCodes(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range codes {
		set.ReferenceCodes = append(set.ReferenceCodes, domain.DocumentReferenceCode{Code: c.Code, HasException: c.HasException, Description: c.Description})
	}

	mappings, err := q.ListCorrespondingMappings(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range mappings {
		set.Mappings = append(set.Mappings, domain.CorrespondingMapping{
			ReferenceCode:       m.ReferenceCode,
			ChartOfAccountID:    m.ChartOfAccountID,
			CounterpartNumber:   m.CounterpartNumber,
			CounterpartCategory: domain.Category(m.CounterpartCategory),
		})
	}

	exceptions, err := q.ListCorrespondingMappingExceptions(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range exceptions {
		set.Exceptions = append(set.Exceptions, domain.CorrespondingMappingException{
			ReferenceCode:       e.ReferenceCode,
			AccountNumber:       e.AccountNumber,
			CounterpartNumber:   e.CounterpartNumber,
			CounterpartCategory: domain.Category(e.CounterpartCategory),
		})
	}

	conditionals, err := q.ListConditionalAccountReferences(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range conditionals {
		set.Conditionals = append(set.Conditionals, domain.ConditionalAccountReference{
			ReferenceCode:  c.ReferenceCode,
			Sequence:       int(c.Sequence),
			AttributeName:  c.AttributeName,
			AttributeValue: c.AttributeValue,
			TargetNumber:   c.TargetNumber,
		})
	}

	if set.ShareConfigs, err = loadShareConfigs(ctx, q); err != nil {
		return nil, err
	}

	openings, err := q.ListOpeningBalances(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range openings {
		set.OpeningBalances = append(set.OpeningBalances, domain.OpeningBalance{
			BranchID:         o.BranchID,
			ChartOfAccountID: o.ChartOfAccountID,
			Balance:          numericToDecimal(o.Balance),
		})
	}

	return set, nil
}

func loadRules(ctx context.Context, q *generated.Queries) ([]domain.AccountingRule, error) {
	rules, err := q.ListAccountingRules(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := q.ListAccountingRuleEntries(ctx)
	if err != nil {
		return nil, err
	}

	byRule := make(map[string][]domain.AccountingRuleEntry, len(rules))
	for _, e := range entries {
		byRule[e.RuleID] = append(byRule[e.RuleID], domain.AccountingRuleEntry{
			Sequence: int(e.Sequence),
			Account: domain.AccountRef{
				Kind:             domain.AccountRefKind(e.AccountKind),
				ChartOfAccountID: e.ChartOfAccountID,
				ReferenceCode:    e.ReferenceCode,
				SourceAccountID:  e.SourceAccountID,
			},
			Direction: domain.Direction(e.Direction),
			Branch:    domain.BranchSelector(e.BranchSelector),
			Formula: domain.AmountFormula{
				Kind:      domain.FormulaKind(e.FormulaKind),
				Value:     numericToDecimal(e.FormulaValue),
				Attribute: e.FormulaAttribute,
				Percent:   numericToDecimal(e.FormulaPercent),
				ShareCode: e.ShareCode,
				Channel:   domain.Channel(e.ShareChannel),
				Party:     domain.Party(e.ShareParty),
			},
			Description: e.Description,
		})
	}

	out := make([]domain.AccountingRule, 0, len(rules))
	for _, r := range rules {
		out = append(out, domain.AccountingRule{
			ID:            r.ID,
			EventCode:     r.EventCode,
			AttributeCode: r.AttributeCode,
			ProductID:     r.ProductID,
			BranchID:      r.BranchID,
			Entries:       byRule[r.ID],
		})
	}

	return out, nil
}

func loadShareConfigs(ctx context.Context, q *generated.Queries) ([]domain.ShareConfig, error) {
	rows, err := q.ListShareConfigs(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.ShareConfig
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Code]
		if !ok {
			i = len(out)
			index[row.Code] = i
			out = append(out, domain.ShareConfig{Code: row.Code, Channels: make(map[domain.Channel]domain.ShareSet)})
		}
		out[i].Channels[domain.Channel(row.Channel)] = domain.ShareSet{
			HeadOffice:        numericToDecimal(row.HeadOffice),
			Partner:           numericToDecimal(row.Partner),
			SourceBranch:      numericToDecimal(row.SourceBranch),
			DestinationBranch: numericToDecimal(row.DestinationBranch),
		}
	}

	return out, nil
}
