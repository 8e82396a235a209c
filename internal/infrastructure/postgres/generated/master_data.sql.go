package generated

import (
	"context"
)

const listChartOfAccounts = `-- name: ListChartOfAccounts :many
SELECT id, number, name, category, normal_side, parent_id FROM chart_of_accounts
ORDER BY number
`

func (q *Queries) ListChartOfAccounts(ctx context.Context) ([]ChartOfAccount, error) {
	rows, err := q.db.Query(ctx, listChartOfAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ChartOfAccount{}
	for rows.Next() {
		var i ChartOfAccount
		if err := rows.Scan(
			&i.ID,
			&i.Number,
			&i.Name,
			&i.Category,
			&i.NormalSide,
			&i.ParentID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOperationEvents = `-- name: ListOperationEvents :many
SELECT code, description, multi_entry FROM operation_events
ORDER BY code
`

func (q *Queries) ListOperationEvents(ctx context.Context) ([]OperationEvent, error) {
	rows, err := q.db.Query(ctx, listOperationEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OperationEvent{}
	for rows.Next() {
		var i OperationEvent
		if err := rows.Scan(
			&i.Code,
			&i.Description,
			&i.MultiEntry,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOperationEventAttributes = `-- name: ListOperationEventAttributes :many
SELECT event_code, code, description FROM operation_event_attributes
ORDER BY event_code, code
`

func (q *Queries) ListOperationEventAttributes(ctx context.Context) ([]OperationEventAttribute, error) {
	rows, err := q.db.Query(ctx, listOperationEventAttributes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OperationEventAttribute{}
	for rows.Next() {
		var i OperationEventAttribute
		if err := rows.Scan(
			&i.EventCode,
			&i.Code,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAccountingRules = `-- name: ListAccountingRules :many
SELECT id, event_code, attribute_code, product_id, branch_id FROM accounting_rules
ORDER BY id
`

func (q *Queries) ListAccountingRules(ctx context.Context) ([]AccountingRule, error) {
	rows, err := q.db.Query(ctx, listAccountingRules)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AccountingRule{}
	for rows.Next() {
		var i AccountingRule
		if err := rows.Scan(
			&i.ID,
			&i.EventCode,
			&i.AttributeCode,
			&i.ProductID,
			&i.BranchID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listAccountingRuleEntries = `-- name: ListAccountingRuleEntries :many
SELECT rule_id, sequence, account_kind, chart_of_account_id, reference_code, source_account_id, direction, branch_selector, formula_kind, formula_value, formula_attribute, formula_percent, share_code, share_channel, share_party, description FROM accounting_rule_entries
ORDER BY rule_id, sequence
`

func (q *Queries) ListAccountingRuleEntries(ctx context.Context) ([]AccountingRuleEntry, error) {
	rows, err := q.db.Query(ctx, listAccountingRuleEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AccountingRuleEntry{}
	for rows.Next() {
		var i AccountingRuleEntry
		if err := rows.Scan(
			&i.RuleID,
			&i.Sequence,
			&i.AccountKind,
			&i.ChartOfAccountID,
			&i.ReferenceCode,
			&i.SourceAccountID,
			&i.Direction,
			&i.BranchSelector,
			&i.FormulaKind,
			&i.FormulaValue,
			&i.FormulaAttribute,
			&i.FormulaPercent,
			&i.ShareCode,
			&i.ShareChannel,
			&i.ShareParty,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listDocumentReferenceCodes = `-- name: ListDocumentReferenceCodes :many
SELECT code, has_exception, description FROM document_reference_codes
ORDER BY code
`

func (q *Queries) ListDocumentReferenceCodes(ctx context.Context) ([]DocumentReferenceCode, error) {
	rows, err := q.db.Query(ctx, listDocumentReferenceCodes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DocumentReferenceCode{}
	for rows.Next() {
		var i DocumentReferenceCode
		if err := rows.Scan(
			&i.Code,
			&i.HasException,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCorrespondingMappings = `-- name: ListCorrespondingMappings :many
SELECT reference_code, chart_of_account_id, counterpart_number, counterpart_category FROM corresponding_mappings
ORDER BY reference_code, chart_of_account_id
`

func (q *Queries) ListCorrespondingMappings(ctx context.Context) ([]CorrespondingMapping, error) {
	rows, err := q.db.Query(ctx, listCorrespondingMappings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CorrespondingMapping{}
	for rows.Next() {
		var i CorrespondingMapping
		if err := rows.Scan(
			&i.ReferenceCode,
			&i.ChartOfAccountID,
			&i.CounterpartNumber,
			&i.CounterpartCategory,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCorrespondingMappingExceptions = `-- name: ListCorrespondingMappingExceptions :many
SELECT reference_code, account_number, counterpart_number, counterpart_category FROM corresponding_mapping_exceptions
ORDER BY reference_code, account_number
`

func (q *Queries) ListCorrespondingMappingExceptions(ctx context.Context) ([]CorrespondingMappingException, error) {
	rows, err := q.db.Query(ctx, listCorrespondingMappingExceptions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CorrespondingMappingException{}
	for rows.Next() {
		var i CorrespondingMappingException
		if err := rows.Scan(
			&i.ReferenceCode,
			&i.AccountNumber,
			&i.CounterpartNumber,
			&i.CounterpartCategory,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listConditionalAccountReferences = `-- name: ListConditionalAccountReferences :many
SELECT reference_code, sequence, attribute_name, attribute_value, target_number FROM conditional_account_references
ORDER BY reference_code, sequence
`

func (q *Queries) ListConditionalAccountReferences(ctx context.Context) ([]ConditionalAccountReference, error) {
	rows, err := q.db.Query(ctx, listConditionalAccountReferences)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ConditionalAccountReference{}
	for rows.Next() {
		var i ConditionalAccountReference
		if err := rows.Scan(
			&i.ReferenceCode,
			&i.Sequence,
			&i.AttributeName,
			&i.AttributeValue,
			&i.TargetNumber,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listShareConfigs = `-- name: ListShareConfigs :many
SELECT code, channel, head_office, partner, source_branch, destination_branch FROM share_configs
ORDER BY code, channel
`

func (q *Queries) ListShareConfigs(ctx context.Context) ([]ShareConfig, error) {
	rows, err := q.db.Query(ctx, listShareConfigs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ShareConfig{}
	for rows.Next() {
		var i ShareConfig
		if err := rows.Scan(
			&i.Code,
			&i.Channel,
			&i.HeadOffice,
			&i.Partner,
			&i.SourceBranch,
			&i.DestinationBranch,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOpeningBalances = `-- name: ListOpeningBalances :many
SELECT branch_id, chart_of_account_id, balance FROM opening_balances
ORDER BY branch_id, chart_of_account_id
`

func (q *Queries) ListOpeningBalances(ctx context.Context) ([]OpeningBalance, error) {
	rows, err := q.db.Query(ctx, listOpeningBalances)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []OpeningBalance{}
	for rows.Next() {
		var i OpeningBalance
		if err := rows.Scan(
			&i.BranchID,
			&i.ChartOfAccountID,
			&i.Balance,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
