package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createDayClose = `-- name: CreateDayClose :exec
INSERT INTO day_closes (branch_id, business_date, beginning, total_debit, total_credit, ending, entry_references, closed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateDayCloseParams struct {
	BranchID        string             `json:"branch_id"`
	BusinessDate    pgtype.Date        `json:"business_date"`
	Beginning       pgtype.Numeric     `json:"beginning"`
	TotalDebit      pgtype.Numeric     `json:"total_debit"`
	TotalCredit     pgtype.Numeric     `json:"total_credit"`
	Ending          pgtype.Numeric     `json:"ending"`
	EntryReferences []string           `json:"entry_references"`
	ClosedAt        pgtype.Timestamptz `json:"closed_at"`
}

func (q *Queries) CreateDayClose(ctx context.Context, arg CreateDayCloseParams) error {
	_, err := q.db.Exec(ctx, createDayClose,
		arg.BranchID,
		arg.BusinessDate,
		arg.Beginning,
		arg.TotalDebit,
		arg.TotalCredit,
		arg.Ending,
		arg.EntryReferences,
		arg.ClosedAt,
	)
	return err
}

const createEndOfDayBalance = `-- name: CreateEndOfDayBalance :exec
INSERT INTO end_of_day_balances (branch_id, business_date, chart_of_account_id, account_number, normal_side, beginning, debit, credit, ending, entry_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateEndOfDayBalanceParams struct {
	BranchID         string         `json:"branch_id"`
	BusinessDate     pgtype.Date    `json:"business_date"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	AccountNumber    string         `json:"account_number"`
	NormalSide       string         `json:"normal_side"`
	Beginning        pgtype.Numeric `json:"beginning"`
	Debit            pgtype.Numeric `json:"debit"`
	Credit           pgtype.Numeric `json:"credit"`
	Ending           pgtype.Numeric `json:"ending"`
	EntryCount       int32          `json:"entry_count"`
}

func (q *Queries) CreateEndOfDayBalance(ctx context.Context, arg CreateEndOfDayBalanceParams) error {
	_, err := q.db.Exec(ctx, createEndOfDayBalance,
		arg.BranchID,
		arg.BusinessDate,
		arg.ChartOfAccountID,
		arg.AccountNumber,
		arg.NormalSide,
		arg.Beginning,
		arg.Debit,
		arg.Credit,
		arg.Ending,
		arg.EntryCount,
	)
	return err
}

const getDayClose = `-- name: GetDayClose :one
SELECT branch_id, business_date, beginning, total_debit, total_credit, ending, entry_references, closed_at FROM day_closes
WHERE branch_id = $1 AND business_date = $2
`

type GetDayCloseParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) GetDayClose(ctx context.Context, arg GetDayCloseParams) (DayClose, error) {
	row := q.db.QueryRow(ctx, getDayClose, arg.BranchID, arg.BusinessDate)
	var i DayClose
	err := row.Scan(
		&i.BranchID,
		&i.BusinessDate,
		&i.Beginning,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.Ending,
		&i.EntryReferences,
		&i.ClosedAt,
	)
	return i, err
}

const getLatestDayCloseBefore = `-- name: GetLatestDayCloseBefore :one
SELECT branch_id, business_date, beginning, total_debit, total_credit, ending, entry_references, closed_at FROM day_closes
WHERE branch_id = $1 AND business_date < $2
ORDER BY business_date DESC
LIMIT 1
`

type GetLatestDayCloseBeforeParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) GetLatestDayCloseBefore(ctx context.Context, arg GetLatestDayCloseBeforeParams) (DayClose, error) {
	row := q.db.QueryRow(ctx, getLatestDayCloseBefore, arg.BranchID, arg.BusinessDate)
	var i DayClose
	err := row.Scan(
		&i.BranchID,
		&i.BusinessDate,
		&i.Beginning,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.Ending,
		&i.EntryReferences,
		&i.ClosedAt,
	)
	return i, err
}

const getLatestDayCloseOnOrBefore = `-- name: GetLatestDayCloseOnOrBefore :one
SELECT branch_id, business_date, beginning, total_debit, total_credit, ending, entry_references, closed_at FROM day_closes
WHERE branch_id = $1 AND business_date <= $2
ORDER BY business_date DESC
LIMIT 1
`

type GetLatestDayCloseOnOrBeforeParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) GetLatestDayCloseOnOrBefore(ctx context.Context, arg GetLatestDayCloseOnOrBeforeParams) (DayClose, error) {
	row := q.db.QueryRow(ctx, getLatestDayCloseOnOrBefore, arg.BranchID, arg.BusinessDate)
	var i DayClose
	err := row.Scan(
		&i.BranchID,
		&i.BusinessDate,
		&i.Beginning,
		&i.TotalDebit,
		&i.TotalCredit,
		&i.Ending,
		&i.EntryReferences,
		&i.ClosedAt,
	)
	return i, err
}

const listEndOfDayBalances = `-- name: ListEndOfDayBalances :many
SELECT branch_id, business_date, chart_of_account_id, account_number, normal_side, beginning, debit, credit, ending, entry_count FROM end_of_day_balances
WHERE branch_id = $1 AND business_date = $2
ORDER BY account_number, chart_of_account_id
`

type ListEndOfDayBalancesParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) ListEndOfDayBalances(ctx context.Context, arg ListEndOfDayBalancesParams) ([]EndOfDayBalance, error) {
	rows, err := q.db.Query(ctx, listEndOfDayBalances, arg.BranchID, arg.BusinessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []EndOfDayBalance{}
	for rows.Next() {
		var i EndOfDayBalance
		if err := rows.Scan(
			&i.BranchID,
			&i.BusinessDate,
			&i.ChartOfAccountID,
			&i.AccountNumber,
			&i.NormalSide,
			&i.Beginning,
			&i.Debit,
			&i.Credit,
			&i.Ending,
			&i.EntryCount,
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
