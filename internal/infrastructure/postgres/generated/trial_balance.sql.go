package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTrialBalance = `-- name: CreateTrialBalance :exec
INSERT INTO trial_balances (id, branch_id, as_of, base_close, total_debit, total_credit, generated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateTrialBalanceParams struct {
	ID          string             `json:"id"`
	BranchID    string             `json:"branch_id"`
	AsOf        pgtype.Date        `json:"as_of"`
	BaseClose   pgtype.Date        `json:"base_close"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	GeneratedAt pgtype.Timestamptz `json:"generated_at"`
}

func (q *Queries) CreateTrialBalance(ctx context.Context, arg CreateTrialBalanceParams) error {
	_, err := q.db.Exec(ctx, createTrialBalance,
		arg.ID,
		arg.BranchID,
		arg.AsOf,
		arg.BaseClose,
		arg.TotalDebit,
		arg.TotalCredit,
		arg.GeneratedAt,
	)
	return err
}

const createTrialBalanceLine = `-- name: CreateTrialBalanceLine :exec
INSERT INTO trial_balance_lines (trial_balance_id, chart_of_account_id, account_number, normal_side, debit, credit)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateTrialBalanceLineParams struct {
	TrialBalanceID   string         `json:"trial_balance_id"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	AccountNumber    string         `json:"account_number"`
	NormalSide       string         `json:"normal_side"`
	Debit            pgtype.Numeric `json:"debit"`
	Credit           pgtype.Numeric `json:"credit"`
}

func (q *Queries) CreateTrialBalanceLine(ctx context.Context, arg CreateTrialBalanceLineParams) error {
	_, err := q.db.Exec(ctx, createTrialBalanceLine,
		arg.TrialBalanceID,
		arg.ChartOfAccountID,
		arg.AccountNumber,
		arg.NormalSide,
		arg.Debit,
		arg.Credit,
	)
	return err
}
