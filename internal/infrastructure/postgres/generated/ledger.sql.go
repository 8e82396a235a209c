package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const checkLedgerConsistency = `-- name: CheckLedgerConsistency :one
WITH per_reference AS (
    SELECT transaction_reference, SUM(debit) AS debit, SUM(credit) AS credit
    FROM posted_entries
    GROUP BY transaction_reference
)
SELECT
    COALESCE(SUM(debit), 0)::numeric AS total_debit,
    COALESCE(SUM(credit), 0)::numeric AS total_credit,
    COUNT(*) FILTER (WHERE debit <> credit) AS unbalanced_references
FROM per_reference
`

type CheckLedgerConsistencyRow struct {
	TotalDebit           pgtype.Numeric `json:"total_debit"`
	TotalCredit          pgtype.Numeric `json:"total_credit"`
	UnbalancedReferences int64          `json:"unbalanced_references"`
}

func (q *Queries) CheckLedgerConsistency(ctx context.Context) (CheckLedgerConsistencyRow, error) {
	row := q.db.QueryRow(ctx, checkLedgerConsistency)
	var i CheckLedgerConsistencyRow
	err := row.Scan(&i.TotalDebit, &i.TotalCredit, &i.UnbalancedReferences)
	return i, err
}
