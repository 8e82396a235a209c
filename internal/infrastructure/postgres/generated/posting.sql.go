package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createPostedEntry = `-- name: CreatePostedEntry :exec
INSERT INTO posted_entries (id, transaction_reference, line_no, account_id, account_number, branch_id, debit, credit, value_date, description, event_code, attribute_code, reversal_of, posted_by, posted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`

type CreatePostedEntryParams struct {
	ID                   string             `json:"id"`
	TransactionReference string             `json:"transaction_reference"`
	LineNo               int32              `json:"line_no"`
	AccountID            string             `json:"account_id"`
	AccountNumber        string             `json:"account_number"`
	BranchID             string             `json:"branch_id"`
	Debit                pgtype.Numeric     `json:"debit"`
	Credit               pgtype.Numeric     `json:"credit"`
	ValueDate            pgtype.Date        `json:"value_date"`
	Description          string             `json:"description"`
	EventCode            string             `json:"event_code"`
	AttributeCode        string             `json:"attribute_code"`
	ReversalOf           pgtype.Text        `json:"reversal_of"`
	PostedBy             string             `json:"posted_by"`
	PostedAt             pgtype.Timestamptz `json:"posted_at"`
}

func (q *Queries) CreatePostedEntry(ctx context.Context, arg CreatePostedEntryParams) error {
	_, err := q.db.Exec(ctx, createPostedEntry,
		arg.ID,
		arg.TransactionReference,
		arg.LineNo,
		arg.AccountID,
		arg.AccountNumber,
		arg.BranchID,
		arg.Debit,
		arg.Credit,
		arg.ValueDate,
		arg.Description,
		arg.EventCode,
		arg.AttributeCode,
		arg.ReversalOf,
		arg.PostedBy,
		arg.PostedAt,
	)
	return err
}

const createPosting = `-- name: CreatePosting :execrows
INSERT INTO postings (reference, event_code, attribute_code, reversal_of, snapshot_version, line_count, posted_by, posted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (reference) DO NOTHING
`

type CreatePostingParams struct {
	Reference       string             `json:"reference"`
	EventCode       string             `json:"event_code"`
	AttributeCode   string             `json:"attribute_code"`
	ReversalOf      pgtype.Text        `json:"reversal_of"`
	SnapshotVersion int64              `json:"snapshot_version"`
	LineCount       int32              `json:"line_count"`
	PostedBy        string             `json:"posted_by"`
	PostedAt        pgtype.Timestamptz `json:"posted_at"`
}

func (q *Queries) CreatePosting(ctx context.Context, arg CreatePostingParams) (int64, error) {
	result, err := q.db.Exec(ctx, createPosting,
		arg.Reference,
		arg.EventCode,
		arg.AttributeCode,
		arg.ReversalOf,
		arg.SnapshotVersion,
		arg.LineCount,
		arg.PostedBy,
		arg.PostedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getPosting = `-- name: GetPosting :one
SELECT reference, event_code, attribute_code, reversal_of, snapshot_version, line_count, posted_by, posted_at FROM postings WHERE reference = $1
`

func (q *Queries) GetPosting(ctx context.Context, reference string) (Posting, error) {
	row := q.db.QueryRow(ctx, getPosting, reference)
	var i Posting
	err := row.Scan(
		&i.Reference,
		&i.EventCode,
		&i.AttributeCode,
		&i.ReversalOf,
		&i.SnapshotVersion,
		&i.LineCount,
		&i.PostedBy,
		&i.PostedAt,
	)
	return i, err
}

const listPostedEntries = `-- name: ListPostedEntries :many
SELECT id, transaction_reference, line_no, account_id, account_number, branch_id, debit, credit, value_date, description, event_code, attribute_code, reversal_of, posted_by, posted_at FROM posted_entries
WHERE transaction_reference = $1
ORDER BY line_no
`

func (q *Queries) ListPostedEntries(ctx context.Context, transactionReference string) ([]PostedEntry, error) {
	rows, err := q.db.Query(ctx, listPostedEntries, transactionReference)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PostedEntry{}
	for rows.Next() {
		var i PostedEntry
		if err := rows.Scan(
			&i.ID,
			&i.TransactionReference,
			&i.LineNo,
			&i.AccountID,
			&i.AccountNumber,
			&i.BranchID,
			&i.Debit,
			&i.Credit,
			&i.ValueDate,
			&i.Description,
			&i.EventCode,
			&i.AttributeCode,
			&i.ReversalOf,
			&i.PostedBy,
			&i.PostedAt,
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

const lockAccountDay = `-- name: LockAccountDay :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))
`

func (q *Queries) LockAccountDay(ctx context.Context, key string) error {
	_, err := q.db.Exec(ctx, lockAccountDay, key)
	return err
}

const listReferencesByBranchDay = `-- name: ListReferencesByBranchDay :many
SELECT DISTINCT transaction_reference FROM posted_entries
WHERE branch_id = $1 AND value_date = $2
ORDER BY transaction_reference
`

type ListReferencesByBranchDayParams struct {
	BranchID  string      `json:"branch_id"`
	ValueDate pgtype.Date `json:"value_date"`
}

func (q *Queries) ListReferencesByBranchDay(ctx context.Context, arg ListReferencesByBranchDayParams) ([]string, error) {
	rows, err := q.db.Query(ctx, listReferencesByBranchDay, arg.BranchID, arg.ValueDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []string{}
	for rows.Next() {
		var transaction_reference string
		if err := rows.Scan(&transaction_reference); err != nil {
			return nil, err
		}
		items = append(items, transaction_reference)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumByBranchDay = `-- name: SumByBranchDay :many
SELECT account_id, account_number, SUM(debit)::numeric AS debit, SUM(credit)::numeric AS credit, COUNT(*) AS entry_count
FROM posted_entries
WHERE branch_id = $1 AND value_date = $2
GROUP BY account_id, account_number
ORDER BY account_number
`

type SumByBranchDayParams struct {
	BranchID  string      `json:"branch_id"`
	ValueDate pgtype.Date `json:"value_date"`
}

type SumByBranchDayRow struct {
	AccountID     string         `json:"account_id"`
	AccountNumber string         `json:"account_number"`
	Debit         pgtype.Numeric `json:"debit"`
	Credit        pgtype.Numeric `json:"credit"`
	EntryCount    int64          `json:"entry_count"`
}

func (q *Queries) SumByBranchDay(ctx context.Context, arg SumByBranchDayParams) ([]SumByBranchDayRow, error) {
	rows, err := q.db.Query(ctx, sumByBranchDay, arg.BranchID, arg.ValueDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SumByBranchDayRow{}
	for rows.Next() {
		var i SumByBranchDayRow
		if err := rows.Scan(
			&i.AccountID,
			&i.AccountNumber,
			&i.Debit,
			&i.Credit,
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

const sumByBranchRange = `-- name: SumByBranchRange :many
SELECT account_id, account_number, SUM(debit)::numeric AS debit, SUM(credit)::numeric AS credit, COUNT(*) AS entry_count
FROM posted_entries
WHERE branch_id = $1
  AND ($2::date IS NULL OR value_date > $2::date)
  AND value_date <= $3::date
GROUP BY account_id, account_number
ORDER BY account_number
`

type SumByBranchRangeParams struct {
	BranchID string      `json:"branch_id"`
	After    pgtype.Date `json:"after"`
	Through  pgtype.Date `json:"through"`
}

type SumByBranchRangeRow struct {
	AccountID     string         `json:"account_id"`
	AccountNumber string         `json:"account_number"`
	Debit         pgtype.Numeric `json:"debit"`
	Credit        pgtype.Numeric `json:"credit"`
	EntryCount    int64          `json:"entry_count"`
}

func (q *Queries) SumByBranchRange(ctx context.Context, arg SumByBranchRangeParams) ([]SumByBranchRangeRow, error) {
	rows, err := q.db.Query(ctx, sumByBranchRange, arg.BranchID, arg.After, arg.Through)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SumByBranchRangeRow{}
	for rows.Next() {
		var i SumByBranchRangeRow
		if err := rows.Scan(
			&i.AccountID,
			&i.AccountNumber,
			&i.Debit,
			&i.Credit,
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
