package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const ensureBranchDay = `-- name: EnsureBranchDay :exec
INSERT INTO branch_days (branch_id, business_date, status)
VALUES ($1, $2, 'open')
ON CONFLICT (branch_id, business_date) DO NOTHING
`

type EnsureBranchDayParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) EnsureBranchDay(ctx context.Context, arg EnsureBranchDayParams) error {
	_, err := q.db.Exec(ctx, ensureBranchDay, arg.BranchID, arg.BusinessDate)
	return err
}

const getBranchDay = `-- name: GetBranchDay :one
SELECT branch_id, business_date, status, close_attempts, last_error, closed_at FROM branch_days
WHERE branch_id = $1 AND business_date = $2
`

type GetBranchDayParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) GetBranchDay(ctx context.Context, arg GetBranchDayParams) (BranchDay, error) {
	row := q.db.QueryRow(ctx, getBranchDay, arg.BranchID, arg.BusinessDate)
	var i BranchDay
	err := row.Scan(
		&i.BranchID,
		&i.BusinessDate,
		&i.Status,
		&i.CloseAttempts,
		&i.LastError,
		&i.ClosedAt,
	)
	return i, err
}

const getBranchDayForUpdate = `-- name: GetBranchDayForUpdate :one
SELECT branch_id, business_date, status, close_attempts, last_error, closed_at FROM branch_days
WHERE branch_id = $1 AND business_date = $2
FOR UPDATE
`

type GetBranchDayForUpdateParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) GetBranchDayForUpdate(ctx context.Context, arg GetBranchDayForUpdateParams) (BranchDay, error) {
	row := q.db.QueryRow(ctx, getBranchDayForUpdate, arg.BranchID, arg.BusinessDate)
	var i BranchDay
	err := row.Scan(
		&i.BranchID,
		&i.BusinessDate,
		&i.Status,
		&i.CloseAttempts,
		&i.LastError,
		&i.ClosedAt,
	)
	return i, err
}

const getLastClosedDate = `-- name: GetLastClosedDate :one
SELECT MAX(business_date)::date AS last_closed FROM branch_days
WHERE branch_id = $1 AND status = 'closed'
`

func (q *Queries) GetLastClosedDate(ctx context.Context, branchID string) (pgtype.Date, error) {
	row := q.db.QueryRow(ctx, getLastClosedDate, branchID)
	var last_closed pgtype.Date
	err := row.Scan(&last_closed)
	return last_closed, err
}

const listOpenBranchDaysBefore = `-- name: ListOpenBranchDaysBefore :many
SELECT branch_id, business_date, status, close_attempts, last_error, closed_at FROM branch_days
WHERE branch_id = $1 AND business_date < $2 AND status = 'open'
ORDER BY business_date
`

type ListOpenBranchDaysBeforeParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
}

func (q *Queries) ListOpenBranchDaysBefore(ctx context.Context, arg ListOpenBranchDaysBeforeParams) ([]BranchDay, error) {
	rows, err := q.db.Query(ctx, listOpenBranchDaysBefore, arg.BranchID, arg.BusinessDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []BranchDay{}
	for rows.Next() {
		var i BranchDay
		if err := rows.Scan(
			&i.BranchID,
			&i.BusinessDate,
			&i.Status,
			&i.CloseAttempts,
			&i.LastError,
			&i.ClosedAt,
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

const lockBranchExclusive = `-- name: LockBranchExclusive :exec
SELECT pg_advisory_xact_lock(hashtextextended('branch:' || $1::text, 0))
`

func (q *Queries) LockBranchExclusive(ctx context.Context, branchID string) error {
	_, err := q.db.Exec(ctx, lockBranchExclusive, branchID)
	return err
}

const lockBranchShared = `-- name: LockBranchShared :exec
SELECT pg_advisory_xact_lock_shared(hashtextextended('branch:' || $1::text, 0))
`

func (q *Queries) LockBranchShared(ctx context.Context, branchID string) error {
	_, err := q.db.Exec(ctx, lockBranchShared, branchID)
	return err
}

const markBranchDayClosed = `-- name: MarkBranchDayClosed :exec
INSERT INTO branch_days (branch_id, business_date, status, close_attempts, last_error, closed_at)
VALUES ($1, $2, 'closed', 1, '', $3)
ON CONFLICT (branch_id, business_date) DO UPDATE
SET status = 'closed', close_attempts = branch_days.close_attempts + 1, last_error = '', closed_at = EXCLUDED.closed_at
`

type MarkBranchDayClosedParams struct {
	BranchID     string             `json:"branch_id"`
	BusinessDate pgtype.Date        `json:"business_date"`
	ClosedAt     pgtype.Timestamptz `json:"closed_at"`
}

func (q *Queries) MarkBranchDayClosed(ctx context.Context, arg MarkBranchDayClosedParams) error {
	_, err := q.db.Exec(ctx, markBranchDayClosed, arg.BranchID, arg.BusinessDate, arg.ClosedAt)
	return err
}

const recordBranchDayFailure = `-- name: RecordBranchDayFailure :exec
INSERT INTO branch_days (branch_id, business_date, status, close_attempts, last_error)
VALUES ($1, $2, 'open', 1, $3)
ON CONFLICT (branch_id, business_date) DO UPDATE
SET close_attempts = branch_days.close_attempts + 1, last_error = EXCLUDED.last_error
`

type RecordBranchDayFailureParams struct {
	BranchID     string      `json:"branch_id"`
	BusinessDate pgtype.Date `json:"business_date"`
	LastError    string      `json:"last_error"`
}

func (q *Queries) RecordBranchDayFailure(ctx context.Context, arg RecordBranchDayFailureParams) error {
	_, err := q.db.Exec(ctx, recordBranchDayFailure, arg.BranchID, arg.BusinessDate, arg.LastError)
	return err
}

const setLockTimeout = `-- name: SetLockTimeout :exec
SELECT set_config('lock_timeout', $1::text, true)
`

func (q *Queries) SetLockTimeout(ctx context.Context, timeout string) error {
	_, err := q.db.Exec(ctx, setLockTimeout, timeout)
	return err
}

const setTransactionTimeouts = `-- name: SetTransactionTimeouts :exec
SELECT set_config('statement_timeout', $1::text, true), set_config('idle_in_transaction_session_timeout', $1::text, true)
`

func (q *Queries) SetTransactionTimeouts(ctx context.Context, timeout string) error {
	_, err := q.db.Exec(ctx, setTransactionTimeouts, timeout)
	return err
}
