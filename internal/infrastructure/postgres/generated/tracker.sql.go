package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTracker = `-- name: CreateTracker :execrows
INSERT INTO transaction_trackers (reference, payload, status, has_passed, number_of_retry, last_error, next_attempt_at, created_at, updated_at, version)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
ON CONFLICT (reference) DO NOTHING
`

type CreateTrackerParams struct {
	Reference     string             `json:"reference"`
	Payload       []byte             `json:"payload"`
	Status        string             `json:"status"`
	HasPassed     bool               `json:"has_passed"`
	NumberOfRetry int32              `json:"number_of_retry"`
	LastError     string             `json:"last_error"`
	NextAttemptAt pgtype.Timestamptz `json:"next_attempt_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateTracker(ctx context.Context, arg CreateTrackerParams) (int64, error) {
	result, err := q.db.Exec(ctx, createTracker,
		arg.Reference,
		arg.Payload,
		arg.Status,
		arg.HasPassed,
		arg.NumberOfRetry,
		arg.LastError,
		arg.NextAttemptAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getTracker = `-- name: GetTracker :one
SELECT reference, payload, status, has_passed, number_of_retry, last_error, next_attempt_at, created_at, updated_at, version FROM transaction_trackers
WHERE reference = $1
`

func (q *Queries) GetTracker(ctx context.Context, reference string) (TransactionTracker, error) {
	row := q.db.QueryRow(ctx, getTracker, reference)
	var i TransactionTracker
	err := row.Scan(
		&i.Reference,
		&i.Payload,
		&i.Status,
		&i.HasPassed,
		&i.NumberOfRetry,
		&i.LastError,
		&i.NextAttemptAt,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.Version,
	)
	return i, err
}

const listDueTrackers = `-- name: ListDueTrackers :many
SELECT reference, payload, status, has_passed, number_of_retry, last_error, next_attempt_at, created_at, updated_at, version FROM transaction_trackers
WHERE (status = 'retrying' AND next_attempt_at <= $1)
   OR (status = 'pending' AND updated_at <= $2)
ORDER BY created_at, reference
LIMIT $3
`

type ListDueTrackersParams struct {
	Now         pgtype.Timestamptz `json:"now"`
	StaleBefore pgtype.Timestamptz `json:"stale_before"`
	Limit       int32              `json:"limit"`
}

func (q *Queries) ListDueTrackers(ctx context.Context, arg ListDueTrackersParams) ([]TransactionTracker, error) {
	rows, err := q.db.Query(ctx, listDueTrackers, arg.Now, arg.StaleBefore, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []TransactionTracker{}
	for rows.Next() {
		var i TransactionTracker
		if err := rows.Scan(
			&i.Reference,
			&i.Payload,
			&i.Status,
			&i.HasPassed,
			&i.NumberOfRetry,
			&i.LastError,
			&i.NextAttemptAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.Version,
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

const listTrackersByStatus = `-- name: ListTrackersByStatus :many
SELECT reference, payload, status, has_passed, number_of_retry, last_error, next_attempt_at, created_at, updated_at, version FROM transaction_trackers
WHERE status = $1
ORDER BY created_at, reference
LIMIT $2 OFFSET $3
`

type ListTrackersByStatusParams struct {
	Status string `json:"status"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

func (q *Queries) ListTrackersByStatus(ctx context.Context, arg ListTrackersByStatusParams) ([]TransactionTracker, error) {
	rows, err := q.db.Query(ctx, listTrackersByStatus, arg.Status, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []TransactionTracker{}
	for rows.Next() {
		var i TransactionTracker
		if err := rows.Scan(
			&i.Reference,
			&i.Payload,
			&i.Status,
			&i.HasPassed,
			&i.NumberOfRetry,
			&i.LastError,
			&i.NextAttemptAt,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.Version,
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

const updateTracker = `-- name: UpdateTracker :execrows
UPDATE transaction_trackers
SET status = $2, has_passed = $3, number_of_retry = $4, last_error = $5, next_attempt_at = $6, updated_at = $7, version = version + 1
WHERE reference = $1 AND version = $8
`

type UpdateTrackerParams struct {
	Reference     string             `json:"reference"`
	Status        string             `json:"status"`
	HasPassed     bool               `json:"has_passed"`
	NumberOfRetry int32              `json:"number_of_retry"`
	LastError     string             `json:"last_error"`
	NextAttemptAt pgtype.Timestamptz `json:"next_attempt_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
	Version       int64              `json:"version"`
}

func (q *Queries) UpdateTracker(ctx context.Context, arg UpdateTrackerParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateTracker,
		arg.Reference,
		arg.Status,
		arg.HasPassed,
		arg.NumberOfRetry,
		arg.LastError,
		arg.NextAttemptAt,
		arg.UpdatedAt,
		arg.Version,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
