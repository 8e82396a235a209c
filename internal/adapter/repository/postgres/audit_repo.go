package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
	"github.com/corebank/ledgerengine/internal/usecase"
)

const defaultAuditLimit = 100

// AuditRepository implements usecase.AuditRepository.
type AuditRepository struct {
	queries *generated.Queries
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return newAuditRepository(pool)
}

func newAuditRepository(db querier) *AuditRepository {
	return &AuditRepository{queries: generated.New(db)}
}

// Create inserts an audit entry outside any business transaction.
func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	return insertAuditLog(ctx, r.queries, log)
}

// CreateTx inserts an audit entry within tx.
func (r *AuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	return insertAuditLog(ctx, generated.New(tx.(*Tx).PgxTx()), log)
}

// List returns matching entries, newest first.
func (r *AuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	rows, err := r.queries.ListAuditLogs(ctx, generated.ListAuditLogsParams{
		Actor:        filter.Actor,
		Action:       string(filter.Action),
		ResourceType: filter.ResourceType,
		ResourceID:   filter.ResourceID,
		Limit:        int32(limit),
		Offset:       int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	logs := make([]*domain.AuditLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, rowToAuditLog(row))
	}
	return logs, nil
}

func insertAuditLog(ctx context.Context, q *generated.Queries, log *domain.AuditLog) error {
	if log.ID == "" {
		log.ID = ulid.Make().String()
	}

	before, err := marshalState(log.BeforeState)
	if err != nil {
		return err
	}
	after, err := marshalState(log.AfterState)
	if err != nil {
		return err
	}

	return q.CreateAuditLog(ctx, generated.CreateAuditLogParams{
		ID:           log.ID,
		Actor:        log.Actor,
		Action:       string(log.Action),
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		RequestID:    log.RequestID,
		IpAddress:    log.IPAddress,
		UserAgent:    log.UserAgent,
		BeforeState:  before,
		AfterState:   after,
		Status:       string(log.Status),
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    timeToPgTimestamptz(log.CreatedAt),
	})
}

func marshalState(state domain.JSON) ([]byte, error) {
	if state == nil {
		return nil, nil
	}
	return json.Marshal(state)
}

func rowToAuditLog(row generated.AuditLog) *domain.AuditLog {
	log := &domain.AuditLog{
		ID:           row.ID,
		Actor:        row.Actor,
		Action:       domain.AuditAction(row.Action),
		ResourceType: row.ResourceType,
		ResourceID:   row.ResourceID,
		RequestID:    row.RequestID,
		IPAddress:    row.IpAddress,
		UserAgent:    row.UserAgent,
		Status:       domain.AuditStatus(row.Status),
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt.Time,
	}
	if row.BeforeState != nil {
		_ = json.Unmarshal(row.BeforeState, &log.BeforeState)
	}
	if row.AfterState != nil {
		_ = json.Unmarshal(row.AfterState, &log.AfterState)
	}
	return log
}
