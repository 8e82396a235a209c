package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/ledgerengine/internal/infrastructure/postgres/generated"
	"github.com/corebank/ledgerengine/internal/usecase"
)

type pgxPool interface {
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager implements usecase.TransactionManager. Every transaction it
// opens carries a statement and idle-in-transaction timeout.
type TxManager struct {
	pool    pgxPool
	timeout time.Duration
}

// NewTxManager creates a new TxManager. A non-positive timeout falls back to
// usecase.DefaultTransactionTimeout.
func NewTxManager(pool *pgxpool.Pool, timeout time.Duration) *TxManager {
	if timeout <= 0 {
		timeout = usecase.DefaultTransactionTimeout
	}
	return newTxManagerWithPool(pool, timeout)
}

// newTxManagerWithPool leaves the server defaults in place when timeout is zero.
func newTxManagerWithPool(pool pgxPool, timeout time.Duration) *TxManager {
	return &TxManager{pool: pool, timeout: timeout}
}

// Begin starts a new transaction bounded by the manager's timeout.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	if m.timeout > 0 {
		limit := fmt.Sprintf("%dms", m.timeout.Milliseconds())
		if err := generated.New(tx).SetTransactionTimeouts(ctx, limit); err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("set transaction timeout: %w", err)
		}
	}

	return &Tx{tx: tx}, nil
}

// Tx wraps a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction.
func (t *Tx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// PgxTx returns the underlying pgx.Tx.
func (t *Tx) PgxTx() pgx.Tx {
	return t.tx
}
