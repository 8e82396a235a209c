// Package memory holds in-process implementations of the usecase
// repositories. Writes staged on a Tx become visible on Commit, and the
// lock semantics of the PostgreSQL adapter are reproduced with weighted
// semaphores.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// ErrTxDone is returned when committing a finished transaction.
var ErrTxDone = errors.New("transaction already committed or rolled back")

// barrierWeight is the weight a day close acquires on a branch barrier.
const barrierWeight = 1 << 30

// Store is the shared in-memory state behind every repository.
type Store struct {
	mu sync.RWMutex

	headers     map[string]domain.PostingHeader
	entries     map[string][]domain.PostedEntry
	branchDays  map[string]*domain.BranchDay
	lastClosed  map[string]time.Time
	closes      map[string]map[string]domain.CloseOfDayData
	trackers    map[string]domain.TransactionTracker
	trialFiles  map[string]domain.TrialBalanceFile
	outbox      []*domain.OutboxEvent
	outboxIndex map[string]int
	audit       []domain.AuditLog

	locks    keyedLocks
	barriers keyedLocks
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		headers:     make(map[string]domain.PostingHeader),
		entries:     make(map[string][]domain.PostedEntry),
		branchDays:  make(map[string]*domain.BranchDay),
		lastClosed:  make(map[string]time.Time),
		closes:      make(map[string]map[string]domain.CloseOfDayData),
		trackers:    make(map[string]domain.TransactionTracker),
		trialFiles:  make(map[string]domain.TrialBalanceFile),
		outboxIndex: make(map[string]int),
		locks:       keyedLocks{size: 1},
		barriers:    keyedLocks{size: barrierWeight},
	}
}

type keyedLocks struct {
	mu   sync.Mutex
	size int64
	m    map[string]*semaphore.Weighted
}

func (k *keyedLocks) get(key string) *semaphore.Weighted {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.m == nil {
		k.m = make(map[string]*semaphore.Weighted)
	}
	s, ok := k.m[key]
	if !ok {
		s = semaphore.NewWeighted(k.size)
		k.m[key] = s
	}
	return s
}

// TxManager implements usecase.TransactionManager.
type TxManager struct {
	store *Store
}

// NewTxManager creates a new TxManager.
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Begin starts a new transaction.
func (m *TxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{store: m.store}, nil
}

// Tx stages writes and holds locks until it ends.
type Tx struct {
	store    *Store
	mu       sync.Mutex
	ops      []func(*Store)
	releases []func()
	done     bool
}

// Commit applies the staged writes atomically and releases held locks.
func (t *Tx) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTxDone
	}
	t.done = true

	t.store.mu.Lock()
	for _, op := range t.ops {
		op(t.store)
	}
	t.store.mu.Unlock()

	t.release()
	return nil
}

// Rollback discards staged writes. Calling it on a finished transaction is a no-op.
func (t *Tx) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	t.ops = nil
	t.release()
	return nil
}

func (t *Tx) release() {
	for i := len(t.releases) - 1; i >= 0; i-- {
		t.releases[i]()
	}
	t.releases = nil
}

func (t *Tx) stage(op func(*Store)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTxDone
	}
	t.ops = append(t.ops, op)
	return nil
}

// hold acquires n units of sem for the life of the transaction.
func (t *Tx) hold(ctx context.Context, sem *semaphore.Weighted, n int64) error {
	if err := sem.Acquire(ctx, n); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		sem.Release(n)
		return ErrTxDone
	}
	t.releases = append(t.releases, func() { sem.Release(n) })
	return nil
}

func asTx(tx usecase.Transaction) *Tx {
	return tx.(*Tx)
}

func dayKey(branchID string, date time.Time) string {
	return domain.BranchDayKey{BranchID: branchID, Date: domain.BusinessDate(date)}.String()
}
