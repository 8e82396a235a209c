package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

// PostingRepository defines data access for posted entry sets.
type PostingRepository interface {
	// GetByReference returns the entries of a reference ordered by line, or
	// an empty slice when nothing was posted under it.
	GetByReference(ctx context.Context, reference string) ([]*domain.PostedEntry, error)
	GetHeader(ctx context.Context, reference string) (*domain.PostingHeader, error)
	// LockAccountDays serializes writers of the same account-days until tx ends.
	// Keys must be passed in sorted order.
	LockAccountDays(ctx context.Context, tx Transaction, keys []domain.AccountDayKey) error
	// CreateHeader returns domain.ErrDuplicatePosting when the reference exists.
	CreateHeader(ctx context.Context, tx Transaction, header *domain.PostingHeader) error
	CreateEntries(ctx context.Context, tx Transaction, entries []*domain.PostedEntry) error
	SumByBranchDay(ctx context.Context, branchID string, date time.Time) ([]domain.AccountMovement, error)
	// SumByBranchRange aggregates value dates in (after, through]. A zero after means unbounded.
	SumByBranchRange(ctx context.Context, branchID string, after, through time.Time) ([]domain.AccountMovement, error)
	ListReferencesByBranchDay(ctx context.Context, branchID string, date time.Time) ([]string, error)
}

// BranchDayRepository defines the posting barrier of branch business days.
type BranchDayRepository interface {
	// Admit takes a shared hold on the branch day for the life of tx and
	// returns domain.ErrBranchDayClosed when the day no longer admits postings.
	Admit(ctx context.Context, tx Transaction, branchID string, date time.Time) error
	// BeginClose takes the exclusive hold, waiting at most drainTimeout for
	// in-flight postings, and returns domain.ErrDayCloseNotQuiescent on timeout.
	BeginClose(ctx context.Context, tx Transaction, branchID string, date time.Time, drainTimeout time.Duration) (*domain.BranchDay, error)
	MarkClosed(ctx context.Context, tx Transaction, branchID string, date time.Time, closedAt time.Time) error
	RecordFailure(ctx context.Context, branchID string, date time.Time, message string, at time.Time) error
	Get(ctx context.Context, branchID string, date time.Time) (*domain.BranchDay, error)
	ListOpenBefore(ctx context.Context, branchID string, date time.Time) ([]*domain.BranchDay, error)
}

// DayCloseRepository defines data access for day close snapshots.
type DayCloseRepository interface {
	Save(ctx context.Context, tx Transaction, close *domain.CloseOfDayData) error
	// Get returns domain.ErrDayNotClosed when no successful close exists.
	Get(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error)
	// GetLatestBefore returns nil when the branch has never been closed before date.
	GetLatestBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error)
	GetLatestOnOrBefore(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error)
}

// TrackerRepository defines data access for transaction trackers.
type TrackerRepository interface {
	// Create returns domain.ErrTrackerExists when the reference is taken.
	Create(ctx context.Context, tracker *domain.TransactionTracker) error
	Get(ctx context.Context, reference string) (*domain.TransactionTracker, error)
	// Update writes the tracker if its stored version equals tracker.Version
	// and increments the version; otherwise domain.ErrTrackerConflict.
	Update(ctx context.Context, tracker *domain.TransactionTracker) error
	ListByStatus(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error)
	// ListDue returns retrying trackers whose next attempt is at or before now
	// and pending trackers untouched for StalePendingAfter, oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*domain.TransactionTracker, error)
}

// TrialBalanceRepository persists generated trial balances.
type TrialBalanceRepository interface {
	Save(ctx context.Context, file *domain.TrialBalanceFile) error
}

// LedgerRepository defines data access for ledger-wide operations.
type LedgerRepository interface {
	CheckConsistency(ctx context.Context) (totalDebit, totalCredit decimal.Decimal, unbalancedReferences int64, err error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// ConfigSource loads the master data a configuration snapshot is built from.
type ConfigSource interface {
	Load(ctx context.Context) (*domain.ConfigSet, error)
}

// ConfigNotifier broadcasts configuration changes between instances.
type ConfigNotifier interface {
	Publish(ctx context.Context, version int64) error
	// Subscribe calls onChange for every notification until ctx is done.
	Subscribe(ctx context.Context, onChange func(ctx context.Context)) error
}

// PostingExecutor resolves and posts a command. It must be idempotent per reference.
type PostingExecutor interface {
	Execute(ctx context.Context, cmd domain.PostingCommand) (*PostingResult, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, key string) error
}

// MetricsRecorder receives engine measurements.
type MetricsRecorder interface {
	PostingCommitted(eventCode string, lines int, elapsed time.Duration)
	PostingReplayed()
	PostingRejected(reason string)
	PostingReversed()
	TrackerTransition(status domain.TrackerStatus)
	DayClosed(outcome string, elapsed time.Duration)
	SnapshotLoaded(version int64)
	SnapshotRejected()
}

// SnapshotProvider returns the active configuration snapshot.
type SnapshotProvider interface {
	Current() (*Snapshot, error)
}
