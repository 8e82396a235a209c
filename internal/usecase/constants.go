package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running transactions from blocking tables
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// DefaultDrainTimeout bounds how long a day close waits for in-flight postings
	DefaultDrainTimeout = 5 * time.Second

	// DefaultTrackerMaxRetries is the attempt budget before a tracker fails
	DefaultTrackerMaxRetries = 5

	// StalePendingAfter is how long a pending tracker may sit untouched before
	// the retry worker treats it as abandoned
	StalePendingAfter = time.Minute

	// ConfigCacheTTL is how long a loaded configuration set stays in the shared cache
	ConfigCacheTTL = 10 * time.Minute
)

// Day close outcomes reported to metrics.
const (
	OutcomeClosed        = "closed"
	OutcomeAlreadyClosed = "already_closed"
	OutcomeNotQuiescent  = "not_quiescent"
	OutcomeFailed        = "failed"
)
