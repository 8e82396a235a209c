package domain

import (
	"fmt"
	"time"
)

// TrackerStatus is the state of a transaction tracker.
type TrackerStatus string

const (
	TrackerPending  TrackerStatus = "pending"
	TrackerRetrying TrackerStatus = "retrying"
	TrackerPosted   TrackerStatus = "posted"
	TrackerFailed   TrackerStatus = "failed"
	TrackerReversed TrackerStatus = "reversed"
)

// ParseTrackerStatus parses a status name.
func ParseTrackerStatus(s string) (TrackerStatus, error) {
	switch st := TrackerStatus(s); st {
	case TrackerPending, TrackerRetrying, TrackerPosted, TrackerFailed, TrackerReversed:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown tracker status %q", ErrInvalidTransition, s)
}

var trackerTransitions = map[TrackerStatus][]TrackerStatus{
	TrackerPending:  {TrackerPosted, TrackerRetrying, TrackerFailed},
	TrackerRetrying: {TrackerPosted, TrackerRetrying, TrackerFailed},
	TrackerFailed:   {TrackerRetrying},
	TrackerPosted:   {TrackerReversed},
}

// CanTransition reports whether from -> to is allowed.
func CanTransition(from, to TrackerStatus) bool {
	for _, s := range trackerTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransactionTracker is the durable idempotency and retry record of a
// posting command.
type TransactionTracker struct {
	Reference     string
	Payload       []byte
	Status        TrackerStatus
	HasPassed     bool
	NumberOfRetry int
	LastError     string
	NextAttemptAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int64
}

// NewTransactionTracker creates a Pending tracker.
func NewTransactionTracker(ref string, payload []byte, now time.Time) *TransactionTracker {
	return &TransactionTracker{
		Reference: ref,
		Payload:   payload,
		Status:    TrackerPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (t *TransactionTracker) transition(to TrackerStatus, now time.Time) error {
	if !CanTransition(t.Status, to) {
		return fmt.Errorf("%w: %s -> %s for %s", ErrInvalidTransition, t.Status, to, t.Reference)
	}
	t.Status = to
	t.UpdatedAt = now
	return nil
}

// MarkPosted records a successful commit.
func (t *TransactionTracker) MarkPosted(now time.Time) error {
	if err := t.transition(TrackerPosted, now); err != nil {
		return err
	}
	t.HasPassed = true
	t.LastError = ""
	t.NextAttemptAt = nil
	return nil
}

// RecordTransientFailure counts a failed attempt. The tracker moves to
// Retrying, or to Failed once maxRetries attempts have failed.
func (t *TransactionTracker) RecordTransientFailure(cause error, now, nextAttempt time.Time, maxRetries int) error {
	t.NumberOfRetry++
	t.LastError = cause.Error()
	if t.NumberOfRetry >= maxRetries {
		return t.MarkFailed(cause, now)
	}
	if err := t.transition(TrackerRetrying, now); err != nil {
		return err
	}
	t.NextAttemptAt = &nextAttempt
	return nil
}

// MarkFailed parks the tracker for operator action.
func (t *TransactionTracker) MarkFailed(cause error, now time.Time) error {
	if err := t.transition(TrackerFailed, now); err != nil {
		return err
	}
	t.LastError = cause.Error()
	t.NextAttemptAt = nil
	return nil
}

// RequeueManually moves a Failed tracker back to Retrying with a fresh
// retry budget.
func (t *TransactionTracker) RequeueManually(now time.Time) error {
	if t.Status != TrackerFailed {
		return fmt.Errorf("%w: only failed trackers can be retried, %s is %s", ErrInvalidTransition, t.Reference, t.Status)
	}
	if err := t.transition(TrackerRetrying, now); err != nil {
		return err
	}
	t.NumberOfRetry = 0
	t.NextAttemptAt = &now
	return nil
}

// MarkReversed records that the posted entry set was reversed.
func (t *TransactionTracker) MarkReversed(now time.Time) error {
	if t.Status == TrackerReversed {
		return nil
	}
	return t.transition(TrackerReversed, now)
}
