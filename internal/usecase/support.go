package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/corebank/ledgerengine/internal/domain"
)

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// NopMetrics discards measurements.
type NopMetrics struct{}

func (NopMetrics) PostingCommitted(string, int, time.Duration) {}
func (NopMetrics) PostingReplayed()                            {}
func (NopMetrics) PostingRejected(string)                      {}
func (NopMetrics) PostingReversed()                            {}
func (NopMetrics) TrackerTransition(domain.TrackerStatus)      {}
func (NopMetrics) DayClosed(string, time.Duration)             {}
func (NopMetrics) SnapshotLoaded(int64)                        {}
func (NopMetrics) SnapshotRejected()                           {}

// NoRetry runs an operation exactly once.
type NoRetry struct{}

// Retry calls operation once.
func (NoRetry) Retry(_ context.Context, operation func() error) error { return operation() }

// toPayload flattens an event payload struct into the outbox map form.
func toPayload(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out map[string]any
	_ = json.Unmarshal(raw, &out)
	return out
}

func newOutboxEvent(id, aggregateType, aggregateID, eventType string, payload any, now time.Time) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:            id,
		AggregateID:   aggregateID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       toPayload(payload),
		CreatedAt:     now,
	}
}
