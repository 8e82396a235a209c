package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/domain"
)

// TrackerConfig bounds the retry behaviour of the transaction tracker.
type TrackerConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultTrackerConfig returns the default retry bounds.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		MaxRetries:      DefaultTrackerMaxRetries,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// TrackerUseCase drives postings to completion through a persisted tracker.
type TrackerUseCase struct {
	trackers  TrackerRepository
	executor  PostingExecutor
	txManager TransactionManager
	outbox    OutboxRepository
	audit     AuditRepository
	idGen     IDGenerator
	clock     Clock
	metrics   MetricsRecorder
	logger    zerolog.Logger
	cfg       TrackerConfig
}

// NewTrackerUseCase creates a new TrackerUseCase.
func NewTrackerUseCase(
	trackers TrackerRepository,
	executor PostingExecutor,
	txManager TransactionManager,
	outbox OutboxRepository,
	audit AuditRepository,
	idGen IDGenerator,
	clock Clock,
	metrics MetricsRecorder,
	logger zerolog.Logger,
	cfg TrackerConfig,
) *TrackerUseCase {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultTrackerMaxRetries
	}
	return &TrackerUseCase{
		trackers:  trackers,
		executor:  executor,
		txManager: txManager,
		outbox:    outbox,
		audit:     audit,
		idGen:     idGen,
		clock:     clock,
		metrics:   metrics,
		logger:    logger.With().Str("component", "tracker").Logger(),
		cfg:       cfg,
	}
}

// Submit records cmd under its reference and executes it, retrying
// transient failures up to the retry budget. Submitting a reference that
// already posted replays the stored result.
func (uc *TrackerUseCase) Submit(ctx context.Context, cmd domain.PostingCommand) (*PostingResult, *domain.TransactionTracker, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}
	if cmd.PostedBy == "" {
		cmd.PostedBy = domain.ActorFromContext(ctx)
	}
	payload, err := cmd.Marshal()
	if err != nil {
		return nil, nil, err
	}

	tracker := domain.NewTransactionTracker(cmd.Reference, payload, uc.clock.Now())
	err = uc.trackers.Create(ctx, tracker)
	if errors.Is(err, domain.ErrTrackerExists) {
		tracker, err = uc.trackers.Get(ctx, cmd.Reference)
	} else if err == nil {
		uc.metrics.TrackerTransition(domain.TrackerPending)
	}
	if err != nil {
		return nil, nil, err
	}

	return uc.drive(ctx, tracker)
}

// Resume continues a tracker that has not reached a final state.
func (uc *TrackerUseCase) Resume(ctx context.Context, reference string) (*PostingResult, *domain.TransactionTracker, error) {
	tracker, err := uc.trackers.Get(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	return uc.drive(ctx, tracker)
}

// RetryFailed requeues a failed tracker with a fresh retry budget and runs it.
func (uc *TrackerUseCase) RetryFailed(ctx context.Context, reference string) (*PostingResult, *domain.TransactionTracker, error) {
	tracker, err := uc.trackers.Get(ctx, reference)
	if err != nil {
		return nil, nil, err
	}
	before := trackerState(tracker)
	if err := tracker.RequeueManually(uc.clock.Now()); err != nil {
		return nil, tracker, err
	}
	if err := uc.trackers.Update(ctx, tracker); err != nil {
		return nil, tracker, err
	}
	uc.metrics.TrackerTransition(tracker.Status)
	uc.logger.Info().Str("reference", reference).Msg("failed tracker requeued")

	result, tracker, runErr := uc.run(ctx, tracker)
	if uc.audit != nil {
		auditLog := domain.NewAuditLog(ctx, uc.idGen.Generate(), domain.AuditActionTrackerRetry,
			domain.AuditResourceTracker, reference, uc.clock.Now())
		auditLog.BeforeState = before
		auditLog.AfterState = trackerState(tracker)
		if runErr != nil {
			auditLog.Fail(runErr)
		}
		if err := uc.audit.Create(context.WithoutCancel(ctx), auditLog); err != nil {
			uc.logger.Warn().Err(err).Str("reference", reference).Msg("failed to audit tracker retry")
		}
	}
	return result, tracker, runErr
}

func trackerState(t *domain.TransactionTracker) domain.JSON {
	if t == nil {
		return nil
	}
	return domain.JSON{
		"status":          string(t.Status),
		"number_of_retry": t.NumberOfRetry,
		"last_error":      t.LastError,
	}
}

// MarkReversed records that the tracked posting was reversed.
func (uc *TrackerUseCase) MarkReversed(ctx context.Context, reference string) error {
	tracker, err := uc.trackers.Get(ctx, reference)
	if err != nil {
		return err
	}
	if tracker.Status == domain.TrackerReversed {
		return nil
	}
	if err := tracker.MarkReversed(uc.clock.Now()); err != nil {
		return err
	}
	if err := uc.trackers.Update(ctx, tracker); err != nil {
		return err
	}
	uc.metrics.TrackerTransition(tracker.Status)
	return nil
}

// Get returns the tracker of a reference.
func (uc *TrackerUseCase) Get(ctx context.Context, reference string) (*domain.TransactionTracker, error) {
	return uc.trackers.Get(ctx, reference)
}

// List returns trackers in a status.
func (uc *TrackerUseCase) List(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return uc.trackers.ListByStatus(ctx, status, limit, offset)
}

// ResumeDue resumes retrying trackers whose next attempt is due and
// returns how many were picked up.
func (uc *TrackerUseCase) ResumeDue(ctx context.Context, limit int) (int, error) {
	due, err := uc.trackers.ListDue(ctx, uc.clock.Now(), limit)
	if err != nil {
		return 0, err
	}
	for _, tracker := range due {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		if _, _, err := uc.drive(ctx, tracker); err != nil {
			uc.logger.Warn().Err(err).Str("reference", tracker.Reference).Msg("resumed tracker did not post")
		}
	}
	return len(due), nil
}

func (uc *TrackerUseCase) drive(ctx context.Context, tracker *domain.TransactionTracker) (*PostingResult, *domain.TransactionTracker, error) {
	switch tracker.Status {
	case domain.TrackerPosted, domain.TrackerReversed:
		cmd, err := domain.UnmarshalPostingCommand(tracker.Payload)
		if err != nil {
			return nil, tracker, err
		}
		result, err := uc.executor.Execute(ctx, *cmd)
		return result, tracker, err
	case domain.TrackerFailed:
		return nil, tracker, domain.ErrTrackerFailed
	}
	return uc.run(ctx, tracker)
}

func (uc *TrackerUseCase) run(ctx context.Context, tracker *domain.TransactionTracker) (*PostingResult, *domain.TransactionTracker, error) {
	cmd, err := domain.UnmarshalPostingCommand(tracker.Payload)
	if err != nil {
		return nil, tracker, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = uc.cfg.InitialInterval
	b.MaxInterval = uc.cfg.MaxInterval
	b.MaxElapsedTime = 0
	b.Reset()

	for {
		result, execErr := uc.executor.Execute(ctx, *cmd)
		now := uc.clock.Now()

		if execErr == nil {
			if err := tracker.MarkPosted(now); err != nil {
				return result, tracker, err
			}
			if err := uc.save(ctx, tracker); err != nil {
				return result, tracker, err
			}
			return result, tracker, nil
		}

		if domain.IsPermanent(execErr) {
			if err := tracker.MarkFailed(execErr, now); err != nil {
				return nil, tracker, err
			}
			if err := uc.save(ctx, tracker); err != nil {
				return nil, tracker, err
			}
			uc.publishFailure(ctx, tracker)
			return nil, tracker, execErr
		}

		wait := b.NextBackOff()
		if err := tracker.RecordTransientFailure(execErr, now, now.Add(wait), uc.cfg.MaxRetries); err != nil {
			return nil, tracker, err
		}
		if err := uc.save(ctx, tracker); err != nil {
			return nil, tracker, err
		}
		if tracker.Status == domain.TrackerFailed {
			uc.publishFailure(ctx, tracker)
			return nil, tracker, execErr
		}

		uc.logger.Warn().Err(execErr).
			Str("reference", tracker.Reference).
			Int("attempt", tracker.NumberOfRetry).
			Dur("next_in", wait).
			Msg("posting attempt failed, retrying")

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, tracker, execErr
		case <-timer.C:
		}
	}
}

// save persists the tracker even if the caller's context is gone, so the
// recorded attempt is never lost. A concurrent writer that already posted
// the same reference wins.
func (uc *TrackerUseCase) save(ctx context.Context, tracker *domain.TransactionTracker) error {
	err := uc.trackers.Update(context.WithoutCancel(ctx), tracker)
	if errors.Is(err, domain.ErrTrackerConflict) {
		stored, gerr := uc.trackers.Get(context.WithoutCancel(ctx), tracker.Reference)
		if gerr != nil {
			return gerr
		}
		if tracker.Status == domain.TrackerPosted && stored.Status == domain.TrackerPosted {
			*tracker = *stored
			return nil
		}
		return err
	}
	if err != nil {
		return err
	}
	uc.metrics.TrackerTransition(tracker.Status)
	return nil
}

func (uc *TrackerUseCase) publishFailure(ctx context.Context, tracker *domain.TransactionTracker) {
	uc.logger.Error().
		Str("reference", tracker.Reference).
		Int("retries", tracker.NumberOfRetry).
		Str("last_error", tracker.LastError).
		Msg("tracker failed")

	ctx = context.WithoutCancel(ctx)
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to open transaction for tracker event")
		return
	}
	defer tx.Rollback(ctx)

	event := newOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeTracker, tracker.Reference,
		domain.EventTypeTrackerFailed, domain.TrackerFailedEvent{
			Reference:     tracker.Reference,
			NumberOfRetry: tracker.NumberOfRetry,
			LastError:     tracker.LastError,
		}, uc.clock.Now())
	if err := uc.outbox.Create(ctx, tx, event); err != nil {
		uc.logger.Error().Err(err).Msg("failed to write tracker event")
		return
	}
	if err := tx.Commit(ctx); err != nil {
		uc.logger.Error().Err(err).Msg("failed to commit tracker event")
	}
}
