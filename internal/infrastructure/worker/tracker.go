package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DueResumer resumes trackers whose next attempt is due.
type DueResumer interface {
	ResumeDue(ctx context.Context, limit int) (int, error)
}

// TrackerWorker periodically resumes retrying and abandoned trackers.
type TrackerWorker struct {
	trackers  DueResumer
	logger    zerolog.Logger
	batchSize int
	interval  time.Duration
}

// NewTrackerWorker creates a worker polling every interval.
func NewTrackerWorker(trackers DueResumer, interval time.Duration, batchSize int, logger zerolog.Logger) *TrackerWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &TrackerWorker{
		trackers:  trackers,
		logger:    logger.With().Str("component", "tracker_worker").Logger(),
		batchSize: batchSize,
		interval:  interval,
	}
}

// Start runs until ctx is cancelled.
func (w *TrackerWorker) Start(ctx context.Context) error {
	w.logger.Info().Dur("interval", w.interval).Int("batch_size", w.batchSize).Msg("tracker worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("tracker worker shutting down")
			return ctx.Err()
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

// drain keeps resuming while full batches come back.
func (w *TrackerWorker) drain(ctx context.Context) {
	for ctx.Err() == nil {
		n, err := w.trackers.ResumeDue(ctx, w.batchSize)
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Error().Err(err).Msg("resume due trackers")
			}
			return
		}
		if n > 0 {
			w.logger.Debug().Int("count", n).Msg("resumed trackers")
		}
		if n < w.batchSize {
			return
		}
	}
}
