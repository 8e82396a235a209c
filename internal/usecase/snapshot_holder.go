package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/corebank/ledgerengine/internal/domain"
)

// ErrNoSnapshot is returned before the first configuration load succeeded.
var ErrNoSnapshot = errors.New("no configuration snapshot loaded")

// SnapshotHolder publishes the current configuration snapshot. Readers take
// the pointer once per operation and keep using it even if a refresh swaps
// in a newer one.
type SnapshotHolder struct {
	source  ConfigSource
	policy  domain.Policy
	clock   Clock
	metrics MetricsRecorder
	logger  zerolog.Logger

	current atomic.Pointer[Snapshot]
	version atomic.Int64
	group   singleflight.Group
}

// NewSnapshotHolder creates a holder. Call Refresh before serving traffic.
func NewSnapshotHolder(source ConfigSource, policy domain.Policy, clock Clock, metrics MetricsRecorder, logger zerolog.Logger) *SnapshotHolder {
	return &SnapshotHolder{
		source:  source,
		policy:  policy,
		clock:   clock,
		metrics: metrics,
		logger:  logger.With().Str("component", "snapshot").Logger(),
	}
}

// Current returns the active snapshot.
func (h *SnapshotHolder) Current() (*Snapshot, error) {
	s := h.current.Load()
	if s == nil {
		return nil, ErrNoSnapshot
	}
	return s, nil
}

// Refresh loads and validates a new snapshot and swaps it in. Concurrent
// callers share one load. A rejected configuration leaves the active
// snapshot untouched.
func (h *SnapshotHolder) Refresh(ctx context.Context) (*Snapshot, error) {
	v, err, _ := h.group.Do("refresh", func() (any, error) {
		set, err := h.source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}

		snap, err := NewSnapshot(set, h.policy, h.version.Load()+1, h.clock.Now())
		if err != nil {
			h.metrics.SnapshotRejected()
			h.logger.Error().Err(err).Msg("configuration rejected, keeping active snapshot")
			return nil, err
		}

		h.version.Store(snap.Version())
		h.current.Store(snap)
		h.metrics.SnapshotLoaded(snap.Version())

		stats := snap.Stats()
		h.logger.Info().
			Int64("version", stats.Version).
			Int("accounts", stats.Accounts).
			Int("rules", stats.Rules).
			Int("mappings", stats.Mappings).
			Msg("configuration snapshot loaded")

		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Watch refreshes the snapshot on every change notification until ctx is done.
func (h *SnapshotHolder) Watch(ctx context.Context, notifier ConfigNotifier) error {
	return notifier.Subscribe(ctx, func(ctx context.Context) {
		if _, err := h.Refresh(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("refresh after change notification failed")
		}
	})
}
