package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/domain"
)

// cacheInvalidator is implemented by config sources that keep a shared copy.
type cacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// ConfigUseCase administers the accounting configuration.
type ConfigUseCase struct {
	holder   *SnapshotHolder
	source   ConfigSource
	notifier ConfigNotifier
	audit    AuditRepository
	clock    Clock
	logger   zerolog.Logger
}

// NewConfigUseCase creates a new ConfigUseCase. notifier and audit may be nil.
func NewConfigUseCase(holder *SnapshotHolder, source ConfigSource, notifier ConfigNotifier, audit AuditRepository, clock Clock, logger zerolog.Logger) *ConfigUseCase {
	return &ConfigUseCase{holder: holder, source: source, notifier: notifier, audit: audit, clock: clock, logger: logger}
}

// Refresh drops any shared cached copy, reloads the snapshot and tells the
// other instances to do the same.
func (uc *ConfigUseCase) Refresh(ctx context.Context) (SnapshotStats, error) {
	if inv, ok := uc.source.(cacheInvalidator); ok {
		if err := inv.Invalidate(ctx); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to invalidate configuration cache")
		}
	}

	before, _ := uc.Current()
	snap, err := uc.holder.Refresh(ctx)
	if err != nil {
		uc.record(ctx, before, SnapshotStats{}, err)
		return SnapshotStats{}, err
	}
	uc.record(ctx, before, snap.Stats(), nil)

	if uc.notifier != nil {
		if err := uc.notifier.Publish(ctx, snap.Version()); err != nil {
			uc.logger.Warn().Err(err).Msg("failed to broadcast configuration change")
		}
	}
	return snap.Stats(), nil
}

// Current returns the stats of the active snapshot.
func (uc *ConfigUseCase) Current() (SnapshotStats, error) {
	snap, err := uc.holder.Current()
	if err != nil {
		return SnapshotStats{}, err
	}
	return snap.Stats(), nil
}

// record audits a refresh. The audit store assigns the id.
func (uc *ConfigUseCase) record(ctx context.Context, before, after SnapshotStats, refreshErr error) {
	if uc.audit == nil {
		return
	}
	auditLog := domain.NewAuditLog(ctx, "", domain.AuditActionConfigRefresh, domain.AuditResourceConfig, "snapshot", uc.clock.Now())
	if before.Version > 0 {
		auditLog.BeforeState = domain.MarshalState(before)
	}
	if refreshErr != nil {
		auditLog.Fail(refreshErr)
	} else {
		auditLog.AfterState = domain.MarshalState(after)
	}
	if err := uc.audit.Create(context.WithoutCancel(ctx), auditLog); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to audit configuration refresh")
	}
}
