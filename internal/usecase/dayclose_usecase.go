package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/corebank/ledgerengine/internal/domain"
)

// DayCloseUseCase closes branch business days and derives trial balances.
type DayCloseUseCase struct {
	txManager     TransactionManager
	branchDayRepo BranchDayRepository
	closeRepo     DayCloseRepository
	postingRepo   PostingRepository
	trialRepo     TrialBalanceRepository
	outboxRepo    OutboxRepository
	auditRepo     AuditRepository
	snapshots     SnapshotProvider
	idGen         IDGenerator
	clock         Clock
	metrics       MetricsRecorder
	logger        zerolog.Logger
	drainTimeout  time.Duration
}

// NewDayCloseUseCase creates a new DayCloseUseCase.
func NewDayCloseUseCase(
	txManager TransactionManager,
	branchDayRepo BranchDayRepository,
	closeRepo DayCloseRepository,
	postingRepo PostingRepository,
	trialRepo TrialBalanceRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	snapshots SnapshotProvider,
	idGen IDGenerator,
	clock Clock,
	metrics MetricsRecorder,
	logger zerolog.Logger,
	drainTimeout time.Duration,
) *DayCloseUseCase {
	if drainTimeout <= 0 {
		drainTimeout = DefaultDrainTimeout
	}
	return &DayCloseUseCase{
		txManager:     txManager,
		branchDayRepo: branchDayRepo,
		closeRepo:     closeRepo,
		postingRepo:   postingRepo,
		trialRepo:     trialRepo,
		outboxRepo:    outboxRepo,
		auditRepo:     auditRepo,
		snapshots:     snapshots,
		idGen:         idGen,
		clock:         clock,
		metrics:       metrics,
		logger:        logger.With().Str("component", "dayclose").Logger(),
		drainTimeout:  drainTimeout,
	}
}

// CloseDay aggregates the branch day and closes it for posting. Closing an
// already closed day returns the stored snapshot. When the close itself
// fails, a failed snapshot is returned alongside the error.
func (uc *DayCloseUseCase) CloseDay(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	start := uc.clock.Now()
	date = domain.BusinessDate(date)

	existing, err := uc.closeRepo.Get(ctx, branchID, date)
	if err == nil {
		uc.metrics.DayClosed(OutcomeAlreadyClosed, uc.clock.Now().Sub(start))
		return existing, nil
	}
	if !errors.Is(err, domain.ErrDayNotClosed) {
		return nil, err
	}

	open, err := uc.branchDayRepo.ListOpenBefore(ctx, branchID, date)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, fmt.Errorf("%w: branch %s day %s", domain.ErrPreviousDayNotClosed,
			branchID, open[0].BusinessDate.Format(domain.DateLayout))
	}

	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}

	result, already, err := uc.close(ctx, snap, branchID, date)
	if err != nil {
		now := uc.clock.Now()
		outcome := OutcomeFailed
		if errors.Is(err, domain.ErrDayCloseNotQuiescent) {
			outcome = OutcomeNotQuiescent
		}
		if rerr := uc.branchDayRepo.RecordFailure(context.WithoutCancel(ctx), branchID, date, err.Error(), now); rerr != nil {
			uc.logger.Error().Err(rerr).Msg("failed to record day close failure")
		}
		if uc.auditRepo != nil {
			auditLog := domain.NewAuditLog(ctx, uc.idGen.Generate(), domain.AuditActionDayClose,
				domain.AuditResourceBranchDay, domain.BranchDayKey{BranchID: branchID, Date: date}.String(), now)
			auditLog.Fail(err)
			if aerr := uc.auditRepo.Create(context.WithoutCancel(ctx), auditLog); aerr != nil {
				uc.logger.Warn().Err(aerr).Msg("failed to audit day close failure")
			}
		}
		uc.metrics.DayClosed(outcome, now.Sub(start))
		uc.logger.Error().Err(err).
			Str("branch_id", branchID).
			Str("business_date", date.Format(domain.DateLayout)).
			Msg("day close failed")
		return domain.FailedClose(branchID, date, err, now), err
	}

	if already {
		uc.metrics.DayClosed(OutcomeAlreadyClosed, uc.clock.Now().Sub(start))
		return result, nil
	}

	uc.metrics.DayClosed(OutcomeClosed, uc.clock.Now().Sub(start))
	uc.logger.Info().
		Str("branch_id", branchID).
		Str("business_date", date.Format(domain.DateLayout)).
		Int("accounts", len(result.Accounts)).
		Int("references", len(result.EntryReferences)).
		Str("total_debit", result.TotalDebit.String()).
		Msg("branch day closed")

	return result, nil
}

func (uc *DayCloseUseCase) close(ctx context.Context, snap *Snapshot, branchID string, date time.Time) (*domain.CloseOfDayData, bool, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	day, err := uc.branchDayRepo.BeginClose(ctx, tx, branchID, date, uc.drainTimeout)
	if err != nil {
		return nil, false, err
	}
	if day.Status == domain.BranchDayClosed {
		_ = tx.Rollback(ctx)
		stored, err := uc.closeRepo.Get(ctx, branchID, date)
		return stored, true, err
	}

	beginning, err := uc.beginningBalances(ctx, snap, branchID, date)
	if err != nil {
		return nil, false, err
	}
	movements, err := uc.postingRepo.SumByBranchDay(ctx, branchID, date)
	if err != nil {
		return nil, false, err
	}
	refs, err := uc.postingRepo.ListReferencesByBranchDay(ctx, branchID, date)
	if err != nil {
		return nil, false, err
	}

	now := uc.clock.Now()
	data, err := domain.BuildDayClose(branchID, date, beginning, movements, sideLookup(snap), refs, now)
	if err != nil {
		return nil, false, err
	}

	if err := uc.closeRepo.Save(ctx, tx, data); err != nil {
		return nil, false, err
	}
	if err := uc.branchDayRepo.MarkClosed(ctx, tx, branchID, date, now); err != nil {
		return nil, false, err
	}

	event := newOutboxEvent(uc.idGen.Generate(), domain.AggregateTypeBranchDay,
		domain.BranchDayKey{BranchID: branchID, Date: date}.String(),
		domain.EventTypeDayCloseCompleted, domain.DayCloseCompletedEvent{
			BranchID:     branchID,
			BusinessDate: date.Format(domain.DateLayout),
			TotalDebit:   data.TotalDebit.String(),
			TotalCredit:  data.TotalCredit.String(),
			AccountCount: len(data.Accounts),
		}, now)
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, false, err
	}

	if uc.auditRepo != nil {
		auditLog := domain.NewAuditLog(ctx, uc.idGen.Generate(), domain.AuditActionDayClose,
			domain.AuditResourceBranchDay, event.AggregateID, now)
		auditLog.BeforeState = domain.JSON{"status": string(day.Status)}
		auditLog.AfterState = domain.JSON{
			"status":       string(domain.BranchDayClosed),
			"total_debit":  data.TotalDebit.String(),
			"total_credit": data.TotalCredit.String(),
			"accounts":     len(data.Accounts),
		}
		if err := uc.auditRepo.CreateTx(ctx, tx, auditLog); err != nil {
			return nil, false, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

func (uc *DayCloseUseCase) beginningBalances(ctx context.Context, snap *Snapshot, branchID string, date time.Time) ([]domain.AccountBalance, error) {
	prev, err := uc.closeRepo.GetLatestBefore(ctx, branchID, date)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		return prev.EndingBalances(), nil
	}
	return snap.OpeningBalances(branchID), nil
}

// GetDayClose returns the stored close of a branch day.
func (uc *DayCloseUseCase) GetDayClose(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	return uc.closeRepo.Get(ctx, branchID, domain.BusinessDate(date))
}

// GetBranchDay returns the posting barrier state of a branch day.
func (uc *DayCloseUseCase) GetBranchDay(ctx context.Context, branchID string, date time.Time) (*domain.BranchDay, error) {
	return uc.branchDayRepo.Get(ctx, branchID, domain.BusinessDate(date))
}

// GetTrialBalance derives per-account balances of a branch as of a date
// from the latest close on or before it plus later movements.
func (uc *DayCloseUseCase) GetTrialBalance(ctx context.Context, branchID string, asOf time.Time) (*domain.TrialBalanceFile, error) {
	asOf = domain.BusinessDate(asOf)

	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}

	base, err := uc.closeRepo.GetLatestOnOrBefore(ctx, branchID, asOf)
	if err != nil {
		return nil, err
	}

	ref := domain.TrialBalanceReference{
		ID:          uc.idGen.Generate(),
		BranchID:    branchID,
		AsOf:        asOf,
		GeneratedAt: uc.clock.Now(),
	}

	var start []domain.AccountBalance
	var after time.Time
	if base != nil {
		start = base.EndingBalances()
		after = base.BusinessDate
		ref.BaseClose = &after
	} else {
		start = snap.OpeningBalances(branchID)
	}

	balances := make(map[string]*domain.AccountBalance, len(start))
	order := make([]string, 0, len(start))
	for i := range start {
		balances[start[i].AccountID] = &start[i]
		order = append(order, start[i].AccountID)
	}

	if base == nil || base.BusinessDate.Before(asOf) {
		movements, err := uc.postingRepo.SumByBranchRange(ctx, branchID, after, asOf)
		if err != nil {
			return nil, err
		}
		sideOf := sideLookup(snap)
		for _, m := range movements {
			b, ok := balances[m.AccountID]
			if !ok {
				side, err := sideOf(m.AccountID)
				if err != nil {
					return nil, err
				}
				b = &domain.AccountBalance{AccountID: m.AccountID, AccountNumber: m.AccountNumber, NormalSide: side}
				balances[m.AccountID] = b
				order = append(order, m.AccountID)
			}
			b.Balance = domain.ApplyMovement(b.NormalSide, b.Balance, m.Debit, m.Credit)
		}
	}

	list := make([]domain.AccountBalance, 0, len(order))
	for _, id := range order {
		list = append(list, *balances[id])
	}

	file, err := domain.BuildTrialBalance(ref, list)
	if err != nil {
		return nil, err
	}
	if err := uc.trialRepo.Save(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

func sideLookup(snap *Snapshot) func(string) (domain.Side, error) {
	return func(id string) (domain.Side, error) {
		acc, ok := snap.Account(id)
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
		return acc.NormalSide, nil
	}
}
