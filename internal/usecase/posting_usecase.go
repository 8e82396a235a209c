package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

// PostingResult is the outcome of posting or replaying an entry set.
type PostingResult struct {
	Reference       string
	ReversalOf      string
	Entries         []*domain.PostedEntry
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Balanced        bool
	Replayed        bool
	SnapshotVersion int64
}

// PostingUseCase resolves operations into entry sets and posts them.
type PostingUseCase struct {
	txManager     TransactionManager
	postingRepo   PostingRepository
	branchDayRepo BranchDayRepository
	outboxRepo    OutboxRepository
	auditRepo     AuditRepository
	snapshots     SnapshotProvider
	retrier       Retrier
	idGen         IDGenerator
	clock         Clock
	metrics       MetricsRecorder
	logger        zerolog.Logger
}

// NewPostingUseCase creates a new PostingUseCase.
func NewPostingUseCase(
	txManager TransactionManager,
	postingRepo PostingRepository,
	branchDayRepo BranchDayRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	snapshots SnapshotProvider,
	retrier Retrier,
	idGen IDGenerator,
	clock Clock,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *PostingUseCase {
	return &PostingUseCase{
		txManager:     txManager,
		postingRepo:   postingRepo,
		branchDayRepo: branchDayRepo,
		outboxRepo:    outboxRepo,
		auditRepo:     auditRepo,
		snapshots:     snapshots,
		retrier:       retrier,
		idGen:         idGen,
		clock:         clock,
		metrics:       metrics,
		logger:        logger.With().Str("component", "posting").Logger(),
	}
}

// Preview resolves cmd into ledger lines without posting them.
func (uc *PostingUseCase) Preview(ctx context.Context, cmd domain.PostingCommand) ([]domain.AccountingEntry, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	if err := cmd.ValidateScale(snap.Policy().MinorUnits); err != nil {
		return nil, err
	}
	lines, err := BuildEntries(snap, &cmd)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateEntrySet(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Execute resolves cmd against the active snapshot and posts the result.
// A reference that is already posted is replayed without re-resolving.
func (uc *PostingUseCase) Execute(ctx context.Context, cmd domain.PostingCommand) (*PostingResult, error) {
	if err := cmd.Validate(); err != nil {
		uc.metrics.PostingRejected(rejectReason(err))
		return nil, err
	}

	existing, err := uc.lookup(ctx, cmd.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.metrics.PostingReplayed()
		return existing, nil
	}

	snap, err := uc.snapshots.Current()
	if err != nil {
		return nil, err
	}
	if err := cmd.ValidateScale(snap.Policy().MinorUnits); err != nil {
		uc.metrics.PostingRejected(rejectReason(err))
		return nil, err
	}

	lines, err := BuildEntries(snap, &cmd)
	if err != nil {
		uc.metrics.PostingRejected(rejectReason(err))
		return nil, err
	}

	postedBy := cmd.PostedBy
	if postedBy == "" {
		postedBy = domain.ActorFromContext(ctx)
	}

	return uc.Post(ctx, lines, domain.PostingMeta{
		EventCode:       cmd.EventCode,
		AttributeCode:   cmd.AttributeCode,
		SnapshotVersion: snap.Version(),
		PostedBy:        postedBy,
	})
}

// Post atomically records a balanced entry set. All lines must share one
// transaction reference; posting the same reference twice returns the
// first result.
func (uc *PostingUseCase) Post(ctx context.Context, lines []domain.AccountingEntry, meta domain.PostingMeta) (*PostingResult, error) {
	start := uc.clock.Now()

	if err := domain.ValidateEntrySet(lines); err != nil {
		uc.metrics.PostingRejected(rejectReason(err))
		return nil, err
	}
	// Amounts are held to the currency precision of the active snapshot.
	if snap, err := uc.snapshots.Current(); err == nil {
		if err := domain.ValidateEntryScale(lines, snap.Policy().MinorUnits); err != nil {
			uc.metrics.PostingRejected(rejectReason(err))
			return nil, err
		}
	}
	ref := lines[0].TransactionReference
	for i := range lines {
		if lines[i].TransactionReference != ref {
			err := fmt.Errorf("%w: entry set mixes references %s and %s", domain.ErrInvalidEntry, ref, lines[i].TransactionReference)
			uc.metrics.PostingRejected(rejectReason(err))
			return nil, err
		}
	}
	if meta.PostedBy == "" {
		meta.PostedBy = domain.ActorFromContext(ctx)
	}

	var result *PostingResult
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		result, err = uc.post(ctx, ref, lines, meta)
		return err
	})
	if err != nil {
		uc.metrics.PostingRejected(rejectReason(err))
		return nil, err
	}

	if result.Replayed {
		uc.metrics.PostingReplayed()
	} else {
		uc.metrics.PostingCommitted(meta.EventCode, len(result.Entries), uc.clock.Now().Sub(start))
		uc.logger.Info().
			Str("reference", ref).
			Str("event_code", meta.EventCode).
			Int("lines", len(result.Entries)).
			Str("total", result.TotalDebit.String()).
			Msg("entry set posted")
	}

	return result, nil
}

func (uc *PostingUseCase) post(ctx context.Context, ref string, lines []domain.AccountingEntry, meta domain.PostingMeta) (*PostingResult, error) {
	existing, err := uc.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Branch-day admission first, then account-day locks, both sorted, so
	// concurrent postings and day closes always acquire in the same order.
	for _, bd := range branchDays(lines) {
		if err := uc.branchDayRepo.Admit(ctx, tx, bd.BranchID, bd.Date); err != nil {
			return nil, err
		}
	}
	if err := uc.postingRepo.LockAccountDays(ctx, tx, accountDays(lines)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	header := &domain.PostingHeader{
		Reference:       ref,
		EventCode:       meta.EventCode,
		AttributeCode:   meta.AttributeCode,
		ReversalOf:      meta.ReversalOf,
		SnapshotVersion: meta.SnapshotVersion,
		LineCount:       len(lines),
		PostedBy:        meta.PostedBy,
		PostedAt:        now,
	}
	if err := uc.postingRepo.CreateHeader(ctx, tx, header); err != nil {
		if !errors.Is(err, domain.ErrDuplicatePosting) {
			return nil, err
		}
		_ = tx.Rollback(ctx)

		existing, lerr := uc.lookup(ctx, ref)
		if lerr != nil {
			return nil, lerr
		}
		if existing == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrConcurrentPosting, ref)
		}
		return existing, nil
	}

	posted := make([]*domain.PostedEntry, 0, len(lines))
	for i, l := range lines {
		posted = append(posted, &domain.PostedEntry{
			ID:                   uc.idGen.Generate(),
			TransactionReference: ref,
			LineNo:               i + 1,
			AccountID:            l.AccountID,
			AccountNumber:        l.AccountNumber,
			BranchID:             l.BranchID,
			Debit:                l.Debit,
			Credit:               l.Credit,
			ValueDate:            domain.BusinessDate(l.ValueDate),
			Description:          l.Description,
			EventCode:            meta.EventCode,
			AttributeCode:        meta.AttributeCode,
			ReversalOf:           meta.ReversalOf,
			PostedBy:             meta.PostedBy,
			PostedAt:             now,
		})
	}
	if err := uc.postingRepo.CreateEntries(ctx, tx, posted); err != nil {
		return nil, err
	}

	result := newPostingResult(header, posted, false)
	if err := uc.outboxRepo.Create(ctx, tx, uc.postingEvent(result, header, now)); err != nil {
		return nil, err
	}

	if header.ReversalOf != "" && uc.auditRepo != nil {
		auditLog := domain.NewAuditLog(ctx, uc.idGen.Generate(), domain.AuditActionPostingReverse,
			domain.AuditResourcePosting, header.ReversalOf, now)
		auditLog.AfterState = domain.JSON{
			"reversal_reference": ref,
			"line_count":         len(posted),
			"total_debit":        result.TotalDebit.String(),
		}
		if err := uc.auditRepo.CreateTx(ctx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *PostingUseCase) postingEvent(result *PostingResult, header *domain.PostingHeader, now time.Time) *domain.OutboxEvent {
	if header.ReversalOf != "" {
		return newOutboxEvent(uc.idGen.Generate(), domain.AggregateTypePosting, header.Reference,
			domain.EventTypePostingReversed, domain.PostingReversedEvent{
				Reference:         header.Reference,
				OriginalReference: header.ReversalOf,
				TotalDebit:        result.TotalDebit.String(),
			}, now)
	}
	return newOutboxEvent(uc.idGen.Generate(), domain.AggregateTypePosting, header.Reference,
		domain.EventTypePostingCreated, domain.PostingCreatedEvent{
			Reference:     header.Reference,
			EventCode:     header.EventCode,
			AttributeCode: header.AttributeCode,
			TotalDebit:    result.TotalDebit.String(),
			LineCount:     header.LineCount,
			PostedBy:      header.PostedBy,
		}, now)
}

// Reverse posts the mirror image of a posted entry set under
// reference + ":reversal", valued at the current business date.
func (uc *PostingUseCase) Reverse(ctx context.Context, reference string) (*PostingResult, error) {
	if strings.HasSuffix(reference, domain.ReversalSuffix) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCannotReverseReversal, reference)
	}

	original, err := uc.postingRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if len(original) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPostingNotFound, reference)
	}
	if original[0].ReversalOf != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrCannotReverseReversal, reference)
	}

	reversalRef := reference + domain.ReversalSuffix
	valueDate := domain.BusinessDate(uc.clock.Now())

	lines := make([]domain.AccountingEntry, 0, len(original))
	for _, e := range original {
		lines = append(lines, domain.AccountingEntry{
			AccountID:            e.AccountID,
			AccountNumber:        e.AccountNumber,
			BranchID:             e.BranchID,
			Debit:                e.Credit,
			Credit:               e.Debit,
			TransactionReference: reversalRef,
			ValueDate:            valueDate,
			Description:          e.Description,
		})
	}

	result, err := uc.Post(ctx, lines, domain.PostingMeta{
		EventCode:     original[0].EventCode,
		AttributeCode: original[0].AttributeCode,
		ReversalOf:    reference,
		PostedBy:      domain.ActorFromContext(ctx),
	})
	if err != nil {
		if uc.auditRepo != nil {
			auditLog := domain.NewAuditLog(ctx, uc.idGen.Generate(), domain.AuditActionPostingReverse,
				domain.AuditResourcePosting, reference, uc.clock.Now())
			auditLog.Fail(err)
			if aerr := uc.auditRepo.Create(context.WithoutCancel(ctx), auditLog); aerr != nil {
				uc.logger.Warn().Err(aerr).Str("reference", reference).Msg("failed to audit reversal")
			}
		}
		return nil, err
	}
	if !result.Replayed {
		uc.metrics.PostingReversed()
	}
	return result, nil
}

// GetPosting returns a posted entry set.
func (uc *PostingUseCase) GetPosting(ctx context.Context, reference string) (*PostingResult, error) {
	result, err := uc.lookup(ctx, reference)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPostingNotFound, reference)
	}
	result.Replayed = false
	return result, nil
}

// lookup returns the stored result for ref marked as replayed, or nil.
func (uc *PostingUseCase) lookup(ctx context.Context, ref string) (*PostingResult, error) {
	entries, err := uc.postingRepo.GetByReference(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	header, err := uc.postingRepo.GetHeader(ctx, ref)
	if err != nil {
		return nil, err
	}
	return newPostingResult(header, entries, true), nil
}

func newPostingResult(header *domain.PostingHeader, entries []*domain.PostedEntry, replayed bool) *PostingResult {
	r := &PostingResult{
		Reference:       header.Reference,
		ReversalOf:      header.ReversalOf,
		Entries:         entries,
		Replayed:        replayed,
		SnapshotVersion: header.SnapshotVersion,
	}
	for _, e := range entries {
		r.TotalDebit = r.TotalDebit.Add(e.Debit)
		r.TotalCredit = r.TotalCredit.Add(e.Credit)
	}
	r.Balanced = r.TotalDebit.Equal(r.TotalCredit)
	return r
}

func branchDays(lines []domain.AccountingEntry) []domain.BranchDayKey {
	seen := make(map[string]domain.BranchDayKey)
	for _, l := range lines {
		k := domain.BranchDayKey{BranchID: l.BranchID, Date: domain.BusinessDate(l.ValueDate)}
		seen[k.String()] = k
	}
	return sortedKeys(seen)
}

func accountDays(lines []domain.AccountingEntry) []domain.AccountDayKey {
	seen := make(map[string]domain.AccountDayKey)
	for _, l := range lines {
		k := domain.AccountDayKey{BranchID: l.BranchID, AccountID: l.AccountID, Date: domain.BusinessDate(l.ValueDate)}
		seen[k.String()] = k
	}
	return sortedKeys(seen)
}

func sortedKeys[K any](m map[string]K) []K {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]K, 0, len(names))
	for _, n := range names {
		out = append(out, m[n])
	}
	return out
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnbalancedEntry):
		return "unbalanced"
	case errors.Is(err, domain.ErrBranchDayClosed):
		return "day_closed"
	case errors.Is(err, domain.ErrConcurrentPosting):
		return "concurrent"
	case errors.Is(err, domain.ErrRuleNotFound), errors.Is(err, domain.ErrMappingNotFound),
		errors.Is(err, domain.ErrUnknownEvent), errors.Is(err, domain.ErrUnknownAttribute):
		return "unresolved"
	case errors.Is(err, domain.ErrCannotReverseReversal), errors.Is(err, domain.ErrPostingNotFound):
		return "reversal"
	case domain.IsPermanent(err):
		return "invalid"
	default:
		return "error"
	}
}
