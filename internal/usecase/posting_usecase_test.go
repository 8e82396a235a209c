package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
	"github.com/corebank/ledgerengine/internal/usecase/mocks"
)

type postingMocks struct {
	tx        *mocks.MockTransaction
	txMgr     *mocks.MockTransactionManager
	postings  *mocks.MockPostingRepository
	days      *mocks.MockBranchDayRepository
	outbox    *mocks.MockOutboxRepository
	audit     *mocks.MockAuditRepository
	snapshots *mocks.MockSnapshotProvider
	metrics   *mocks.MockMetricsRecorder
}

func newPostingUseCase(t *testing.T, snap *usecase.Snapshot) (*usecase.PostingUseCase, *postingMocks) {
	ctrl := gomock.NewController(t)
	m := &postingMocks{
		tx:        mocks.NewMockTransaction(ctrl),
		txMgr:     mocks.NewMockTransactionManager(ctrl),
		postings:  mocks.NewMockPostingRepository(ctrl),
		days:      mocks.NewMockBranchDayRepository(ctrl),
		outbox:    mocks.NewMockOutboxRepository(ctrl),
		audit:     mocks.NewMockAuditRepository(ctrl),
		snapshots: mocks.NewMockSnapshotProvider(ctrl),
		metrics:   mocks.NewMockMetricsRecorder(ctrl),
	}
	m.snapshots.EXPECT().Current().Return(snap, nil).AnyTimes()
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	uc := usecase.NewPostingUseCase(m.txMgr, m.postings, m.days, m.outbox, m.audit, m.snapshots,
		usecase.NoRetry{}, &seqIDs{}, newFakeClock(businessDay), m.metrics, zerolog.Nop())
	return uc, m
}

func storedDeposit(ref string) ([]*domain.PostedEntry, *domain.PostingHeader) {
	entries := []*domain.PostedEntry{
		{ID: "e1", TransactionReference: ref, LineNo: 1, AccountID: "cash", AccountNumber: "1001", BranchID: "B1", Debit: amount("100"), ValueDate: businessDay, EventCode: "CASH_DEPOSIT"},
		{ID: "e2", TransactionReference: ref, LineNo: 2, AccountID: "deposits", AccountNumber: "2001", BranchID: "B1", Credit: amount("100"), ValueDate: businessDay, EventCode: "CASH_DEPOSIT"},
	}
	header := &domain.PostingHeader{Reference: ref, EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL", SnapshotVersion: 1, LineCount: 2}
	return entries, header
}

func TestPostingUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		cmd          domain.PostingCommand
		setupMocks   func(m *postingMocks)
		wantErr      error
		wantReplayed bool
	}{
		{
			name: "posts a resolved entry set",
			cmd:  depositCommand("DEP-1", "100"),
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-1").Return(nil, nil).Times(2)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(nil)
				m.postings.EXPECT().LockAccountDays(gomock.Any(), m.tx, []domain.AccountDayKey{
					{BranchID: "B1", AccountID: "cash", Date: businessDay},
					{BranchID: "B1", AccountID: "deposits", Date: businessDay},
				}).Return(nil)
				m.postings.EXPECT().CreateHeader(gomock.Any(), m.tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ usecase.Transaction, h *domain.PostingHeader) error {
						assert.Equal(t, "DEP-1", h.Reference)
						assert.Equal(t, int64(1), h.SnapshotVersion)
						assert.Equal(t, 2, h.LineCount)
						assert.Equal(t, "teller-7", h.PostedBy)
						return nil
					})
				m.postings.EXPECT().CreateEntries(gomock.Any(), m.tx, gomock.Len(2)).Return(nil)
				m.outbox.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ usecase.Transaction, e *domain.OutboxEvent) error {
						assert.Equal(t, domain.EventTypePostingCreated, e.EventType)
						assert.Equal(t, "DEP-1", e.AggregateID)
						return nil
					})
				m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
				m.metrics.EXPECT().PostingCommitted("CASH_DEPOSIT", 2, gomock.Any())
			},
		},
		{
			name: "amount finer than the currency precision",
			cmd:  depositCommand("DEP-9", "100.005"),
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-9").Return(nil, nil)
				m.metrics.EXPECT().PostingRejected("invalid")
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "replays a posted reference without resolving",
			cmd: domain.PostingCommand{
				Reference: "DEP-2", EventCode: "NO_LONGER_CONFIGURED", AttributeCode: "X",
				Amount: amount("1"), ValueDate: businessDay, Context: domain.OperationContext{BranchID: "B1"},
			},
			setupMocks: func(m *postingMocks) {
				entries, header := storedDeposit("DEP-2")
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-2").Return(entries, nil)
				m.postings.EXPECT().GetHeader(gomock.Any(), "DEP-2").Return(header, nil)
				m.metrics.EXPECT().PostingReplayed()
			},
			wantReplayed: true,
		},
		{
			name: "losing a reference race returns the winner",
			cmd:  depositCommand("DEP-3", "100"),
			setupMocks: func(m *postingMocks) {
				entries, header := storedDeposit("DEP-3")
				gomock.InOrder(
					m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-3").Return(nil, nil).Times(2),
					m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-3").Return(entries, nil),
				)
				m.postings.EXPECT().GetHeader(gomock.Any(), "DEP-3").Return(header, nil)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(nil)
				m.postings.EXPECT().LockAccountDays(gomock.Any(), m.tx, gomock.Any()).Return(nil)
				m.postings.EXPECT().CreateHeader(gomock.Any(), m.tx, gomock.Any()).Return(domain.ErrDuplicatePosting)
				m.metrics.EXPECT().PostingReplayed()
			},
			wantReplayed: true,
		},
		{
			name: "duplicate header without committed entries",
			cmd:  depositCommand("DEP-4", "100"),
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-4").Return(nil, nil).Times(3)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(nil)
				m.postings.EXPECT().LockAccountDays(gomock.Any(), m.tx, gomock.Any()).Return(nil)
				m.postings.EXPECT().CreateHeader(gomock.Any(), m.tx, gomock.Any()).Return(domain.ErrDuplicatePosting)
				m.metrics.EXPECT().PostingRejected("concurrent")
			},
			wantErr: domain.ErrConcurrentPosting,
		},
		{
			name: "closed branch day",
			cmd:  depositCommand("DEP-5", "100"),
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-5").Return(nil, nil).Times(2)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(domain.ErrBranchDayClosed)
				m.metrics.EXPECT().PostingRejected("day_closed")
			},
			wantErr: domain.ErrBranchDayClosed,
		},
		{
			name: "unknown event",
			cmd: domain.PostingCommand{
				Reference: "DEP-6", EventCode: "LOAN", AttributeCode: "PRINCIPAL",
				Amount: amount("1"), ValueDate: businessDay, Context: domain.OperationContext{BranchID: "B1"},
			},
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-6").Return(nil, nil)
				m.metrics.EXPECT().PostingRejected("unresolved")
			},
			wantErr: domain.ErrUnknownEvent,
		},
		{
			name: "invalid command",
			cmd:  domain.PostingCommand{Reference: "DEP-7", EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL", Amount: amount("-1")},
			setupMocks: func(m *postingMocks) {
				m.metrics.EXPECT().PostingRejected("invalid")
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newPostingUseCase(t, bankSnapshot(t))
			tt.setupMocks(m)

			ctx := domain.WithActor(context.Background(), "teller-7")
			result, err := uc.Execute(ctx, tt.cmd)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReplayed, result.Replayed)
			assert.True(t, result.Balanced)
			assert.True(t, result.TotalDebit.Equal(amount("100")))
		})
	}
}

func TestPostingUseCase_PostRejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		lines   []domain.AccountingEntry
		reason  string
		wantErr error
	}{
		{
			name: "unbalanced",
			lines: []domain.AccountingEntry{
				{AccountID: "cash", BranchID: "B1", Debit: amount("10"), TransactionReference: "R", ValueDate: businessDay},
				{AccountID: "deposits", BranchID: "B1", Credit: amount("9"), TransactionReference: "R", ValueDate: businessDay},
			},
			reason:  "unbalanced",
			wantErr: domain.ErrUnbalancedEntry,
		},
		{
			name: "mixed references",
			lines: []domain.AccountingEntry{
				{AccountID: "cash", BranchID: "B1", Debit: amount("10"), TransactionReference: "R1", ValueDate: businessDay},
				{AccountID: "deposits", BranchID: "B1", Credit: amount("10"), TransactionReference: "R2", ValueDate: businessDay},
			},
			reason:  "invalid",
			wantErr: domain.ErrInvalidEntry,
		},
		{
			name: "sub-unit line amounts",
			lines: []domain.AccountingEntry{
				{AccountID: "cash", BranchID: "B1", Debit: amount("10.001"), TransactionReference: "R", ValueDate: businessDay},
				{AccountID: "deposits", BranchID: "B1", Credit: amount("10.001"), TransactionReference: "R", ValueDate: businessDay},
			},
			reason:  "invalid",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "empty",
			reason:  "invalid",
			wantErr: domain.ErrInvalidEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newPostingUseCase(t, bankSnapshot(t))
			m.metrics.EXPECT().PostingRejected(tt.reason)

			_, err := uc.Post(context.Background(), tt.lines, domain.PostingMeta{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostingUseCase_Reverse(t *testing.T) {
	tests := []struct {
		name       string
		reference  string
		setupMocks func(m *postingMocks)
		wantErr    error
	}{
		{
			name:      "reversal reference",
			reference: "DEP-1" + domain.ReversalSuffix,
			wantErr:   domain.ErrCannotReverseReversal,
		},
		{
			name:      "nothing posted",
			reference: "DEP-404",
			setupMocks: func(m *postingMocks) {
				m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-404").Return(nil, nil)
			},
			wantErr: domain.ErrPostingNotFound,
		},
		{
			name:      "stored reversal",
			reference: "ADJ-1",
			setupMocks: func(m *postingMocks) {
				entries, _ := storedDeposit("ADJ-1")
				for _, e := range entries {
					e.ReversalOf = "DEP-0"
				}
				m.postings.EXPECT().GetByReference(gomock.Any(), "ADJ-1").Return(entries, nil)
			},
			wantErr: domain.ErrCannotReverseReversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newPostingUseCase(t, bankSnapshot(t))
			if tt.setupMocks != nil {
				tt.setupMocks(m)
			}

			_, err := uc.Reverse(context.Background(), tt.reference)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostingUseCase_ReverseSwapsSides(t *testing.T) {
	uc, m := newPostingUseCase(t, bankSnapshot(t))
	entries, _ := storedDeposit("DEP-9")
	reversalRef := "DEP-9" + domain.ReversalSuffix

	m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-9").Return(entries, nil)
	m.postings.EXPECT().GetByReference(gomock.Any(), reversalRef).Return(nil, nil)
	m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(nil)
	m.postings.EXPECT().LockAccountDays(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.postings.EXPECT().CreateHeader(gomock.Any(), m.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, h *domain.PostingHeader) error {
			assert.Equal(t, reversalRef, h.Reference)
			assert.Equal(t, "DEP-9", h.ReversalOf)
			return nil
		})
	m.postings.EXPECT().CreateEntries(gomock.Any(), m.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, posted []*domain.PostedEntry) error {
			require.Len(t, posted, 2)
			assert.True(t, posted[0].Credit.Equal(amount("100")))
			assert.True(t, posted[1].Debit.Equal(amount("100")))
			return nil
		})
	m.outbox.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, e *domain.OutboxEvent) error {
			assert.Equal(t, domain.EventTypePostingReversed, e.EventType)
			return nil
		})
	m.audit.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ usecase.Transaction, l *domain.AuditLog) error {
			assert.Equal(t, domain.AuditActionPostingReverse, l.Action)
			assert.Equal(t, "DEP-9", l.ResourceID)
			assert.Equal(t, "supervisor-1", l.Actor)
			assert.Equal(t, "req-42", l.RequestID)
			assert.Equal(t, domain.AuditStatusSuccess, l.Status)
			assert.Equal(t, reversalRef, l.AfterState["reversal_reference"])
			return nil
		})
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	m.metrics.EXPECT().PostingCommitted("CASH_DEPOSIT", 2, gomock.Any())
	m.metrics.EXPECT().PostingReversed()

	ctx := domain.WithActor(context.Background(), "supervisor-1")
	ctx = domain.WithRequestMeta(ctx, domain.RequestMeta{RequestID: "req-42"})
	result, err := uc.Reverse(ctx, "DEP-9")
	require.NoError(t, err)
	assert.Equal(t, "DEP-9", result.ReversalOf)
	assert.False(t, result.Replayed)
}

func TestPostingUseCase_ReverseAuditsFailure(t *testing.T) {
	uc, m := newPostingUseCase(t, bankSnapshot(t))
	entries, _ := storedDeposit("DEP-8")
	reversalRef := "DEP-8" + domain.ReversalSuffix

	m.postings.EXPECT().GetByReference(gomock.Any(), "DEP-8").Return(entries, nil)
	m.postings.EXPECT().GetByReference(gomock.Any(), reversalRef).Return(nil, nil)
	m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.days.EXPECT().Admit(gomock.Any(), m.tx, "B1", businessDay).Return(domain.ErrBranchDayClosed)
	m.metrics.EXPECT().PostingRejected("day_closed")
	m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *domain.AuditLog) error {
			assert.Equal(t, domain.AuditStatusFailure, l.Status)
			assert.Equal(t, "DEP-8", l.ResourceID)
			assert.Contains(t, l.ErrorMessage, "closed")
			return nil
		})

	_, err := uc.Reverse(context.Background(), "DEP-8")
	assert.ErrorIs(t, err, domain.ErrBranchDayClosed)
}
