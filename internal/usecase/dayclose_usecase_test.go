package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
	"github.com/corebank/ledgerengine/internal/usecase/mocks"
)

type dayCloseMocks struct {
	tx       *mocks.MockTransaction
	txMgr    *mocks.MockTransactionManager
	days     *mocks.MockBranchDayRepository
	closes   *mocks.MockDayCloseRepository
	postings *mocks.MockPostingRepository
	trials   *mocks.MockTrialBalanceRepository
	outbox   *mocks.MockOutboxRepository
	audit    *mocks.MockAuditRepository
	metrics  *mocks.MockMetricsRecorder
}

func newDayCloseUseCase(t *testing.T) (*usecase.DayCloseUseCase, *dayCloseMocks) {
	ctrl := gomock.NewController(t)
	m := &dayCloseMocks{
		tx:       mocks.NewMockTransaction(ctrl),
		txMgr:    mocks.NewMockTransactionManager(ctrl),
		days:     mocks.NewMockBranchDayRepository(ctrl),
		closes:   mocks.NewMockDayCloseRepository(ctrl),
		postings: mocks.NewMockPostingRepository(ctrl),
		trials:   mocks.NewMockTrialBalanceRepository(ctrl),
		outbox:   mocks.NewMockOutboxRepository(ctrl),
		audit:    mocks.NewMockAuditRepository(ctrl),
		metrics:  mocks.NewMockMetricsRecorder(ctrl),
	}
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()

	snapshots := mocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().Current().Return(bankSnapshot(t), nil).AnyTimes()

	uc := usecase.NewDayCloseUseCase(m.txMgr, m.days, m.closes, m.postings, m.trials, m.outbox, m.audit, snapshots,
		&seqIDs{}, newFakeClock(businessDay.Add(18*time.Hour)), m.metrics, zerolog.Nop(), 50*time.Millisecond)
	return uc, m
}

func depositMovements() []domain.AccountMovement {
	return []domain.AccountMovement{
		{AccountID: "cash", AccountNumber: "1001", Debit: amount("100"), EntryCount: 1},
		{AccountID: "deposits", AccountNumber: "2001", Credit: amount("100"), EntryCount: 1},
	}
}

func TestDayCloseUseCase_CloseDay(t *testing.T) {
	stored := &domain.CloseOfDayData{BranchID: "B1", BusinessDate: businessDay, WasProcessingSuccessful: true}

	tests := []struct {
		name       string
		setupMocks func(t *testing.T, m *dayCloseMocks)
		wantErr    error
		check      func(t *testing.T, got *domain.CloseOfDayData)
	}{
		{
			name: "closes the day from opening balances",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(nil, domain.ErrDayNotClosed)
				m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().BeginClose(gomock.Any(), m.tx, "B1", businessDay, 50*time.Millisecond).
					Return(&domain.BranchDay{BranchID: "B1", BusinessDate: businessDay, Status: domain.BranchDayOpen}, nil)
				m.closes.EXPECT().GetLatestBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.postings.EXPECT().SumByBranchDay(gomock.Any(), "B1", businessDay).Return(depositMovements(), nil)
				m.postings.EXPECT().ListReferencesByBranchDay(gomock.Any(), "B1", businessDay).Return([]string{"DEP-1"}, nil)
				m.closes.EXPECT().Save(gomock.Any(), m.tx, gomock.Any()).Return(nil)
				m.days.EXPECT().MarkClosed(gomock.Any(), m.tx, "B1", businessDay, gomock.Any()).Return(nil)
				m.outbox.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ usecase.Transaction, e *domain.OutboxEvent) error {
						assert.Equal(t, domain.EventTypeDayCloseCompleted, e.EventType)
						assert.Equal(t, "B1|2024-03-01", e.AggregateID)
						return nil
					})
				m.audit.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ usecase.Transaction, l *domain.AuditLog) error {
						assert.Equal(t, domain.AuditActionDayClose, l.Action)
						assert.Equal(t, "B1|2024-03-01", l.ResourceID)
						assert.Equal(t, "open", l.BeforeState["status"])
						assert.Equal(t, "closed", l.AfterState["status"])
						assert.Equal(t, "100", l.AfterState["total_debit"])
						return nil
					})
				m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
				m.metrics.EXPECT().DayClosed(usecase.OutcomeClosed, gomock.Any())
			},
			check: func(t *testing.T, got *domain.CloseOfDayData) {
				assert.True(t, got.WasProcessingSuccessful)
				assert.Equal(t, []string{"DEP-1"}, got.EntryReferences)
				require.Len(t, got.Accounts, 3)
				// 1001 cash, 2001 deposits, 3001 capital carried without movement
				assert.True(t, got.Accounts[0].Ending.Equal(amount("600")))
				assert.True(t, got.Accounts[1].Ending.Equal(amount("100")))
				assert.True(t, got.Accounts[2].Ending.Equal(amount("500")))
				assert.True(t, got.Beginning.IsZero())
				assert.True(t, got.Ending.IsZero())
			},
		},
		{
			name: "already closed",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(stored, nil)
				m.metrics.EXPECT().DayClosed(usecase.OutcomeAlreadyClosed, gomock.Any())
			},
			check: func(t *testing.T, got *domain.CloseOfDayData) {
				assert.Same(t, stored, got)
			},
		},
		{
			name: "closed by a concurrent caller",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				gomock.InOrder(
					m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(nil, domain.ErrDayNotClosed),
					m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(stored, nil),
				)
				m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().BeginClose(gomock.Any(), m.tx, "B1", businessDay, gomock.Any()).
					Return(&domain.BranchDay{BranchID: "B1", BusinessDate: businessDay, Status: domain.BranchDayClosed}, nil)
				m.metrics.EXPECT().DayClosed(usecase.OutcomeAlreadyClosed, gomock.Any())
			},
			check: func(t *testing.T, got *domain.CloseOfDayData) {
				assert.Same(t, stored, got)
			},
		},
		{
			name: "earlier day still open",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(nil, domain.ErrDayNotClosed)
				m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", businessDay).Return([]*domain.BranchDay{
					{BranchID: "B1", BusinessDate: businessDay.AddDate(0, 0, -1), Status: domain.BranchDayOpen},
				}, nil)
			},
			wantErr: domain.ErrPreviousDayNotClosed,
		},
		{
			name: "in-flight postings did not drain",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(nil, domain.ErrDayNotClosed)
				m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().BeginClose(gomock.Any(), m.tx, "B1", businessDay, gomock.Any()).
					Return(nil, fmt.Errorf("%w: branch B1", domain.ErrDayCloseNotQuiescent))
				m.days.EXPECT().RecordFailure(gomock.Any(), "B1", businessDay, gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *domain.AuditLog) error {
						assert.Equal(t, domain.AuditStatusFailure, l.Status)
						assert.Equal(t, "B1|2024-03-01", l.ResourceID)
						assert.Contains(t, l.ErrorMessage, "branch B1")
						return nil
					})
				m.metrics.EXPECT().DayClosed(usecase.OutcomeNotQuiescent, gomock.Any())
			},
			wantErr: domain.ErrDayCloseNotQuiescent,
			check: func(t *testing.T, got *domain.CloseOfDayData) {
				require.NotNil(t, got)
				assert.False(t, got.WasProcessingSuccessful)
				assert.Contains(t, got.Message, "did not drain")
			},
		},
		{
			name: "unbalanced movements fail the close",
			setupMocks: func(t *testing.T, m *dayCloseMocks) {
				m.closes.EXPECT().Get(gomock.Any(), "B1", businessDay).Return(nil, domain.ErrDayNotClosed)
				m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
				m.days.EXPECT().BeginClose(gomock.Any(), m.tx, "B1", businessDay, gomock.Any()).
					Return(&domain.BranchDay{BranchID: "B1", BusinessDate: businessDay, Status: domain.BranchDayOpen}, nil)
				m.closes.EXPECT().GetLatestBefore(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.postings.EXPECT().SumByBranchDay(gomock.Any(), "B1", businessDay).Return([]domain.AccountMovement{
					{AccountID: "cash", AccountNumber: "1001", Debit: amount("100"), EntryCount: 1},
				}, nil)
				m.postings.EXPECT().ListReferencesByBranchDay(gomock.Any(), "B1", businessDay).Return(nil, nil)
				m.days.EXPECT().RecordFailure(gomock.Any(), "B1", businessDay, gomock.Any(), gomock.Any()).Return(nil)
				m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("audit store down"))
				m.metrics.EXPECT().DayClosed(usecase.OutcomeFailed, gomock.Any())
			},
			wantErr: domain.ErrDayCloseUnbalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newDayCloseUseCase(t)
			tt.setupMocks(t, m)

			got, err := uc.CloseDay(context.Background(), "B1", businessDay.Add(9*time.Hour))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else {
				require.NoError(t, err)
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestDayCloseUseCase_CarriesPreviousEnding(t *testing.T) {
	uc, m := newDayCloseUseCase(t)
	next := businessDay.AddDate(0, 0, 1)
	prev := &domain.CloseOfDayData{
		BranchID: "B1", BusinessDate: businessDay,
		Accounts: []domain.EndOfDayData{
			{ChartOfAccountID: "cash", AccountNumber: "1001", NormalSide: domain.SideDebit, Ending: amount("600")},
			{ChartOfAccountID: "deposits", AccountNumber: "2001", NormalSide: domain.SideCredit, Ending: amount("100")},
			{ChartOfAccountID: "capital", AccountNumber: "3001", NormalSide: domain.SideCredit, Ending: amount("500")},
		},
	}

	m.closes.EXPECT().Get(gomock.Any(), "B1", next).Return(nil, domain.ErrDayNotClosed)
	m.days.EXPECT().ListOpenBefore(gomock.Any(), "B1", next).Return(nil, nil)
	m.txMgr.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.days.EXPECT().BeginClose(gomock.Any(), m.tx, "B1", next, gomock.Any()).
		Return(&domain.BranchDay{BranchID: "B1", BusinessDate: next, Status: domain.BranchDayOpen}, nil)
	m.closes.EXPECT().GetLatestBefore(gomock.Any(), "B1", next).Return(prev, nil)
	m.postings.EXPECT().SumByBranchDay(gomock.Any(), "B1", next).Return(nil, nil)
	m.postings.EXPECT().ListReferencesByBranchDay(gomock.Any(), "B1", next).Return(nil, nil)
	m.closes.EXPECT().Save(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.days.EXPECT().MarkClosed(gomock.Any(), m.tx, "B1", next, gomock.Any()).Return(nil)
	m.outbox.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.audit.EXPECT().CreateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	m.metrics.EXPECT().DayClosed(usecase.OutcomeClosed, gomock.Any())

	got, err := uc.CloseDay(context.Background(), "B1", next)
	require.NoError(t, err)
	require.Len(t, got.Accounts, 3)
	for _, a := range got.Accounts {
		assert.True(t, a.Beginning.Equal(a.Ending), "account %s moved without entries", a.AccountNumber)
	}
}

func TestDayCloseUseCase_GetTrialBalance(t *testing.T) {
	uc, m := newDayCloseUseCase(t)
	asOf := businessDay.AddDate(0, 0, 1)
	base := &domain.CloseOfDayData{
		BranchID: "B1", BusinessDate: businessDay,
		Accounts: []domain.EndOfDayData{
			{ChartOfAccountID: "cash", AccountNumber: "1001", NormalSide: domain.SideDebit, Ending: amount("600")},
			{ChartOfAccountID: "deposits", AccountNumber: "2001", NormalSide: domain.SideCredit, Ending: amount("100")},
			{ChartOfAccountID: "capital", AccountNumber: "3001", NormalSide: domain.SideCredit, Ending: amount("500")},
		},
	}

	m.closes.EXPECT().GetLatestOnOrBefore(gomock.Any(), "B1", asOf).Return(base, nil)
	m.postings.EXPECT().SumByBranchRange(gomock.Any(), "B1", businessDay, asOf).Return([]domain.AccountMovement{
		{AccountID: "cash", AccountNumber: "1001", Credit: amount("40"), EntryCount: 1},
		{AccountID: "fee", AccountNumber: "4001", Debit: amount("40"), EntryCount: 1},
	}, nil)
	m.trials.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	file, err := uc.GetTrialBalance(context.Background(), "B1", asOf)
	require.NoError(t, err)
	require.NotNil(t, file.Reference.BaseClose)
	assert.True(t, file.Reference.BaseClose.Equal(businessDay))
	assert.True(t, file.Reference.TotalDebit.Equal(file.Reference.TotalCredit))
	require.Len(t, file.Lines, 4)
	assert.True(t, file.Lines[0].Debit.Equal(amount("560")))
	// fee income debited below zero shows in the debit column
	assert.Equal(t, "4001", file.Lines[3].AccountNumber)
	assert.True(t, file.Lines[3].Debit.Equal(amount("40")))
}
