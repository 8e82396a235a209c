package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

func TestPostingFromResult(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	result := &usecase.PostingResult{
		Reference:   "TRX-001",
		TotalDebit:  decimal.NewFromInt(100),
		TotalCredit: decimal.NewFromInt(100),
		Balanced:    true,
		Entries: []*domain.PostedEntry{
			{ID: "e1", LineNo: 1, AccountID: "cash", AccountNumber: "1001", BranchID: "B1", Debit: decimal.NewFromInt(100), ValueDate: day},
			{ID: "e2", LineNo: 2, AccountID: "deposits", AccountNumber: "2001", BranchID: "B1", Credit: decimal.NewFromInt(100), ValueDate: day},
		},
	}
	tracker := &domain.TransactionTracker{Reference: "TRX-001", Status: domain.TrackerPosted, HasPassed: true}

	resp := PostingFromResult(result, tracker)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "2024-03-15", resp.Entries[0].ValueDate)
	require.NotNil(t, resp.Tracker)
	assert.Equal(t, "posted", resp.Tracker.Status)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"total_debit":"100"`)

	assert.Nil(t, PostingFromResult(result, nil).Tracker)
}

func TestDayCloseFromDomain(t *testing.T) {
	c := &domain.CloseOfDayData{
		BranchID:                "B1",
		BusinessDate:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		WasProcessingSuccessful: true,
		Accounts: []domain.EndOfDayData{
			{ChartOfAccountID: "cash", AccountNumber: "1001", NormalSide: domain.SideDebit, Ending: decimal.NewFromInt(600)},
		},
	}

	resp := DayCloseFromDomain(c)
	assert.Equal(t, "2024-03-15", resp.BusinessDate)
	assert.True(t, resp.Successful)
	require.Len(t, resp.Accounts, 1)
	assert.Equal(t, "debit", resp.Accounts[0].NormalSide)
}

func TestTrialBalanceFromDomain(t *testing.T) {
	base := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	f := &domain.TrialBalanceFile{
		Reference: domain.TrialBalanceReference{ID: "tb-1", BranchID: "B1", AsOf: base.AddDate(0, 0, 1), BaseClose: &base},
		Lines:     []domain.TrialBalanceLine{{ChartOfAccountID: "cash", AccountNumber: "1001", NormalSide: domain.SideDebit, Debit: decimal.NewFromInt(5)}},
	}

	resp := TrialBalanceFromDomain(f)
	assert.Equal(t, "2024-03-15", resp.AsOf)
	assert.Equal(t, "2024-03-14", resp.BaseClose)
	assert.Len(t, resp.Lines, 1)
}

func TestConsistencyFromReport(t *testing.T) {
	assert.Equal(t, "consistent", ConsistencyFromReport(&usecase.ConsistencyReport{Consistent: true}).Status)
	assert.Equal(t, "inconsistent", ConsistencyFromReport(&usecase.ConsistencyReport{UnbalancedReferences: 2}).Status)
}
