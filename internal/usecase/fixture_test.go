package usecase_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

var businessDay = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// bankConfigSet configures two events: CASH_DEPOSIT with a principal rule
// and an ENTRY_FEE split 40/30/20/10 across head office, partner, source
// and destination branch, and a single-entry TRANSFER settled through the
// SETTLE corresponding reference.
func bankConfigSet() *domain.ConfigSet {
	share := func(p domain.Party) domain.AmountFormula {
		return domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, p)
	}
	return &domain.ConfigSet{
		Accounts: []domain.ChartOfAccount{
			{ID: "assets", Number: "1000", Name: "Assets", Category: domain.CategoryAsset},
			{ID: "cash", Number: "1001", Name: "Cash in vault", Category: domain.CategoryAsset, ParentID: "assets"},
			{ID: "nostro", Number: "1002", Name: "Nostro", Category: domain.CategoryAsset, ParentID: "assets"},
			{ID: "due-from", Number: "1100", Name: "Due from branches", Category: domain.CategoryAsset},
			{ID: "deposits", Number: "2001", Name: "Customer deposits", Category: domain.CategoryLiability},
			{ID: "partner", Number: "2100", Name: "Partner payable", Category: domain.CategoryLiability},
			{ID: "due-to", Number: "2200", Name: "Due to branches", Category: domain.CategoryLiability},
			{ID: "capital", Number: "3001", Name: "Capital", Category: domain.CategoryEquity},
			{ID: "fee", Number: "4001", Name: "Fee income", Category: domain.CategoryIncome},
		},
		Events: []domain.OperationEvent{
			{Code: "CASH_DEPOSIT", MultiEntry: true},
			{Code: "TRANSFER"},
		},
		Attributes: []domain.OperationEventAttribute{
			{EventCode: "CASH_DEPOSIT", Code: "PRINCIPAL"},
			{EventCode: "CASH_DEPOSIT", Code: "ENTRY_FEE"},
			{EventCode: "TRANSFER", Code: "AMOUNT"},
		},
		Rules: []domain.AccountingRule{
			{
				ID: "deposit", EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("PRINCIPAL")},
					{Sequence: 2, Account: domain.DirectAccount("deposits"), Direction: domain.DirectionCredit, Formula: domain.AttributeValue("PRINCIPAL")},
				},
			},
			{
				ID: "entry-fee", EventCode: "CASH_DEPOSIT", AttributeCode: "ENTRY_FEE",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("ENTRY_FEE")},
					{Sequence: 2, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: share(domain.PartyHeadOffice)},
					{Sequence: 3, Account: domain.DirectAccount("partner"), Direction: domain.DirectionCredit, Formula: share(domain.PartyPartner)},
					{Sequence: 4, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Formula: share(domain.PartySourceBranch)},
					{Sequence: 5, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: share(domain.PartyDestinationBranch)},
					{Sequence: 6, Account: domain.DirectAccount("due-from"), Direction: domain.DirectionDebit, Branch: domain.BranchHeadOffice, Formula: share(domain.PartyHeadOffice)},
					{Sequence: 7, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Branch: domain.BranchHeadOffice, Formula: share(domain.PartyHeadOffice)},
					{Sequence: 8, Account: domain.DirectAccount("due-from"), Direction: domain.DirectionDebit, Branch: domain.BranchDestination, Formula: share(domain.PartyDestinationBranch)},
					{Sequence: 9, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Branch: domain.BranchDestination, Formula: share(domain.PartyDestinationBranch)},
				},
			},
			{
				ID: "transfer", EventCode: "TRANSFER", AttributeCode: "AMOUNT",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("deposits"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("AMOUNT")},
					{Sequence: 2, Account: domain.CorrespondingAccount("SETTLE", ""), Direction: domain.DirectionCredit, Formula: domain.AttributeValue("AMOUNT")},
				},
			},
		},
		ReferenceCodes: []domain.DocumentReferenceCode{{Code: "SETTLE", HasException: true}},
		Mappings: []domain.CorrespondingMapping{
			{ReferenceCode: "SETTLE", ChartOfAccountID: "cash", CounterpartNumber: "2200"},
		},
		Exceptions: []domain.CorrespondingMappingException{
			{ReferenceCode: "SETTLE", AccountNumber: "1002", CounterpartNumber: "1100"},
		},
		ShareConfigs: []domain.ShareConfig{
			{Code: "FEE_SPLIT", Channels: map[domain.Channel]domain.ShareSet{
				domain.ChannelStandard: {HeadOffice: amount("40"), Partner: amount("30"), SourceBranch: amount("20"), DestinationBranch: amount("10")},
			}},
		},
		OpeningBalances: []domain.OpeningBalance{
			{BranchID: "B1", ChartOfAccountID: "cash", Balance: amount("500")},
			{BranchID: "B1", ChartOfAccountID: "capital", Balance: amount("500")},
		},
	}
}

func bankSnapshot(t *testing.T) *usecase.Snapshot {
	t.Helper()
	snap, err := usecase.NewSnapshot(bankConfigSet(), domain.DefaultPolicy(), 1, businessDay)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return snap
}

func depositCommand(ref string, principal string) domain.PostingCommand {
	return domain.PostingCommand{
		Reference:     ref,
		EventCode:     "CASH_DEPOSIT",
		AttributeCode: "PRINCIPAL",
		Amount:        amount(principal),
		ValueDate:     businessDay,
		Description:   "cash deposit",
		Context:       domain.OperationContext{BranchID: "B1"},
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock { return &fakeClock{now: now} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type seqIDs struct{ n atomic.Int64 }

func (g *seqIDs) Generate() string { return fmt.Sprintf("id-%06d", g.n.Add(1)) }
