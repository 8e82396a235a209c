package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
)

var loadedAt = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testConfigSet is a small chart with one share-split fee rule, one
// settlement rule through a corresponding reference and one product rule.
func testConfigSet() *domain.ConfigSet {
	return &domain.ConfigSet{
		Accounts: []domain.ChartOfAccount{
			{ID: "assets", Number: "1000", Name: "Assets", Category: domain.CategoryAsset},
			{ID: "cash", Number: "1001", Name: "Cash", Category: domain.CategoryAsset, ParentID: "assets"},
			{ID: "nostro", Number: "1002", Name: "Nostro", Category: domain.CategoryAsset, ParentID: "assets"},
			{ID: "due-from", Number: "1100", Name: "Due from branches", Category: domain.CategoryAsset},
			{ID: "deposits", Number: "2001", Name: "Deposits", Category: domain.CategoryLiability},
			{ID: "partner", Number: "2100", Name: "Partner payable", Category: domain.CategoryLiability},
			{ID: "due-to", Number: "2200", Name: "Due to branches", Category: domain.CategoryLiability},
			{ID: "capital", Number: "3001", Name: "Capital", Category: domain.CategoryEquity},
			{ID: "fee", Number: "4001", Name: "Fee income", Category: domain.CategoryIncome},
			{ID: "vip-fee", Number: "4009", Name: "VIP fee income", Category: domain.CategoryIncome},
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
				ID: "deposit-any", EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 2, Account: domain.DirectAccount("deposits"), Direction: domain.DirectionCredit, Formula: domain.AttributeValue("PRINCIPAL")},
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("PRINCIPAL")},
				},
			},
			{
				ID: "deposit-savings", EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL", ProductID: "SAVINGS",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("nostro"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("PRINCIPAL")},
					{Sequence: 2, Account: domain.DirectAccount("deposits"), Direction: domain.DirectionCredit, Formula: domain.AttributeValue("PRINCIPAL")},
				},
			},
			{
				ID: "deposit-savings-b9", EventCode: "CASH_DEPOSIT", AttributeCode: "PRINCIPAL", ProductID: "SAVINGS", BranchID: "B9",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("PRINCIPAL")},
					{Sequence: 2, Account: domain.DirectAccount("capital"), Direction: domain.DirectionCredit, Formula: domain.AttributeValue("PRINCIPAL")},
				},
			},
			{
				ID: "entry-fee", EventCode: "CASH_DEPOSIT", AttributeCode: "ENTRY_FEE",
				Entries: []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("ENTRY_FEE")},
					{Sequence: 2, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyHeadOffice)},
					{Sequence: 3, Account: domain.DirectAccount("partner"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyPartner)},
					{Sequence: 4, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartySourceBranch)},
					{Sequence: 5, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyDestinationBranch)},
					{Sequence: 6, Account: domain.DirectAccount("due-from"), Direction: domain.DirectionDebit, Branch: domain.BranchHeadOffice, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyHeadOffice)},
					{Sequence: 7, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Branch: domain.BranchHeadOffice, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyHeadOffice)},
					{Sequence: 8, Account: domain.DirectAccount("due-from"), Direction: domain.DirectionDebit, Branch: domain.BranchDestination, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyDestinationBranch)},
					{Sequence: 9, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Branch: domain.BranchDestination, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyDestinationBranch)},
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
		ReferenceCodes: []domain.DocumentReferenceCode{
			{Code: "SETTLE", HasException: true},
			{Code: "PLAIN"},
		},
		Mappings: []domain.CorrespondingMapping{
			{ReferenceCode: "SETTLE", ChartOfAccountID: "cash", CounterpartNumber: "2200", CounterpartCategory: domain.CategoryLiability},
			{ReferenceCode: "PLAIN", ChartOfAccountID: "cash", CounterpartNumber: "2200"},
		},
		Exceptions: []domain.CorrespondingMappingException{
			{ReferenceCode: "SETTLE", AccountNumber: "1002", CounterpartNumber: "1100", CounterpartCategory: domain.CategoryAsset},
		},
		Conditionals: []domain.ConditionalAccountReference{
			{ReferenceCode: "SETTLE", Sequence: 2, AttributeName: "segment", AttributeValue: "vip", TargetNumber: "4009"},
			{ReferenceCode: "SETTLE", Sequence: 1, AttributeName: "region", AttributeValue: "east", TargetNumber: "2100"},
			{ReferenceCode: "PLAIN", Sequence: 1, AttributeName: "region", AttributeValue: "east", TargetNumber: "2100"},
		},
		ShareConfigs: []domain.ShareConfig{
			{Code: "FEE_SPLIT", Channels: map[domain.Channel]domain.ShareSet{
				domain.ChannelStandard: {HeadOffice: dec("40"), Partner: dec("30"), SourceBranch: dec("20"), DestinationBranch: dec("10")},
				domain.ChannelCMoney:   {HeadOffice: dec("50"), Partner: dec("0"), SourceBranch: dec("50"), DestinationBranch: dec("0")},
			}},
		},
		OpeningBalances: []domain.OpeningBalance{
			{BranchID: "B1", ChartOfAccountID: "cash", Balance: dec("500")},
			{BranchID: "B1", ChartOfAccountID: "capital", Balance: dec("500")},
		},
	}
}

func mustSnapshot(t *testing.T, set *domain.ConfigSet) *Snapshot {
	t.Helper()
	snap, err := NewSnapshot(set, domain.DefaultPolicy(), 1, loadedAt)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return snap
}

func TestNewSnapshot_Valid(t *testing.T) {
	snap := mustSnapshot(t, testConfigSet())

	stats := snap.Stats()
	if stats.Version != 1 || stats.Accounts != 10 || stats.Rules != 5 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if snap.IsLeaf("assets") {
		t.Fatalf("assets has children and must not be a leaf")
	}
	rule, ok := snap.Rule("CASH_DEPOSIT", "PRINCIPAL", "", "")
	if !ok {
		t.Fatalf("expected the catch-all deposit rule")
	}
	if rule.Entries[0].Sequence != 1 {
		t.Fatalf("rule entries must be sorted by sequence")
	}
	conds := snap.Conditionals("SETTLE")
	if len(conds) != 2 || conds[0].AttributeName != "region" {
		t.Fatalf("conditionals must be sorted by sequence, got %+v", conds)
	}
	if len(snap.OpeningBalances("B1")) != 2 {
		t.Fatalf("expected two opening balances for B1")
	}
}

func TestNewSnapshot_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ConfigSet)
		wantErr error
	}{
		{
			name: "duplicate account number",
			mutate: func(s *domain.ConfigSet) {
				s.Accounts = append(s.Accounts, domain.ChartOfAccount{ID: "cash2", Number: "1001", Category: domain.CategoryAsset})
			},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "unknown parent",
			mutate: func(s *domain.ConfigSet) {
				s.Accounts[1].ParentID = "ghost"
			},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "parent cycle",
			mutate: func(s *domain.ConfigSet) {
				s.Accounts[0].ParentID = "cash"
			},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "rule posts to a parent account",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[0].Entries[1].Account = domain.DirectAccount("assets")
			},
			wantErr: domain.ErrAccountNotLeaf,
		},
		{
			name: "rule does not net to zero",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[0].Entries[0].Formula = domain.PercentOf("PRINCIPAL", dec("99"))
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "share group misses a party",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[3].Entries = append(s.Rules[3].Entries[:4], s.Rules[3].Entries[5:]...)
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "share group nets only in its written channel",
			mutate: func(s *domain.ConfigSet) {
				s.ShareConfigs[0].Channels = map[domain.Channel]domain.ShareSet{
					domain.ChannelStandard: {HeadOffice: dec("50"), Partner: dec("50"), SourceBranch: dec("0"), DestinationBranch: dec("0")},
					domain.ChannelCMoney:   {HeadOffice: dec("40"), Partner: dec("30"), SourceBranch: dec("20"), DestinationBranch: dec("10")},
				}
				s.Rules[3].Entries = []domain.AccountingRuleEntry{
					{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("ENTRY_FEE")},
					{Sequence: 2, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyHeadOffice)},
					{Sequence: 3, Account: domain.DirectAccount("partner"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyPartner)},
				}
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "flat amount finer than the currency precision",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[0].Entries[0].Formula = domain.Flat(dec("0.001"))
				s.Rules[0].Entries[1].Formula = domain.Flat(dec("0.001"))
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "branch scope without product",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[0].BranchID = "B1"
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "duplicate scope",
			mutate: func(s *domain.ConfigSet) {
				dup := s.Rules[0]
				dup.ID = "deposit-any-2"
				s.Rules = append(s.Rules, dup)
			},
			wantErr: domain.ErrRuleConflict,
		},
		{
			name: "single-entry event with three lines",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[4].Entries = append(s.Rules[4].Entries, domain.AccountingRuleEntry{
					Sequence: 3, Account: domain.DirectAccount("fee"), Direction: domain.DirectionCredit, Formula: domain.Flat(decimal.Zero),
				})
			},
			wantErr: domain.ErrInvalidRuleSet,
		},
		{
			name: "unknown attribute",
			mutate: func(s *domain.ConfigSet) {
				s.Rules[0].AttributeCode = "VAT"
			},
			wantErr: domain.ErrUnknownAttribute,
		},
		{
			name: "shares do not sum to 100",
			mutate: func(s *domain.ConfigSet) {
				set := s.ShareConfigs[0].Channels[domain.ChannelStandard]
				set.DestinationBranch = dec("9")
				s.ShareConfigs[0].Channels[domain.ChannelStandard] = set
			},
			wantErr: domain.ErrShareConfigInvalid,
		},
		{
			name: "exception on a code without exceptions",
			mutate: func(s *domain.ConfigSet) {
				s.Exceptions = append(s.Exceptions, domain.CorrespondingMappingException{
					ReferenceCode: "PLAIN", AccountNumber: "1001", CounterpartNumber: "1100",
				})
			},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "mapping category mismatch",
			mutate: func(s *domain.ConfigSet) {
				s.Mappings[0].CounterpartCategory = domain.CategoryAsset
			},
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name: "conditional targets a parent",
			mutate: func(s *domain.ConfigSet) {
				s.Conditionals[0].TargetNumber = "1000"
			},
			wantErr: domain.ErrAccountNotLeaf,
		},
		{
			name: "opening balances do not net",
			mutate: func(s *domain.ConfigSet) {
				s.OpeningBalances[0].Balance = dec("501")
			},
			wantErr: domain.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := testConfigSet()
			tt.mutate(set)

			_, err := NewSnapshot(set, domain.DefaultPolicy(), 1, loadedAt)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewSnapshot_InvalidPolicy(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Residual = "middle"

	if _, err := NewSnapshot(testConfigSet(), policy, 1, loadedAt); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewSnapshot_ChannelMissingFromShareConfig(t *testing.T) {
	set := testConfigSet()
	// a 50/50 split with no CMONEY channel cannot be selected by an operation
	set.ShareConfigs[0].Channels = map[domain.Channel]domain.ShareSet{
		domain.ChannelStandard: {HeadOffice: dec("50"), Partner: dec("50"), SourceBranch: dec("0"), DestinationBranch: dec("0")},
	}
	set.Rules[3].Entries = []domain.AccountingRuleEntry{
		{Sequence: 1, Account: domain.DirectAccount("cash"), Direction: domain.DirectionDebit, Formula: domain.AttributeValue("ENTRY_FEE")},
		{Sequence: 2, Account: domain.DirectAccount("due-to"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyHeadOffice)},
		{Sequence: 3, Account: domain.DirectAccount("partner"), Direction: domain.DirectionCredit, Formula: domain.ShareOf("ENTRY_FEE", "FEE_SPLIT", domain.ChannelStandard, domain.PartyPartner)},
	}
	snap := mustSnapshot(t, set)

	cmd := domain.PostingCommand{
		Reference: "T-9", EventCode: "CASH_DEPOSIT", AttributeCode: "ENTRY_FEE", Amount: dec("1000"), ValueDate: loadedAt,
		Context: domain.OperationContext{BranchID: "B1", Channel: domain.ChannelCMoney},
	}
	if _, err := BuildEntries(snap, &cmd); !errors.Is(err, domain.ErrShareConfigInvalid) {
		t.Fatalf("expected ErrShareConfigInvalid, got %v", err)
	}
}

func TestNewSnapshot_AcceptedRulesBalanceInEveryChannel(t *testing.T) {
	snap := mustSnapshot(t, testConfigSet())

	for _, ch := range append([]domain.Channel{""}, domain.Channels...) {
		cmd := domain.PostingCommand{
			Reference: "T-CH", EventCode: "CASH_DEPOSIT", AttributeCode: "ENTRY_FEE", Amount: dec("1001"), ValueDate: loadedAt,
			Context: domain.OperationContext{BranchID: "B1", DestinationBranchID: "B2", Channel: ch},
		}
		entries, err := BuildEntries(snap, &cmd)
		if err != nil {
			t.Fatalf("channel %q: %v", ch, err)
		}
		if err := domain.ValidateEntrySet(entries); err != nil {
			t.Fatalf("channel %q: %v", ch, err)
		}
	}
}
