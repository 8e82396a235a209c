package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategory_NormalSide(t *testing.T) {
	tests := []struct {
		category Category
		want     Side
		wantErr  bool
	}{
		{CategoryAsset, SideDebit, false},
		{CategoryExpense, SideDebit, false},
		{CategoryLiability, SideCredit, false},
		{CategoryIncome, SideCredit, false},
		{CategoryEquity, SideCredit, false},
		{Category("memo"), "", true},
	}

	for _, tt := range tests {
		got, err := tt.category.NormalSide()
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("%s: expected ErrInvalidConfig, got %v", tt.category, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("%s: NormalSide() = %s, %v; want %s", tt.category, got, err, tt.want)
		}
	}
}

func TestChartOfAccount_Validate(t *testing.T) {
	tests := []struct {
		name     string
		account  ChartOfAccount
		wantSide Side
		wantErr  bool
	}{
		{
			name:     "fills normal side from category",
			account:  ChartOfAccount{ID: "1", Number: "1001", Category: CategoryAsset},
			wantSide: SideDebit,
		},
		{
			name:     "accepts matching side",
			account:  ChartOfAccount{ID: "2", Number: "2001", Category: CategoryLiability, NormalSide: SideCredit},
			wantSide: SideCredit,
		},
		{
			name:    "rejects side disagreeing with category",
			account: ChartOfAccount{ID: "3", Number: "4001", Category: CategoryIncome, NormalSide: SideDebit},
			wantErr: true,
		},
		{
			name:    "rejects missing number",
			account: ChartOfAccount{ID: "4", Category: CategoryAsset},
			wantErr: true,
		},
		{
			name:    "rejects self parent",
			account: ChartOfAccount{ID: "5", Number: "5001", Category: CategoryExpense, ParentID: "5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := tt.account
			err := acc.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if acc.NormalSide != tt.wantSide {
				t.Fatalf("NormalSide = %s, want %s", acc.NormalSide, tt.wantSide)
			}
		})
	}
}

func TestApplyMovement(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	thirty := decimal.NewFromInt(30)

	asset := ChartOfAccount{NormalSide: SideDebit}
	if got := asset.ApplyMovement(hundred, thirty, decimal.Zero); !got.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("debit on debit-normal account = %s, want 130", got)
	}

	liability := ChartOfAccount{NormalSide: SideCredit}
	if got := liability.ApplyMovement(hundred, thirty, decimal.Zero); !got.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("debit on credit-normal account = %s, want 70", got)
	}
	if got := liability.ApplyMovement(hundred, decimal.Zero, thirty); !got.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("credit on credit-normal account = %s, want 130", got)
	}
}

func TestDebitPositive(t *testing.T) {
	if got := DebitPositive(SideCredit, decimal.NewFromInt(5)); !got.Equal(decimal.NewFromInt(-5)) {
		t.Fatalf("credit-normal 5 = %s, want -5", got)
	}
	if got := DebitPositive(SideDebit, decimal.NewFromInt(5)); !got.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("debit-normal 5 = %s, want 5", got)
	}
}
