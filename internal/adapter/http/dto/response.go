package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/usecase"
)

// EntryResponse represents a posted ledger line.
type EntryResponse struct {
	ID            string          `json:"id"`
	LineNo        int             `json:"line_no"`
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	BranchID      string          `json:"branch_id"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	ValueDate     string          `json:"value_date"`
	Description   string          `json:"description,omitempty"`
	PostedBy      string          `json:"posted_by"`
	PostedAt      time.Time       `json:"posted_at"`
}

// PostingResponse represents a posted entry set.
type PostingResponse struct {
	Reference       string           `json:"reference"`
	ReversalOf      string           `json:"reversal_of,omitempty"`
	TotalDebit      decimal.Decimal  `json:"total_debit"`
	TotalCredit     decimal.Decimal  `json:"total_credit"`
	Balanced        bool             `json:"balanced"`
	Replayed        bool             `json:"replayed"`
	SnapshotVersion int64            `json:"snapshot_version"`
	Entries         []*EntryResponse `json:"entries"`
	Tracker         *TrackerResponse `json:"tracker,omitempty"`
}

// PostingFromResult converts a posting result to a response.
func PostingFromResult(r *usecase.PostingResult, t *domain.TransactionTracker) *PostingResponse {
	resp := &PostingResponse{
		Reference:       r.Reference,
		ReversalOf:      r.ReversalOf,
		TotalDebit:      r.TotalDebit,
		TotalCredit:     r.TotalCredit,
		Balanced:        r.Balanced,
		Replayed:        r.Replayed,
		SnapshotVersion: r.SnapshotVersion,
		Entries:         make([]*EntryResponse, len(r.Entries)),
	}
	for i, e := range r.Entries {
		resp.Entries[i] = &EntryResponse{
			ID:            e.ID,
			LineNo:        e.LineNo,
			AccountID:     e.AccountID,
			AccountNumber: e.AccountNumber,
			BranchID:      e.BranchID,
			Debit:         e.Debit,
			Credit:        e.Credit,
			ValueDate:     e.ValueDate.Format(domain.DateLayout),
			Description:   e.Description,
			PostedBy:      e.PostedBy,
			PostedAt:      e.PostedAt,
		}
	}
	if t != nil {
		resp.Tracker = TrackerFromDomain(t)
	}
	return resp
}

// PreviewLineResponse represents a resolved but unposted line.
type PreviewLineResponse struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	BranchID      string          `json:"branch_id"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Description   string          `json:"description,omitempty"`
}

// PreviewFromEntries converts resolved lines to a response.
func PreviewFromEntries(lines []domain.AccountingEntry) []*PreviewLineResponse {
	out := make([]*PreviewLineResponse, len(lines))
	for i, l := range lines {
		out[i] = &PreviewLineResponse{
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			BranchID:      l.BranchID,
			Debit:         l.Debit,
			Credit:        l.Credit,
			Description:   l.Description,
		}
	}
	return out
}

// TrackerResponse represents a transaction tracker.
type TrackerResponse struct {
	Reference     string     `json:"reference"`
	Status        string     `json:"status"`
	HasPassed     bool       `json:"has_passed"`
	NumberOfRetry int        `json:"number_of_retry"`
	LastError     string     `json:"last_error,omitempty"`
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TrackerFromDomain converts a tracker to a response.
func TrackerFromDomain(t *domain.TransactionTracker) *TrackerResponse {
	return &TrackerResponse{
		Reference:     t.Reference,
		Status:        string(t.Status),
		HasPassed:     t.HasPassed,
		NumberOfRetry: t.NumberOfRetry,
		LastError:     t.LastError,
		NextAttemptAt: t.NextAttemptAt,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// TrackersFromDomain converts trackers to responses.
func TrackersFromDomain(trackers []*domain.TransactionTracker) []*TrackerResponse {
	out := make([]*TrackerResponse, len(trackers))
	for i, t := range trackers {
		out[i] = TrackerFromDomain(t)
	}
	return out
}

// AuditLogResponse represents an audit trail entry.
type AuditLogResponse struct {
	ID           string         `json:"id"`
	Actor        string         `json:"actor"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	RequestID    string         `json:"request_id,omitempty"`
	IPAddress    string         `json:"ip_address,omitempty"`
	BeforeState  map[string]any `json:"before_state,omitempty"`
	AfterState   map[string]any `json:"after_state,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// AuditLogsFromDomain converts audit entries to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	out := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		out[i] = &AuditLogResponse{
			ID:           l.ID,
			Actor:        l.Actor,
			Action:       string(l.Action),
			ResourceType: l.ResourceType,
			ResourceID:   l.ResourceID,
			RequestID:    l.RequestID,
			IPAddress:    l.IPAddress,
			BeforeState:  l.BeforeState,
			AfterState:   l.AfterState,
			Status:       string(l.Status),
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		}
	}
	return out
}

// AccountCloseResponse represents one account of a day close.
type AccountCloseResponse struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	NormalSide    string          `json:"normal_side"`
	Beginning     decimal.Decimal `json:"beginning"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Ending        decimal.Decimal `json:"ending"`
	EntryCount    int             `json:"entry_count"`
}

// DayCloseResponse represents the close of a branch day.
type DayCloseResponse struct {
	BranchID     string                  `json:"branch_id"`
	BusinessDate string                  `json:"business_date"`
	Successful   bool                    `json:"was_processing_successful"`
	Message      string                  `json:"message,omitempty"`
	Beginning    decimal.Decimal         `json:"beginning"`
	TotalDebit   decimal.Decimal         `json:"total_debit"`
	TotalCredit  decimal.Decimal         `json:"total_credit"`
	Ending       decimal.Decimal         `json:"ending"`
	ClosedAt     time.Time               `json:"closed_at"`
	References   []string                `json:"entry_references,omitempty"`
	Accounts     []*AccountCloseResponse `json:"accounts"`
}

// DayCloseFromDomain converts a day close to a response.
func DayCloseFromDomain(c *domain.CloseOfDayData) *DayCloseResponse {
	resp := &DayCloseResponse{
		BranchID:     c.BranchID,
		BusinessDate: c.BusinessDate.Format(domain.DateLayout),
		Successful:   c.WasProcessingSuccessful,
		Message:      c.Message,
		Beginning:    c.Beginning,
		TotalDebit:   c.TotalDebit,
		TotalCredit:  c.TotalCredit,
		Ending:       c.Ending,
		ClosedAt:     c.ClosedAt,
		References:   c.EntryReferences,
		Accounts:     make([]*AccountCloseResponse, len(c.Accounts)),
	}
	for i, a := range c.Accounts {
		resp.Accounts[i] = &AccountCloseResponse{
			AccountID:     a.ChartOfAccountID,
			AccountNumber: a.AccountNumber,
			NormalSide:    string(a.NormalSide),
			Beginning:     a.Beginning,
			Debit:         a.Debit,
			Credit:        a.Credit,
			Ending:        a.Ending,
			EntryCount:    a.EntryCount,
		}
	}
	return resp
}

// TrialBalanceLineResponse represents one account of a trial balance.
type TrialBalanceLineResponse struct {
	AccountID     string          `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	NormalSide    string          `json:"normal_side"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents a trial balance file.
type TrialBalanceResponse struct {
	ID          string                      `json:"id"`
	BranchID    string                      `json:"branch_id"`
	AsOf        string                      `json:"as_of"`
	BaseClose   string                      `json:"base_close,omitempty"`
	TotalDebit  decimal.Decimal             `json:"total_debit"`
	TotalCredit decimal.Decimal             `json:"total_credit"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Lines       []*TrialBalanceLineResponse `json:"lines"`
}

// TrialBalanceFromDomain converts a trial balance to a response.
func TrialBalanceFromDomain(f *domain.TrialBalanceFile) *TrialBalanceResponse {
	resp := &TrialBalanceResponse{
		ID:          f.Reference.ID,
		BranchID:    f.Reference.BranchID,
		AsOf:        f.Reference.AsOf.Format(domain.DateLayout),
		TotalDebit:  f.Reference.TotalDebit,
		TotalCredit: f.Reference.TotalCredit,
		GeneratedAt: f.Reference.GeneratedAt,
		Lines:       make([]*TrialBalanceLineResponse, len(f.Lines)),
	}
	if f.Reference.BaseClose != nil {
		resp.BaseClose = f.Reference.BaseClose.Format(domain.DateLayout)
	}
	for i, l := range f.Lines {
		resp.Lines[i] = &TrialBalanceLineResponse{
			AccountID:     l.ChartOfAccountID,
			AccountNumber: l.AccountNumber,
			NormalSide:    string(l.NormalSide),
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
	}
	return resp
}

// ConsistencyResponse represents the ledger consistency check.
type ConsistencyResponse struct {
	Status               string          `json:"status"`
	Consistent           bool            `json:"consistent"`
	TotalDebit           decimal.Decimal `json:"total_debit"`
	TotalCredit          decimal.Decimal `json:"total_credit"`
	UnbalancedReferences int64           `json:"unbalanced_references"`
}

// ConsistencyFromReport converts a consistency report to a response.
func ConsistencyFromReport(r *usecase.ConsistencyReport) *ConsistencyResponse {
	status := "consistent"
	if !r.Consistent {
		status = "inconsistent"
	}
	return &ConsistencyResponse{
		Status:               status,
		Consistent:           r.Consistent,
		TotalDebit:           r.TotalDebit,
		TotalCredit:          r.TotalCredit,
		UnbalancedReferences: r.UnbalancedReferences,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
