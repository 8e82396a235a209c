package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type AccountingRule struct {
	ID            string `json:"id"`
	EventCode     string `json:"event_code"`
	AttributeCode string `json:"attribute_code"`
	ProductID     string `json:"product_id"`
	BranchID      string `json:"branch_id"`
}

type AccountingRuleEntry struct {
	RuleID           string         `json:"rule_id"`
	Sequence         int32          `json:"sequence"`
	AccountKind      string         `json:"account_kind"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	ReferenceCode    string         `json:"reference_code"`
	SourceAccountID  string         `json:"source_account_id"`
	Direction        string         `json:"direction"`
	BranchSelector   string         `json:"branch_selector"`
	FormulaKind      string         `json:"formula_kind"`
	FormulaValue     pgtype.Numeric `json:"formula_value"`
	FormulaAttribute string         `json:"formula_attribute"`
	FormulaPercent   pgtype.Numeric `json:"formula_percent"`
	ShareCode        string         `json:"share_code"`
	ShareChannel     string         `json:"share_channel"`
	ShareParty       string         `json:"share_party"`
	Description      string         `json:"description"`
}

type AuditLog struct {
	ID           string             `json:"id"`
	Actor        string             `json:"actor"`
	Action       string             `json:"action"`
	ResourceType string             `json:"resource_type"`
	ResourceID   string             `json:"resource_id"`
	RequestID    string             `json:"request_id"`
	IpAddress    string             `json:"ip_address"`
	UserAgent    string             `json:"user_agent"`
	BeforeState  []byte             `json:"before_state"`
	AfterState   []byte             `json:"after_state"`
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

type BranchDay struct {
	BranchID      string             `json:"branch_id"`
	BusinessDate  pgtype.Date        `json:"business_date"`
	Status        string             `json:"status"`
	CloseAttempts int32              `json:"close_attempts"`
	LastError     string             `json:"last_error"`
	ClosedAt      pgtype.Timestamptz `json:"closed_at"`
}

type ChartOfAccount struct {
	ID         string      `json:"id"`
	Number     string      `json:"number"`
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	NormalSide string      `json:"normal_side"`
	ParentID   pgtype.Text `json:"parent_id"`
}

type ConditionalAccountReference struct {
	ReferenceCode  string `json:"reference_code"`
	Sequence       int32  `json:"sequence"`
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
	TargetNumber   string `json:"target_number"`
}

type CorrespondingMapping struct {
	ReferenceCode       string `json:"reference_code"`
	ChartOfAccountID    string `json:"chart_of_account_id"`
	CounterpartNumber   string `json:"counterpart_number"`
	CounterpartCategory string `json:"counterpart_category"`
}

type CorrespondingMappingException struct {
	ReferenceCode       string `json:"reference_code"`
	AccountNumber       string `json:"account_number"`
	CounterpartNumber   string `json:"counterpart_number"`
	CounterpartCategory string `json:"counterpart_category"`
}

type DayClose struct {
	BranchID        string             `json:"branch_id"`
	BusinessDate    pgtype.Date        `json:"business_date"`
	Beginning       pgtype.Numeric     `json:"beginning"`
	TotalDebit      pgtype.Numeric     `json:"total_debit"`
	TotalCredit     pgtype.Numeric     `json:"total_credit"`
	Ending          pgtype.Numeric     `json:"ending"`
	EntryReferences []string           `json:"entry_references"`
	ClosedAt        pgtype.Timestamptz `json:"closed_at"`
}

type DocumentReferenceCode struct {
	Code         string `json:"code"`
	HasException bool   `json:"has_exception"`
	Description  string `json:"description"`
}

type EndOfDayBalance struct {
	BranchID         string         `json:"branch_id"`
	BusinessDate     pgtype.Date    `json:"business_date"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	AccountNumber    string         `json:"account_number"`
	NormalSide       string         `json:"normal_side"`
	Beginning        pgtype.Numeric `json:"beginning"`
	Debit            pgtype.Numeric `json:"debit"`
	Credit           pgtype.Numeric `json:"credit"`
	Ending           pgtype.Numeric `json:"ending"`
	EntryCount       int32          `json:"entry_count"`
}

type OpeningBalance struct {
	BranchID         string         `json:"branch_id"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	Balance          pgtype.Numeric `json:"balance"`
}

type OperationEvent struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	MultiEntry  bool   `json:"multi_entry"`
}

type OperationEventAttribute struct {
	EventCode   string `json:"event_code"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateID   string             `json:"aggregate_id"`
	AggregateType string             `json:"aggregate_type"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	PublishedAt   pgtype.Timestamptz `json:"published_at"`
	Published     bool               `json:"published"`
}

type PostedEntry struct {
	ID                   string             `json:"id"`
	TransactionReference string             `json:"transaction_reference"`
	LineNo               int32              `json:"line_no"`
	AccountID            string             `json:"account_id"`
	AccountNumber        string             `json:"account_number"`
	BranchID             string             `json:"branch_id"`
	Debit                pgtype.Numeric     `json:"debit"`
	Credit               pgtype.Numeric     `json:"credit"`
	ValueDate            pgtype.Date        `json:"value_date"`
	Description          string             `json:"description"`
	EventCode            string             `json:"event_code"`
	AttributeCode        string             `json:"attribute_code"`
	ReversalOf           pgtype.Text        `json:"reversal_of"`
	PostedBy             string             `json:"posted_by"`
	PostedAt             pgtype.Timestamptz `json:"posted_at"`
}

type Posting struct {
	Reference       string             `json:"reference"`
	EventCode       string             `json:"event_code"`
	AttributeCode   string             `json:"attribute_code"`
	ReversalOf      pgtype.Text        `json:"reversal_of"`
	SnapshotVersion int64              `json:"snapshot_version"`
	LineCount       int32              `json:"line_count"`
	PostedBy        string             `json:"posted_by"`
	PostedAt        pgtype.Timestamptz `json:"posted_at"`
}

type ShareConfig struct {
	Code              string         `json:"code"`
	Channel           string         `json:"channel"`
	HeadOffice        pgtype.Numeric `json:"head_office"`
	Partner           pgtype.Numeric `json:"partner"`
	SourceBranch      pgtype.Numeric `json:"source_branch"`
	DestinationBranch pgtype.Numeric `json:"destination_branch"`
}

type TransactionTracker struct {
	Reference     string             `json:"reference"`
	Payload       []byte             `json:"payload"`
	Status        string             `json:"status"`
	HasPassed     bool               `json:"has_passed"`
	NumberOfRetry int32              `json:"number_of_retry"`
	LastError     string             `json:"last_error"`
	NextAttemptAt pgtype.Timestamptz `json:"next_attempt_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
	Version       int64              `json:"version"`
}

type TrialBalance struct {
	ID          string             `json:"id"`
	BranchID    string             `json:"branch_id"`
	AsOf        pgtype.Date        `json:"as_of"`
	BaseClose   pgtype.Date        `json:"base_close"`
	TotalDebit  pgtype.Numeric     `json:"total_debit"`
	TotalCredit pgtype.Numeric     `json:"total_credit"`
	GeneratedAt pgtype.Timestamptz `json:"generated_at"`
}

type TrialBalanceLine struct {
	TrialBalanceID   string         `json:"trial_balance_id"`
	ChartOfAccountID string         `json:"chart_of_account_id"`
	AccountNumber    string         `json:"account_number"`
	NormalSide       string         `json:"normal_side"`
	Debit            pgtype.Numeric `json:"debit"`
	Credit           pgtype.Numeric `json:"credit"`
}
