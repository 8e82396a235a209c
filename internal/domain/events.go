package domain

import "time"

// Event types
const (
	EventTypePostingCreated    = "posting.created"
	EventTypePostingReversed   = "posting.reversed"
	EventTypeDayCloseCompleted = "dayclose.completed"
	EventTypeTrackerFailed     = "tracker.failed"
)

// Aggregate types
const (
	AggregateTypePosting   = "posting"
	AggregateTypeBranchDay = "branch_day"
	AggregateTypeTracker   = "tracker"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PostingCreatedEvent payload
type PostingCreatedEvent struct {
	Reference     string `json:"reference"`
	EventCode     string `json:"event_code"`
	AttributeCode string `json:"attribute_code"`
	TotalDebit    string `json:"total_debit"`
	LineCount     int    `json:"line_count"`
	PostedBy      string `json:"posted_by"`
}

// PostingReversedEvent payload
type PostingReversedEvent struct {
	Reference         string `json:"reference"`
	OriginalReference string `json:"original_reference"`
	TotalDebit        string `json:"total_debit"`
}

// DayCloseCompletedEvent payload
type DayCloseCompletedEvent struct {
	BranchID     string `json:"branch_id"`
	BusinessDate string `json:"business_date"`
	TotalDebit   string `json:"total_debit"`
	TotalCredit  string `json:"total_credit"`
	AccountCount int    `json:"account_count"`
}

// TrackerFailedEvent payload
type TrackerFailedEvent struct {
	Reference     string `json:"reference"`
	NumberOfRetry int    `json:"number_of_retry"`
	LastError     string `json:"last_error"`
}
