package domain

import (
	"context"
	"encoding/json"
	"time"
)

// AuditLog records an operator action against the ledger.
type AuditLog struct {
	ID           string
	Actor        string // who performed the action
	Action       AuditAction
	ResourceType string // posting, tracker, branch_day, config
	ResourceID   string
	RequestID    string
	IPAddress    string
	UserAgent    string
	BeforeState  JSON
	AfterState   JSON
	Status       AuditStatus
	ErrorMessage string
	CreatedAt    time.Time
}

// JSON is a free-form state snapshot.
type JSON map[string]any

// AuditAction names an audited operation.
type AuditAction string

const (
	AuditActionPostingReverse AuditAction = "posting.reverse"
	AuditActionTrackerRetry   AuditAction = "tracker.retry"
	AuditActionDayClose       AuditAction = "dayclose.run"
	AuditActionConfigRefresh  AuditAction = "config.refresh"
)

// Audited resource types.
const (
	AuditResourcePosting   = "posting"
	AuditResourceTracker   = "tracker"
	AuditResourceBranchDay = "branch_day"
	AuditResourceConfig    = "config"
)

// AuditStatus is the outcome of an audited action.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusFailure AuditStatus = "failure"
)

// Fail marks the entry as failed with err.
func (l *AuditLog) Fail(err error) {
	l.Status = AuditStatusFailure
	l.ErrorMessage = err.Error()
}

// AuditFilter narrows an audit log listing. Empty fields match everything.
type AuditFilter struct {
	Actor        string
	Action       AuditAction
	ResourceType string
	ResourceID   string
	Limit        int
	Offset       int
}

// MarshalState converts a domain object to JSON for audit logging.
func MarshalState(v any) JSON {
	if v == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return JSON{"error": "failed to marshal state"}
	}

	var result JSON
	if err := json.Unmarshal(data, &result); err != nil {
		return JSON{"error": "failed to unmarshal state"}
	}

	return result
}

// RequestMeta identifies the inbound request behind an action.
type RequestMeta struct {
	RequestID string
	IPAddress string
	UserAgent string
}

type requestMetaKey struct{}

// WithRequestMeta stores meta in ctx.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext returns the request metadata in ctx, if any.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	meta, _ := ctx.Value(requestMetaKey{}).(RequestMeta)
	return meta
}

// NewAuditLog starts a successful audit entry attributed to the actor and
// request found in ctx.
func NewAuditLog(ctx context.Context, id string, action AuditAction, resourceType, resourceID string, at time.Time) *AuditLog {
	meta := RequestMetaFromContext(ctx)
	return &AuditLog{
		ID:           id,
		Actor:        ActorFromContext(ctx),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		RequestID:    meta.RequestID,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Status:       AuditStatusSuccess,
		CreatedAt:    at,
	}
}
