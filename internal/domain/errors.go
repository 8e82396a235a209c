package domain

import "errors"

var (
	// Configuration errors
	ErrUnknownEvent       = errors.New("unknown operation event")
	ErrUnknownAttribute   = errors.New("unknown operation event attribute")
	ErrRuleNotFound       = errors.New("no accounting rule matches the operation scope")
	ErrRuleConflict       = errors.New("conflicting accounting rules for the same scope")
	ErrInvalidRuleSet     = errors.New("accounting rule set is invalid")
	ErrMappingNotFound    = errors.New("corresponding account mapping not found")
	ErrShareConfigInvalid = errors.New("share configuration is invalid")
	ErrInvalidConfig      = errors.New("accounting configuration is invalid")

	// Chart of accounts errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountNotLeaf  = errors.New("account is not a leaf account")

	// Posting errors
	ErrInvalidEntry          = errors.New("invalid accounting entry")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMissingAttribute      = errors.New("operation attribute value missing")
	ErrUnbalancedEntry       = errors.New("entry set is unbalanced: debits do not equal credits")
	ErrDuplicatePosting      = errors.New("posting already exists for transaction reference")
	ErrConcurrentPosting     = errors.New("posting for transaction reference is being written concurrently")
	ErrPostingNotFound       = errors.New("posting not found")
	ErrCannotReverseReversal = errors.New("a reversal cannot be reversed")
	ErrInvalidReference      = errors.New("invalid transaction reference")

	// Branch-day errors
	ErrBranchDayClosed        = errors.New("branch day is closed for posting")
	ErrPreviousDayNotClosed   = errors.New("an earlier branch day is still open")
	ErrDayCloseNotQuiescent   = errors.New("in-flight postings did not drain before day close")
	ErrDayNotClosed           = errors.New("branch day has not been closed")
	ErrDayCloseUnbalanced     = errors.New("day close totals do not balance")
	ErrTrialBalanceUnbalanced = errors.New("trial balance total debits do not equal total credits")

	// Tracker errors
	ErrTrackerNotFound   = errors.New("transaction tracker not found")
	ErrTrackerExists     = errors.New("transaction tracker already exists")
	ErrTrackerConflict   = errors.New("transaction tracker was modified concurrently")
	ErrTrackerFailed     = errors.New("transaction tracker is failed and requires manual retry")
	ErrInvalidTransition = errors.New("invalid transaction tracker transition")
)

var permanentErrors = []error{
	ErrUnknownEvent,
	ErrUnknownAttribute,
	ErrRuleNotFound,
	ErrRuleConflict,
	ErrInvalidRuleSet,
	ErrMappingNotFound,
	ErrShareConfigInvalid,
	ErrInvalidConfig,
	ErrAccountNotFound,
	ErrAccountNotLeaf,
	ErrInvalidEntry,
	ErrInvalidAmount,
	ErrMissingAttribute,
	ErrUnbalancedEntry,
	ErrInvalidReference,
	ErrBranchDayClosed,
	ErrCannotReverseReversal,
}

// IsPermanent reports whether err is a configuration or validation failure
// that no amount of retrying can fix.
func IsPermanent(err error) bool {
	for _, target := range permanentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
