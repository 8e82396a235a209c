package domain

// OperationEvent is a business operation the ledger knows how to post.
type OperationEvent struct {
	Code        string
	Description string
	// MultiEntry events may resolve to more than two ledger lines.
	MultiEntry bool
}

// OperationEventAttribute is an amount-bearing attribute of an event, such
// as a fee, principal or VAT component.
type OperationEventAttribute struct {
	EventCode   string
	Code        string
	Description string
}
