package domain

// DocumentReferenceCode keys corresponding-account mappings. When
// HasException is set, exception overrides are consulted first.
type DocumentReferenceCode struct {
	Code         string
	HasException bool
	Description  string
}

// CorrespondingMapping maps (ReferenceCode, ChartOfAccountID) to the
// counterpart settlement account.
type CorrespondingMapping struct {
	ReferenceCode       string
	ChartOfAccountID    string
	CounterpartNumber   string
	CounterpartCategory Category
}

// CorrespondingMappingException overrides a mapping for a specific source
// account number.
type CorrespondingMappingException struct {
	ReferenceCode       string
	AccountNumber       string
	CounterpartNumber   string
	CounterpartCategory Category
}

// ConditionalAccountReference rewrites a resolved corresponding account
// when the operation tag AttributeName equals AttributeValue.
type ConditionalAccountReference struct {
	ReferenceCode  string
	Sequence       int
	AttributeName  string
	AttributeValue string
	TargetNumber   string
}

// Matches reports whether the condition holds for the operation tags.
func (c *ConditionalAccountReference) Matches(tags map[string]string) bool {
	v, ok := tags[c.AttributeName]
	return ok && v == c.AttributeValue
}
