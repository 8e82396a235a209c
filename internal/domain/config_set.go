package domain

// ConfigSet is the raw master data a configuration snapshot is built from.
type ConfigSet struct {
	Accounts        []ChartOfAccount
	Events          []OperationEvent
	Attributes      []OperationEventAttribute
	Rules           []AccountingRule
	ReferenceCodes  []DocumentReferenceCode
	Mappings        []CorrespondingMapping
	Exceptions      []CorrespondingMappingException
	Conditionals    []ConditionalAccountReference
	ShareConfigs    []ShareConfig
	OpeningBalances []OpeningBalance
}
