package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldSourceFile = "source_file"
	FieldBankFormat = "bank_format"
	FieldCategory   = "category"
	FieldStrategy   = "strategy"
	FieldKeyword    = "keyword"
	FieldPattern    = "pattern"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldMonthKey   = "month_key"
	FieldAmount     = "amount"
	FieldDate       = "date"
	FieldConfidence = "confidence"
)
