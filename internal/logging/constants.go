package logging

// Standardized field names for structured logging.
const (
	FieldFile           = "file_path"
	FieldDocument       = "document"
	FieldFieldPath      = "field_path"
	FieldValue          = "value"
	FieldOperation      = "operation"
	FieldStatus         = "status"
	FieldError          = "error"
	FieldDuration       = "duration_ms"
	FieldCount          = "count"
	FieldExtractionRate = "extraction_rate"
	FieldBalanced       = "is_balanced"
	FieldDifference     = "balance_difference"
	FieldInputFile      = "input_file"
	FieldOutputFile     = "output_file"
)
