// Package parsererror defines the typed errors surfaced by the extraction pipeline.
//
// Document-data problems (an absent label, an unparseable literal) are never errors;
// they collapse to zero and show up in the coverage report. The types here cover
// contract violations by the caller and failures of the surrounding I/O.
package parsererror

import "fmt"

// SchemaError reports a template that does not have the shape the caller promised,
// e.g. a leaf where a section is required.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed schema: %s", e.Reason)
	}
	return fmt.Sprintf("malformed schema at '%s': %s", e.Path, e.Reason)
}

// ParseError represents an error during parsing of a named field.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation failure of an input file.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// InvalidFormatError represents an input file that does not conform to the format
// the reader expects (a PDF that is not a PDF, a template that is not JSON/YAML).
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents a document from which no usable text could be obtained.
type DataExtractionError struct {
	FilePath string
	Reason   string
	Err      error
}

func (e *DataExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("data extraction failed in file '%s': %s: %v", e.FilePath, e.Reason, e.Err)
	}
	return fmt.Sprintf("data extraction failed in file '%s': %s", e.FilePath, e.Reason)
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
