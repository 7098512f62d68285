// Package coverage measures how many template figures a populated balance sheet
// actually carries.
package coverage

import (
	"fjacquet/balance-sheet/internal/parsererror"
	"fjacquet/balance-sheet/internal/schema"
)

// Report summarizes extraction coverage for one populated balance sheet.
// MissingFields lists the dotted paths of zero-valued figures in template order.
type Report struct {
	ExtractedFields int      `json:"extracted_fields"`
	TotalFields     int      `json:"total_fields"`
	ExtractionRate  float64  `json:"extraction_rate"`
	MissingFields   []string `json:"missing_fields"`
}

// Analyze counts numeric leaves below root. A non-zero leaf counts as extracted.
// Header fields and text leaves are not extraction targets and are skipped.
func Analyze(root *schema.Node) (*Report, error) {
	if !root.IsSection() {
		return nil, &parsererror.SchemaError{Reason: "populated balance sheet must be a section"}
	}

	report := &Report{MissingFields: []string{}}
	err := root.Walk(func(path, key string, n *schema.Node) error {
		if schema.IsHeaderKey(key) {
			return schema.SkipSection
		}
		if n.Kind() != schema.Numeric {
			return nil
		}
		report.TotalFields++
		if n.Number() != 0 {
			report.ExtractedFields++
		} else {
			report.MissingFields = append(report.MissingFields, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if report.TotalFields > 0 {
		report.ExtractionRate = float64(report.ExtractedFields) / float64(report.TotalFields) * 100
	}
	return report, nil
}
