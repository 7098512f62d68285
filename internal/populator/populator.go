// Package populator fills a balance-sheet template with the figures and header
// strings found in a statement's text.
package populator

import (
	"fmt"
	"io"

	"fjacquet/balance-sheet/internal/extractor"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parser"
	"fjacquet/balance-sheet/internal/parsererror"
	"fjacquet/balance-sheet/internal/schema"
)

// Populator applies the field locator table to statement text.
type Populator struct {
	parser.BaseParser
	template *schema.Node
}

// NewPopulator creates a Populator whose Parse method fills tmpl. A nil template
// selects schema.DefaultTemplate.
func NewPopulator(logger logging.Logger, tmpl *schema.Node) *Populator {
	if tmpl == nil {
		tmpl = schema.DefaultTemplate()
	}
	return &Populator{
		BaseParser: parser.NewBaseParser(logger),
		template:   tmpl.Clone(),
	}
}

// Template returns a copy of the template used by Parse.
func (p *Populator) Template() *schema.Node {
	return p.template.Clone()
}

// Parse implements parser.Parser using the populator's own template.
func (p *Populator) Parse(r io.Reader) (*schema.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement text: %w", err)
	}
	return p.Populate(string(data), p.template)
}

// Populate returns a copy of tmpl with every located field assigned. Fields that
// are not found are set to 0; header strings that are not found keep the template
// value. tmpl is never modified.
func (p *Populator) Populate(text string, tmpl *schema.Node) (*schema.Node, error) {
	out, _, err := p.PopulateLocated(text, tmpl)
	return out, err
}

// PopulateLocated is Populate that also returns the paths whose locator matched
// the text.
func (p *Populator) PopulateLocated(text string, tmpl *schema.Node) (*schema.Node, map[string]bool, error) {
	if !tmpl.IsSection() {
		return nil, nil, &parsererror.SchemaError{Reason: "template root must be a section"}
	}
	out := tmpl.Clone()
	logger := p.GetLogger()

	if name, ok := extractor.ExtractText(text, companyLocator); ok {
		if err := out.SetText(schema.HeaderCompanyName, name); err != nil {
			return nil, nil, err
		}
	}
	if date, ok := extractor.ExtractText(text, dateLocator); ok {
		if err := out.SetText(schema.HeaderReportDate, date); err != nil {
			return nil, nil, err
		}
	}

	located := make(map[string]bool, len(fields))
	for _, f := range fields {
		v, ok := extractor.Locate(text, f.Locator)
		if err := out.SetNumber(f.Path, v); err != nil {
			return nil, nil, fmt.Errorf("failed to assign field: %w", err)
		}
		if ok {
			located[f.Path] = true
		} else {
			logger.Debug("Field not found in text", logging.Field{Key: logging.FieldFieldPath, Value: f.Path})
		}
	}

	logger.Debug("Populated balance sheet",
		logging.Field{Key: logging.FieldCount, Value: len(located)},
		logging.Field{Key: "fields_total", Value: len(fields)})
	return out, located, nil
}

var _ parser.Parser = (*Populator)(nil)
