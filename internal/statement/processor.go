// Package statement runs the full pipeline for one document: populate the
// template, measure coverage, check the balance.
package statement

import (
	"fmt"

	"fjacquet/balance-sheet/internal/coverage"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/populator"
	"fjacquet/balance-sheet/internal/schema"
	"fjacquet/balance-sheet/internal/validation"
)

// Result holds everything learned about one document.
type Result struct {
	Document    string                    `json:"document"`
	CompanyName string                    `json:"company_name"`
	ReportDate  string                    `json:"report_date"`
	Populated   *schema.Node              `json:"populated"`
	Coverage    *coverage.Report          `json:"coverage"`
	Balance     *validation.BalanceReport `json:"balance"`
}

// Processor wires the populator to the coverage analyzer and balance validator.
type Processor struct {
	populator *populator.Populator
	logger    logging.Logger
}

// NewProcessor creates a Processor. A nil logger selects the default logger.
func NewProcessor(p *populator.Populator, logger logging.Logger) *Processor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if p == nil {
		p = populator.NewPopulator(logger, nil)
	}
	return &Processor{populator: p, logger: logger}
}

// Process populates the configured template from text and analyzes the result.
// name only labels the result and the log lines.
func (p *Processor) Process(name, text string) (*Result, error) {
	populated, located, err := p.populator.PopulateLocated(text, p.populator.Template())
	if err != nil {
		return nil, fmt.Errorf("failed to populate %s: %w", name, err)
	}
	return p.analyze(name, populated, located)
}

// Analyze runs coverage and balance checks on an already populated tree. Every
// aggregate present in the tree is taken as stated.
func (p *Processor) Analyze(name string, populated *schema.Node) (*Result, error) {
	return p.analyze(name, populated, nil)
}

func (p *Processor) analyze(name string, populated *schema.Node, located map[string]bool) (*Result, error) {
	cov, err := coverage.Analyze(populated)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze coverage of %s: %w", name, err)
	}
	bal, err := validation.ValidateLocated(populated, located)
	if err != nil {
		return nil, fmt.Errorf("failed to validate balance of %s: %w", name, err)
	}

	res := &Result{
		Document:  name,
		Populated: populated,
		Coverage:  cov,
		Balance:   bal,
	}
	if n, ok := populated.Child(schema.HeaderCompanyName); ok && n.Kind() == schema.Text {
		res.CompanyName = n.Text()
	}
	if n, ok := populated.Child(schema.HeaderReportDate); ok && n.Kind() == schema.Text {
		res.ReportDate = n.Text()
	}

	logger := p.logger.WithFields(
		logging.Field{Key: logging.FieldDocument, Value: name},
		logging.Field{Key: logging.FieldExtractionRate, Value: cov.ExtractionRate},
		logging.Field{Key: logging.FieldBalanced, Value: bal.IsBalanced},
		logging.Field{Key: logging.FieldDifference, Value: bal.BalanceDifference},
	)
	logger.Info("Processed balance sheet")
	for _, w := range bal.Warnings {
		logger.Warn(w)
	}
	return res, nil
}
