// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/currencyutils"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parser"
	"fjacquet/balance-sheet/internal/schema"
	"fjacquet/balance-sheet/internal/statement"
	"fjacquet/balance-sheet/internal/validation"
)

// FormatValidator is implemented by parsers that can check an input file
// before parsing it.
type FormatValidator interface {
	ValidateFormat(file string) (bool, error)
}

// JSONWriter is implemented by parsers that write their own output.
type JSONWriter interface {
	WriteToJSON(root *schema.Node, path string) error
}

// ProcessFile parses inputFile with p and writes the populated tree as JSON to
// outputFile.
func ProcessFile(p parser.Parser, inputFile, outputFile string, validate bool, log logging.Logger) (*schema.Node, error) {
	if c, ok := p.(parser.LoggerConfigurable); ok {
		c.SetLogger(log)
	}

	if err := validation.IsValidInputFile(inputFile); err != nil {
		return nil, err
	}

	if v, ok := p.(FormatValidator); ok && validate {
		log.Info("Validating format...")
		valid, err := v.ValidateFormat(inputFile)
		if err != nil {
			return nil, fmt.Errorf("error validating file: %w", err)
		}
		if !valid {
			return nil, fmt.Errorf("the file is not in a valid format: %s", inputFile)
		}
		log.Info("Validation successful.")
	}

	f, err := os.Open(inputFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	populated, err := p.Parse(f)
	if err != nil {
		return nil, err
	}

	if w, ok := p.(JSONWriter); ok {
		err = w.WriteToJSON(populated, outputFile)
	} else {
		err = common.WriteJSONFile(populated, outputFile, log)
	}
	if err != nil {
		return nil, err
	}
	return populated, nil
}

// PrintPopulationSummary writes the headers and the four aggregates of a
// populated tree.
func PrintPopulationSummary(w io.Writer, populated *schema.Node) {
	text := func(key string) string {
		if n, ok := populated.Child(key); ok && n.Kind() == schema.Text {
			return n.Text()
		}
		return ""
	}
	amount := func(path string) string {
		if n, ok := populated.Lookup(path); ok && n.Kind() == schema.Numeric {
			return currencyutils.FormatAmount(n.Number())
		}
		return currencyutils.FormatAmount(0)
	}

	_, _ = fmt.Fprintln(w, "=== Population Summary ===")
	_, _ = fmt.Fprintf(w, "Company: %s\n", text(schema.HeaderCompanyName))
	_, _ = fmt.Fprintf(w, "Report Date: %s\n", text(schema.HeaderReportDate))
	_, _ = fmt.Fprintf(w, "Total Assets: %s\n", amount(schema.PathTotalAssets))
	_, _ = fmt.Fprintf(w, "Total Liabilities: %s\n", amount(schema.PathTotalLiabilities))
	_, _ = fmt.Fprintf(w, "Total Equity: %s\n", amount(schema.PathTotalEquity))
	_, _ = fmt.Fprintf(w, "Total Liabilities and Equity: %s\n", amount(schema.PathTotalLiabilitiesAndEquity))
}

// PrintValidation writes the balance report, the coverage counts and the list
// of fields that were not matched.
func PrintValidation(w io.Writer, res *statement.Result) error {
	balance, err := json.MarshalIndent(res.Balance, "", "  ")
	if err != nil {
		return err
	}
	stats, err := json.MarshalIndent(map[string]any{
		"extracted_fields": res.Coverage.ExtractedFields,
		"total_fields":     res.Coverage.TotalFields,
		"extraction_rate":  res.Coverage.ExtractionRate,
	}, "", "  ")
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Validation Results:\n%s\n", balance)
	_, _ = fmt.Fprintf(w, "Field Extraction Stats:\n%s\n", stats)
	if len(res.Coverage.MissingFields) > 0 {
		_, _ = fmt.Fprintln(w, "\nFields not matched (missing or zero):")
		for _, field := range res.Coverage.MissingFields {
			_, _ = fmt.Fprintf(w, "  - %s\n", field)
		}
	}
	return nil
}
