// Package report renders batch accuracy reports.
package report

import (
	"fmt"
	"math"
	"path/filepath"

	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/fileutils"
	"fjacquet/balance-sheet/internal/logging"
)

// Supported report formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// fileTimestamp is the layout used in report file names.
const fileTimestamp = "20060102_150405"

// ReportGenerator renders accuracy reports in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// GenerateReport renders report as indented JSON or as the CSV summary.
func (g *ReportGenerator) GenerateReport(report *AccuracyReport, format string) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("cannot generate a nil report")
	}
	switch format {
	case FormatJSON:
		return g.generateJSONReport(report)
	case FormatCSV:
		return g.generateCSVReport(report)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// FileName returns the file name a report gets in the results directory.
func FileName(report *AccuracyReport, format string) string {
	prefix := "accuracy_report_"
	if format == FormatCSV {
		prefix = "accuracy_summary_"
	}
	return prefix + report.Timestamp.Format(fileTimestamp) + "." + format
}

// WriteReport renders report in each format and writes the files to dir. It
// returns the written paths in format order.
func (g *ReportGenerator) WriteReport(report *AccuracyReport, dir string, formats ...string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, err := g.GenerateReport(report, format)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, FileName(report, format))
		if err := fileutils.WriteFile(path, data, 0600); err != nil {
			return paths, err
		}
		g.logger.Info("Saved accuracy report",
			logging.Field{Key: logging.FieldOutputFile, Value: path},
			logging.Field{Key: "format", Value: format})
		paths = append(paths, path)
	}
	return paths, nil
}

func (g *ReportGenerator) generateJSONReport(report *AccuracyReport) ([]byte, error) {
	data, err := common.MarshalIndent(report)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *ReportGenerator) generateCSVReport(report *AccuracyReport) ([]byte, error) {
	data, err := common.MarshalCSV(SummaryRows(report.Results))
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return data, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
