// Package batch handles the batch accuracy command
package batch

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/internal/batch"
	"fjacquet/balance-sheet/internal/container"
	"fjacquet/balance-sheet/internal/currencyutils"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/report"
	"fjacquet/balance-sheet/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Run the extraction accuracy test over a folder of PDFs",
	Long: `Run every PDF below the input directory through text extraction,
population and validation, then write an accuracy report.

Intermediate text and populated JSON files go to the data directory.
The reports are written to the output directory (default: test_results).

Example:
  balance-sheet batch -i downloads/ -o test_results/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if _, err := run(cmd.Context(), appContainer, root.SharedFlags.Input, root.SharedFlags.Output, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error during batch run: %v", err)
	}
}

// run processes inputDir and returns the paths of the written reports.
func run(ctx context.Context, c *container.Container, inputDir, outputDir string, out io.Writer) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.GetLogger()
	cfg := c.GetConfig()
	if inputDir == "" {
		return nil, fmt.Errorf("an input directory must be specified with -i")
	}
	if outputDir == "" {
		outputDir = cfg.Dirs.Results
	}
	if err := validation.IsValidDirectory(inputDir); err != nil {
		return nil, err
	}

	files, err := batch.DiscoverPDFs(inputDir)
	if err != nil {
		return nil, err
	}
	logger.Info("Found files for processing", logging.Field{Key: logging.FieldCount, Value: len(files)})

	results := c.GetRunner().Run(ctx, files)
	accuracy := report.NewAccuracyReport(results, time.Now())

	written, err := c.GetReportGenerator().WriteReport(accuracy, outputDir, cfg.Report.Formats...)
	if err != nil {
		return nil, err
	}

	PrintSummary(out, accuracy)
	for _, path := range written {
		_, _ = fmt.Fprintf(out, "Report saved to: %s\n", path)
	}
	return written, nil
}

// PrintSummary writes the console summary of an accuracy run.
func PrintSummary(out io.Writer, r *report.AccuracyReport) {
	s := r.Summary
	_, _ = fmt.Fprintln(out, "TEST SUMMARY REPORT")
	_, _ = fmt.Fprintf(out, "Total PDFs tested: %d\n", s.TotalTests)
	_, _ = fmt.Fprintf(out, "Successful extractions: %d\n", s.SuccessfulTests)
	_, _ = fmt.Fprintf(out, "Success rate: %s\n", currencyutils.FormatPercent(s.SuccessRate))

	if s.SuccessfulTests > 0 {
		_, _ = fmt.Fprintln(out, "\n--- EXTRACTION ACCURACY ---")
		_, _ = fmt.Fprintf(out, "Average field extraction rate: %s\n", currencyutils.FormatPercent(s.AvgExtractionRate))
		_, _ = fmt.Fprintf(out, "Balance sheet accuracy: %s (%d/%d balanced)\n",
			currencyutils.FormatPercent(s.BalanceAccuracy), s.BalancedSheets, s.SuccessfulTests)

		_, _ = fmt.Fprintln(out, "\n--- INDIVIDUAL RESULTS ---")
		for _, res := range r.Results {
			if !res.Success {
				continue
			}
			status := "UNBALANCED"
			if res.Validation.IsBalanced {
				status = "BALANCED"
			}
			_, _ = fmt.Fprintf(out, "%-30s | %7s | %-10s | diff %s\n", res.PDFName,
				currencyutils.FormatPercent(res.FieldExtraction.ExtractionRate), status,
				currencyutils.FormatAmount(res.Validation.BalanceDifference))
		}
	}

	if s.SuccessfulTests < s.TotalTests {
		_, _ = fmt.Fprintln(out, "\n--- ERRORS ---")
		for _, res := range r.Results {
			if !res.Success {
				_, _ = fmt.Fprintf(out, "%-30s | ERROR: %s\n", res.PDFName, res.Error)
			}
		}
	}
}
