// Package batch runs the extraction pipeline over a folder of statement PDFs and
// measures how accurate the extraction was.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/coverage"
	"fjacquet/balance-sheet/internal/fileutils"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parsererror"
	"fjacquet/balance-sheet/internal/pdfparser"
	"fjacquet/balance-sheet/internal/statement"
	"fjacquet/balance-sheet/internal/validation"

	"golang.org/x/sync/errgroup"
)

// DocumentResult is the outcome of one PDF. A failed document carries only its
// name, the error and the timestamp.
type DocumentResult struct {
	PDFName         string                    `json:"pdf_name"`
	SourcePath      string                    `json:"source_path"`
	TextFile        string                    `json:"text_file,omitempty"`
	TablesFile      string                    `json:"tables_file,omitempty"`
	PopulatedFile   string                    `json:"populated_file,omitempty"`
	CompanyName     string                    `json:"company_name,omitempty"`
	ReportDate      string                    `json:"report_date,omitempty"`
	Validation      *validation.BalanceReport `json:"validation,omitempty"`
	FieldExtraction *coverage.Report          `json:"field_extraction,omitempty"`
	Success         bool                      `json:"success"`
	Error           string                    `json:"error,omitempty"`
	Timestamp       time.Time                 `json:"timestamp"`
}

// Runner processes documents concurrently. Each document is independent; a
// failure is recorded in its result and never stops the others.
type Runner struct {
	extractor pdfparser.TextExtractor
	processor *statement.Processor
	dataDir   string
	workers   int
	logger    logging.Logger
	now       func() time.Time
}

// NewRunner creates a Runner that writes intermediate text and populated JSON
// files to dataDir. workers below 1 is treated as 1.
func NewRunner(extractor pdfparser.TextExtractor, processor *statement.Processor, dataDir string, workers int, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = pdfparser.NewRealPDFExtractor()
	}
	if processor == nil {
		processor = statement.NewProcessor(nil, logger)
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		extractor: extractor,
		processor: processor,
		dataDir:   dataDir,
		workers:   workers,
		logger:    logger,
		now:       time.Now,
	}
}

// DiscoverPDFs lists the PDFs below dir, recursively and in a stable order.
func DiscoverPDFs(dir string) ([]string, error) {
	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}
	return files, nil
}

// Run processes every path and returns one result per path, in input order.
// Output files are named after pdfparser.UniqueStems, so PDFs sharing a file
// name in different folders never overwrite each other. Cancelling ctx marks the
// documents not yet started as failed.
func (r *Runner) Run(ctx context.Context, pdfPaths []string) []DocumentResult {
	results := make([]DocumentResult, len(pdfPaths))
	stems := pdfparser.UniqueStems(pdfPaths)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range pdfPaths {
		g.Go(func() error {
			results[i] = r.processOne(gctx, path, stems[i])
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Runner) processOne(ctx context.Context, pdfPath, stem string) DocumentResult {
	name := filepath.Base(pdfPath)
	logger := r.logger.WithField(logging.FieldDocument, name)
	start := r.now()

	res, err := r.pipeline(ctx, pdfPath, name, stem)
	if err != nil {
		logger.WithError(err).Error("Document failed")
		return DocumentResult{
			PDFName:    name,
			SourcePath: pdfPath,
			Error:      err.Error(),
			Timestamp:  start,
		}
	}

	res.Timestamp = start
	logger.Info("Document processed",
		logging.Field{Key: logging.FieldExtractionRate, Value: res.FieldExtraction.ExtractionRate},
		logging.Field{Key: logging.FieldBalanced, Value: res.Validation.IsBalanced},
		logging.Field{Key: logging.FieldDuration, Value: r.now().Sub(start).Milliseconds()})
	return res
}

func (r *Runner) pipeline(ctx context.Context, pdfPath, name, stem string) (DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return DocumentResult{}, err
	}

	text, err := pdfparser.ExtractWithValidation(pdfPath, r.extractor, r.logger)
	if err != nil {
		return DocumentResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return DocumentResult{}, &parsererror.DataExtractionError{FilePath: pdfPath, Reason: "no text could be extracted"}
	}

	textFile := filepath.Join(r.dataDir, stem+"_text.txt")
	if err := fileutils.WriteFile(textFile, []byte(text), 0600); err != nil {
		return DocumentResult{}, err
	}
	tablesFile, err := pdfparser.WriteTables(pdfPath, filepath.Join(r.dataDir, stem+"_tables.txt"), r.extractor, r.logger)
	if err != nil {
		return DocumentResult{}, err
	}

	result, err := r.processor.Process(name, text)
	if err != nil {
		return DocumentResult{}, err
	}

	populatedFile := filepath.Join(r.dataDir, stem+"_populated.json")
	if err := common.WriteJSONFile(result.Populated, populatedFile, r.logger); err != nil {
		return DocumentResult{}, err
	}

	return DocumentResult{
		PDFName:         name,
		SourcePath:      pdfPath,
		TextFile:        textFile,
		TablesFile:      tablesFile,
		PopulatedFile:   populatedFile,
		CompanyName:     result.CompanyName,
		ReportDate:      result.ReportDate,
		Validation:      result.Balance,
		FieldExtraction: result.Coverage,
		Success:         true,
	}, nil
}
