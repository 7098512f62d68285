// Package pdfparser turns statement PDFs into the plain text blob the populator
// reads.
package pdfparser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parsererror"
)

var pdfMagic = []byte("%PDF-")

// ValidateFormat reports whether the file starts with the PDF header. A missing
// file is an error; a file of another type is not.
func ValidateFormat(pdfFile string) (bool, error) {
	f, err := os.Open(pdfFile) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return false, fmt.Errorf("error opening file: %w", err)
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false, nil
	}
	return bytes.Equal(head, pdfMagic), nil
}

// ExtractWithValidation checks the PDF header and extracts the text. Extraction
// failures surface as InvalidFormatError.
func ExtractWithValidation(pdfFile string, extractor TextExtractor, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = NewRealPDFExtractor()
	}

	valid, err := ValidateFormat(pdfFile)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", &parsererror.InvalidFormatError{
			FilePath:       pdfFile,
			ExpectedFormat: "PDF",
			Msg:            "file does not start with a PDF header",
		}
	}

	logger.Debug("Extracting PDF text", logging.Field{Key: logging.FieldFile, Value: pdfFile})
	text, err := extractor.ExtractText(pdfFile)
	if err != nil {
		return "", &parsererror.InvalidFormatError{
			FilePath:       pdfFile,
			ExpectedFormat: "PDF",
			Msg:            fmt.Sprintf("text extraction failed: %v", err),
		}
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("PDF contains no extractable text", logging.Field{Key: logging.FieldFile, Value: pdfFile})
	}
	return text, nil
}

// ConvertToText extracts the text of pdfFile and writes it to outputDir as
// "<stem>_text.txt", plus "<stem>_tables.txt" when the document has tables. It
// returns the written text path.
func ConvertToText(pdfFile, outputDir string, extractor TextExtractor, logger logging.Logger) (string, error) {
	base := filepath.Base(pdfFile)
	return ConvertToTextAs(pdfFile, outputDir, strings.TrimSuffix(base, filepath.Ext(base)), extractor, logger)
}

// ConvertToTextAs is ConvertToText with an explicit output stem.
func ConvertToTextAs(pdfFile, outputDir, stem string, extractor TextExtractor, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if extractor == nil {
		extractor = NewRealPDFExtractor()
	}
	text, err := ExtractWithValidation(pdfFile, extractor, logger)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	out := filepath.Join(outputDir, stem+"_text.txt")
	if err := os.WriteFile(out, []byte(text), 0600); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}
	logger.Info("Saved PDF text",
		logging.Field{Key: logging.FieldInputFile, Value: pdfFile},
		logging.Field{Key: logging.FieldOutputFile, Value: out})

	if _, err := WriteTables(pdfFile, filepath.Join(outputDir, stem+"_tables.txt"), extractor, logger); err != nil {
		return "", err
	}
	return out, nil
}
