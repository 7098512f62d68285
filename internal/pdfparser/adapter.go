package pdfparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parser"
	"fjacquet/balance-sheet/internal/schema"
)

// Adapter implements parser.Parser for PDF statements: it extracts the text and
// hands it to a text parser.
type Adapter struct {
	parser.BaseParser
	extractor  TextExtractor
	textParser parser.Parser
}

// NewAdapter creates a new adapter with dependency injection. A nil extractor
// selects RealPDFExtractor.
func NewAdapter(logger logging.Logger, extractor TextExtractor, textParser parser.Parser) *Adapter {
	if extractor == nil {
		extractor = NewRealPDFExtractor()
	}
	return &Adapter{
		BaseParser: parser.NewBaseParser(logger),
		extractor:  extractor,
		textParser: textParser,
	}
}

// Parse copies the PDF from r to a temporary file, extracts its text and parses it.
func (a *Adapter) Parse(r io.Reader) (*schema.Node, error) {
	tempFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary PDF file: %w", err)
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to write to temporary PDF file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return a.ParseFile(tempFile.Name())
}

// ParseFile extracts the text of the PDF at path and parses it.
func (a *Adapter) ParseFile(path string) (*schema.Node, error) {
	text, err := ExtractWithValidation(path, a.extractor, a.GetLogger())
	if err != nil {
		return nil, err
	}
	return a.textParser.Parse(strings.NewReader(text))
}

// ValidateFormat checks if a file is a PDF.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	a.GetLogger().Debug("Validating PDF format", logging.Field{Key: logging.FieldFile, Value: file})
	return ValidateFormat(file)
}

var _ parser.Parser = (*Adapter)(nil)
