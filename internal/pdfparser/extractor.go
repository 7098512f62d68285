package pdfparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor extracts the text of a document. Production code reads PDFs;
// tests inject MockPDFExtractor.
type TextExtractor interface {
	// ExtractText returns the page-concatenated text of the file at path.
	ExtractText(path string) (string, error)
}

// RealPDFExtractor reads PDFs with github.com/ledongthuc/pdf.
type RealPDFExtractor struct{}

// NewRealPDFExtractor creates a new RealPDFExtractor instance.
func NewRealPDFExtractor() *RealPDFExtractor {
	return &RealPDFExtractor{}
}

// ExtractText renders every non-blank page row by row and frames the result with
// the document and page markers.
func (e *RealPDFExtractor) ExtractText(pdfPath string) (string, error) {
	var pages []string
	err := eachPage(pdfPath, func(_ int, rows pdf.Rows) {
		pages = append(pages, renderRows(rows))
	})
	if err != nil {
		return "", err
	}
	return FormatDocument(filepath.Base(pdfPath), pages), nil
}

// ExtractTables returns the column-aligned regions of every page.
func (e *RealPDFExtractor) ExtractTables(pdfPath string) ([]Table, error) {
	var tables []Table
	err := eachPage(pdfPath, func(n int, rows pdf.Rows) {
		tables = append(tables, findTables(n, rows)...)
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// eachPage calls fn with the rows of every page, numbered from 1. Null pages
// are passed as no rows.
func eachPage(pdfPath string, fn func(n int, rows pdf.Rows)) error {
	f, r, err := pdf.Open(pdfPath) // #nosec G304 -- CLI tool reads user-provided paths
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			fn(i, nil)
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return fmt.Errorf("failed to read page %d: %w", i, err)
		}
		fn(i, rows)
	}
	return nil
}

// wordGap is the horizontal distance, in font-size units, above which two
// glyph runs on a row are separated by a space.
const wordGap = 0.15

func renderRows(rows pdf.Rows) string {
	var b strings.Builder
	for _, row := range rows {
		var prev *pdf.Text
		for i := range row.Content {
			word := &row.Content[i]
			if prev != nil && needsSpace(prev, word) {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
			prev = word
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// gapOf is the blank space between two runs, in font-size units of prev.
func gapOf(prev, next *pdf.Text) float64 {
	size := prev.FontSize
	if size <= 0 {
		size = 1
	}
	return (next.X - (prev.X + prev.W)) / size
}

func needsSpace(prev, next *pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(next.S, " ") {
		return false
	}
	return gapOf(prev, next) > wordGap
}

// FormatDocument joins page texts into the text blob consumed by the populator.
// Blank pages are left out.
func FormatDocument(fileName string, pages []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== TEXT CONTENT FROM %s ===\n\n", fileName)
	first := true
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "=== PAGE %d TEXT ===\n%s\n", i+1, text)
	}
	return b.String()
}

// MockPDFExtractor returns predefined text, tables or error.
type MockPDFExtractor struct {
	MockText   string
	MockTables []Table
	MockErr    error
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(pdfPath string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}

// ExtractTables returns the predefined mock tables or error.
func (e *MockPDFExtractor) ExtractTables(pdfPath string) ([]Table, error) {
	if e.MockErr != nil {
		return nil, e.MockErr
	}
	return e.MockTables, nil
}
