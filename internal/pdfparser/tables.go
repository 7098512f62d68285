package pdfparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/balance-sheet/internal/fileutils"
	"fjacquet/balance-sheet/internal/logging"

	"github.com/ledongthuc/pdf"
)

// Table is a column-aligned region of a page. Each row holds its cells left to
// right.
type Table struct {
	Page int
	Rows [][]string
}

// TableExtractor is implemented by extractors that can also locate tables.
type TableExtractor interface {
	ExtractTables(path string) ([]Table, error)
}

// columnGap is the horizontal distance, in font-size units, above which two runs
// on a row belong to different cells.
const columnGap = 1.5

// minTableRows is the smallest run of multi-cell rows reported as a table.
const minTableRows = 2

// findTables groups consecutive rows of two or more cells into tables.
func findTables(page int, rows pdf.Rows) []Table {
	var tables []Table
	var current [][]string
	flush := func() {
		if len(current) >= minTableRows {
			tables = append(tables, Table{Page: page, Rows: current})
		}
		current = nil
	}
	for _, row := range rows {
		cells := splitCells(row.Content)
		if len(cells) < 2 {
			flush()
			continue
		}
		current = append(current, cells)
	}
	flush()
	return tables
}

func splitCells(runs pdf.TextHorizontal) []string {
	var cells []string
	var b strings.Builder
	var prev *pdf.Text
	for i := range runs {
		run := &runs[i]
		if prev != nil {
			if gapOf(prev, run) > columnGap {
				cells = appendCell(cells, b.String())
				b.Reset()
			} else if needsSpace(prev, run) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(run.S)
		prev = run
	}
	return appendCell(cells, b.String())
}

func appendCell(cells []string, cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return cells
	}
	return append(cells, cell)
}

// FormatTables renders tables as tab-separated blocks numbered per page. It
// returns "" when there are none.
func FormatTables(fileName string, tables []Table) string {
	if len(tables) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== TABLE CONTENT FROM %s ===\n\n", fileName)
	perPage := make(map[int]int)
	for i, t := range tables {
		if i > 0 {
			b.WriteByte('\n')
		}
		perPage[t.Page]++
		fmt.Fprintf(&b, "=== PAGE %d TABLE %d ===\n", t.Page, perPage[t.Page])
		for _, row := range t.Rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// WriteTables writes the tables of pdfFile to outFile. It writes nothing and
// returns "" when the extractor cannot find tables or the document has none.
// Table extraction is best effort: a failure is logged, never returned.
func WriteTables(pdfFile, outFile string, extractor TextExtractor, logger logging.Logger) (string, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	te, ok := extractor.(TableExtractor)
	if !ok {
		return "", nil
	}
	tables, err := te.ExtractTables(pdfFile)
	if err != nil {
		logger.WithError(err).Warn("Failed to extract tables", logging.Field{Key: logging.FieldFile, Value: pdfFile})
		return "", nil
	}
	content := FormatTables(filepath.Base(pdfFile), tables)
	if content == "" {
		return "", nil
	}
	if err := fileutils.WriteFile(outFile, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write tables file: %w", err)
	}
	logger.Info("Saved PDF tables",
		logging.Field{Key: logging.FieldInputFile, Value: pdfFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outFile},
		logging.Field{Key: logging.FieldCount, Value: len(tables)})
	return outFile, nil
}

// UniqueStems returns one output stem per PDF. Stems are the file names without
// extension; a name shared by several PDFs is prefixed with its directories
// relative to the common parent, and any remaining clash gets a numeric suffix.
func UniqueStems(pdfFiles []string) []string {
	stems := make([]string, len(pdfFiles))
	seen := make(map[string]int, len(pdfFiles))
	for i, f := range pdfFiles {
		stems[i] = stemOf(filepath.Base(f))
		seen[strings.ToLower(stems[i])]++
	}

	root := commonDir(pdfFiles)
	for i, f := range pdfFiles {
		if seen[strings.ToLower(stems[i])] < 2 {
			continue
		}
		if rel, err := filepath.Rel(root, f); err == nil {
			stems[i] = strings.ReplaceAll(stemOf(rel), string(filepath.Separator), "_")
		}
	}

	taken := make(map[string]bool, len(stems))
	for i, s := range stems {
		name := s
		for n := 2; taken[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d", s, n)
		}
		taken[strings.ToLower(name)] = true
		stems[i] = name
	}
	return stems
}

// stemOf strips the extension and keeps any directory part.
func stemOf(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func commonDir(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	dir := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		for !within(dir, p) {
			parent := filepath.Dir(dir)
			if parent == dir {
				return dir
			}
			dir = parent
		}
	}
	return dir
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
