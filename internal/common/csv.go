// Package common provides the shared file writers used by the commands and the
// report generator.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"fjacquet/balance-sheet/internal/logging"

	"github.com/gocarina/gocsv"
)

// Delimiter is the field separator used when writing CSV files.
var Delimiter rune = ','

// SetDelimiter changes the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

func loggerOrDefault(logger logging.Logger) logging.Logger {
	if logger == nil {
		return logging.GetLogger()
	}
	return logger
}

// MarshalCSV renders rows with a header line taken from the csv struct tags,
// separated by Delimiter.
func MarshalCSV[TCSVRow any](rows []TCSVRow) ([]byte, error) {
	if rows == nil {
		return nil, fmt.Errorf("cannot write nil rows to CSV")
	}
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}
