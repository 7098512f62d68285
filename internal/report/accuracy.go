package report

import (
	"time"

	"fjacquet/balance-sheet/internal/batch"

	"github.com/google/uuid"
)

// AccuracyReport is the persisted outcome of a batch run.
type AccuracyReport struct {
	ReportID  string                 `json:"report_id"`
	Timestamp time.Time              `json:"test_timestamp"`
	Summary   batch.Summary          `json:"summary"`
	Results   []batch.DocumentResult `json:"detailed_results"`
}

// NewAccuracyReport summarizes results under a fresh report ID.
func NewAccuracyReport(results []batch.DocumentResult, at time.Time) *AccuracyReport {
	if results == nil {
		results = []batch.DocumentResult{}
	}
	return &AccuracyReport{
		ReportID:  uuid.New().String(),
		Timestamp: at,
		Summary:   batch.Summarize(results),
		Results:   results,
	}
}

// SummaryRow is one line of the CSV summary.
type SummaryRow struct {
	PDFName           string  `csv:"PDF_Name"`
	Company           string  `csv:"Company"`
	ReportDate        string  `csv:"Report_Date"`
	FieldsExtracted   int     `csv:"Fields_Extracted"`
	TotalFields       int     `csv:"Total_Fields"`
	ExtractionRate    float64 `csv:"Extraction_Rate_%"`
	IsBalanced        bool    `csv:"Is_Balanced"`
	TotalAssets       float64 `csv:"Total_Assets"`
	TotalLiabilities  float64 `csv:"Total_Liabilities"`
	TotalEquity       float64 `csv:"Total_Equity"`
	BalanceDifference float64 `csv:"Balance_Difference"`
	Success           string  `csv:"Success"`
	Error             string  `csv:"Error"`
}

// SummaryRows flattens results for the CSV summary. Failed documents show ERROR
// in the text columns and zeros elsewhere.
func SummaryRows(results []batch.DocumentResult) []SummaryRow {
	rows := make([]SummaryRow, 0, len(results))
	for _, r := range results {
		if !r.Success || r.FieldExtraction == nil || r.Validation == nil {
			msg := r.Error
			if msg == "" {
				msg = "Unknown error"
			}
			rows = append(rows, SummaryRow{
				PDFName:    r.PDFName,
				Company:    "ERROR",
				ReportDate: "ERROR",
				Success:    "No",
				Error:      msg,
			})
			continue
		}
		rows = append(rows, SummaryRow{
			PDFName:           r.PDFName,
			Company:           r.CompanyName,
			ReportDate:        r.ReportDate,
			FieldsExtracted:   r.FieldExtraction.ExtractedFields,
			TotalFields:       r.FieldExtraction.TotalFields,
			ExtractionRate:    round(r.FieldExtraction.ExtractionRate, 1),
			IsBalanced:        r.Validation.IsBalanced,
			TotalAssets:       r.Validation.TotalAssets,
			TotalLiabilities:  r.Validation.TotalLiabilities,
			TotalEquity:       r.Validation.TotalEquity,
			BalanceDifference: round(r.Validation.BalanceDifference, 2),
			Success:           "Yes",
		})
	}
	return rows
}
