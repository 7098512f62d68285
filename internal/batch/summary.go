package batch

// Summary aggregates a batch run. Rates are percentages; each is 0 when its
// denominator is 0.
type Summary struct {
	TotalTests        int     `json:"total_tests"`
	SuccessfulTests   int     `json:"successful_tests"`
	BalancedSheets    int     `json:"balanced_sheets"`
	SuccessRate       float64 `json:"success_rate"`
	AvgExtractionRate float64 `json:"avg_extraction_rate"`
	BalanceAccuracy   float64 `json:"balance_accuracy"`
}

// Summarize computes success rate over all documents, and the average extraction
// rate and balance accuracy over the successful ones.
func Summarize(results []DocumentResult) Summary {
	s := Summary{TotalTests: len(results)}
	var rateSum float64
	for _, r := range results {
		if !r.Success {
			continue
		}
		s.SuccessfulTests++
		if r.FieldExtraction != nil {
			rateSum += r.FieldExtraction.ExtractionRate
		}
		if r.Validation != nil && r.Validation.IsBalanced {
			s.BalancedSheets++
		}
	}

	if s.TotalTests > 0 {
		s.SuccessRate = float64(s.SuccessfulTests) / float64(s.TotalTests) * 100
	}
	if s.SuccessfulTests > 0 {
		s.AvgExtractionRate = rateSum / float64(s.SuccessfulTests)
		s.BalanceAccuracy = float64(s.BalancedSheets) / float64(s.SuccessfulTests) * 100
	}
	return s
}
