package batch_test

import (
	"testing"

	"fjacquet/balance-sheet/internal/batch"
	"fjacquet/balance-sheet/internal/coverage"
	"fjacquet/balance-sheet/internal/validation"

	"github.com/stretchr/testify/assert"
)

func success(rate float64, balanced bool) batch.DocumentResult {
	return batch.DocumentResult{
		Success:         true,
		FieldExtraction: &coverage.Report{ExtractionRate: rate},
		Validation:      &validation.BalanceReport{IsBalanced: balanced},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		results  []batch.DocumentResult
		expected batch.Summary
	}{
		{
			name:     "empty batch",
			results:  nil,
			expected: batch.Summary{},
		},
		{
			name:     "only failures",
			results:  []batch.DocumentResult{{Error: "boom"}, {Error: "boom"}},
			expected: batch.Summary{TotalTests: 2},
		},
		{
			name: "mixed",
			results: []batch.DocumentResult{
				success(50, true),
				success(100, false),
				{Error: "boom"},
				success(30, true),
			},
			expected: batch.Summary{
				TotalTests:        4,
				SuccessfulTests:   3,
				BalancedSheets:    2,
				SuccessRate:       75,
				AvgExtractionRate: 60,
				BalanceAccuracy:   200.0 / 3.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := batch.Summarize(tt.results)
			assert.Equal(t, tt.expected.TotalTests, got.TotalTests)
			assert.Equal(t, tt.expected.SuccessfulTests, got.SuccessfulTests)
			assert.Equal(t, tt.expected.BalancedSheets, got.BalancedSheets)
			assert.InDelta(t, tt.expected.SuccessRate, got.SuccessRate, 1e-9)
			assert.InDelta(t, tt.expected.AvgExtractionRate, got.AvgExtractionRate, 1e-9)
			assert.InDelta(t, tt.expected.BalanceAccuracy, got.BalanceAccuracy, 1e-9)
		})
	}
}
