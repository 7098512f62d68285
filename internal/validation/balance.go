// Package validation checks populated balance sheets against the accounting
// equation and validates command-line inputs.
package validation

import (
	"fmt"
	"math"
	"strings"

	"fjacquet/balance-sheet/internal/parsererror"
	"fjacquet/balance-sheet/internal/schema"
)

// BalanceTolerance is the largest absolute gap, exclusive, still treated as balanced.
// It absorbs rounding in the source figures.
const BalanceTolerance = 1.0

// BalanceReport is the outcome of checking assets = liabilities + equity.
type BalanceReport struct {
	TotalAssets       float64 `json:"total_assets"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	TotalEquity       float64 `json:"total_equity"`
	CalculatedTotal   float64 `json:"calculated_total"`
	StatedTotal       float64 `json:"stated_total"`
	BalanceDifference float64 `json:"balance_difference"`
	StatedDifference  float64 `json:"stated_difference"`
	IsBalanced        bool    `json:"is_balanced"`
	MatchesStated     bool    `json:"matches_stated"`

	// StatedTotalPresent is false when the statement has no combined
	// liabilities-and-equity figure at all; StatedTotal is then 0.
	StatedTotalPresent bool     `json:"stated_total_present"`
	Warnings           []string `json:"warnings,omitempty"`
}

// ValidateBalance reads the four aggregates of root and compares them. Missing
// aggregates count as 0. A section or text found where an aggregate is expected
// is a SchemaError.
func ValidateBalance(root *schema.Node) (*BalanceReport, error) {
	return ValidateLocated(root, nil)
}

// ValidateLocated is ValidateBalance for a freshly populated tree. located holds
// the paths the extractor actually matched; an aggregate outside it is reported
// absent even though the populator stored 0 for it. A nil set trusts the tree.
func ValidateLocated(root *schema.Node, located map[string]bool) (*BalanceReport, error) {
	if !root.IsSection() {
		return nil, &parsererror.SchemaError{Reason: "populated balance sheet must be a section"}
	}

	r := &BalanceReport{}
	var err error
	var present bool
	var missing []string

	if r.TotalAssets, present, err = aggregate(root, located, schema.PathTotalAssets); err != nil {
		return nil, err
	} else if !present {
		missing = append(missing, schema.PathTotalAssets)
	}
	if r.TotalLiabilities, present, err = aggregate(root, located, schema.PathTotalLiabilities); err != nil {
		return nil, err
	} else if !present {
		missing = append(missing, schema.PathTotalLiabilities)
	}
	if r.TotalEquity, present, err = aggregate(root, located, schema.PathTotalEquity); err != nil {
		return nil, err
	} else if !present {
		missing = append(missing, schema.PathTotalEquity)
	}
	if r.StatedTotal, r.StatedTotalPresent, err = aggregate(root, located, schema.PathTotalLiabilitiesAndEquity); err != nil {
		return nil, err
	} else if !r.StatedTotalPresent {
		missing = append(missing, schema.PathTotalLiabilitiesAndEquity)
	}

	r.CalculatedTotal = r.TotalLiabilities + r.TotalEquity
	r.BalanceDifference = math.Abs(r.TotalAssets - r.CalculatedTotal)
	r.StatedDifference = math.Abs(r.TotalAssets - r.StatedTotal)
	r.IsBalanced = r.BalanceDifference < BalanceTolerance
	r.MatchesStated = r.StatedDifference < BalanceTolerance

	if len(missing) > 0 {
		r.Warnings = append(r.Warnings, "aggregates absent from the balance sheet, counted as 0: "+strings.Join(missing, ", "))
	}
	if !r.IsBalanced {
		r.Warnings = append(r.Warnings, fmt.Sprintf("balance sheet out of balance by %.2f", r.TotalAssets-r.CalculatedTotal))
	}
	if !r.MatchesStated {
		r.Warnings = append(r.Warnings, fmt.Sprintf("total assets differ from stated liabilities and equity by %.2f", r.TotalAssets-r.StatedTotal))
	}
	return r, nil
}

// aggregate resolves a numeric field. A path that stops at a missing key, or
// that a non-nil located set does not name, is reported as absent.
func aggregate(root *schema.Node, located map[string]bool, path string) (float64, bool, error) {
	keys := strings.Split(path, ".")
	cur := root
	for i, key := range keys {
		next, ok := cur.Child(key)
		if !ok {
			return 0, false, nil
		}
		if next == nil {
			return 0, false, &parsererror.SchemaError{Path: strings.Join(keys[:i+1], "."), Reason: "entry has no node"}
		}
		if i < len(keys)-1 && !next.IsSection() {
			return 0, false, &parsererror.SchemaError{Path: strings.Join(keys[:i+1], "."), Reason: "expected a section, found a " + next.Kind().String()}
		}
		cur = next
	}
	if cur.Kind() != schema.Numeric {
		return 0, false, &parsererror.SchemaError{Path: path, Reason: "expected a numeric leaf, found a " + cur.Kind().String()}
	}
	if located != nil && !located[path] {
		return 0, false, nil
	}
	return cur.Number(), true, nil
}
