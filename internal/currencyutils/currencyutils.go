// Package currencyutils converts the numeric literals found in statement text into
// signed values, following accounting notation.
package currencyutils

import (
	"errors"
	"regexp"
	"strings"

	"fjacquet/balance-sheet/internal/parsererror"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// separatorPattern matches thousands separators and whitespace inside a literal.
var separatorPattern = regexp.MustCompile(`[,\s]`)

var errSignedInParens = errors.New("explicit sign inside accounting parentheses")

// Normalize converts a raw literal into a signed value.
//
// The contract is best-effort and never fails:
//   - an empty literal yields 0
//   - "," and whitespace are removed before parsing
//   - a literal wrapped in parentheses, e.g. "(1,250,000)", is negative
//   - a literal that does not parse yields 0
//
// A zero result is therefore ambiguous between "absent", "unparseable" and a real
// zero; the coverage analyzer relies on exactly that. Do not turn the fallback into
// an error here; callers that need one use ParseAccountingAmount.
func Normalize(raw string) float64 {
	amount, err := ParseAccountingAmount(raw)
	if err != nil {
		return 0
	}
	f, _ := amount.Float64()
	return f
}

// ParseAccountingAmount applies the same cleaning as Normalize but reports
// unparseable literals as a *parsererror.ParseError. An empty literal is zero.
func ParseAccountingAmount(raw string) (decimal.Decimal, error) {
	cleaned := separatorPattern.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, nil
	}

	negative := false
	if IsParenthesized(cleaned) {
		cleaned = cleaned[1 : len(cleaned)-1]
		negative = true
		// "(-5)" is not accounting notation, it is a malformed literal
		if strings.HasPrefix(cleaned, "-") || strings.HasPrefix(cleaned, "+") {
			return decimal.Zero, &parsererror.ParseError{Parser: "amount", Field: "literal", Value: raw, Err: errSignedInParens}
		}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{Parser: "amount", Field: "literal", Value: raw, Err: err}
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// IsParenthesized reports whether a cleaned literal is wrapped in accounting parentheses.
func IsParenthesized(cleaned string) bool {
	return len(cleaned) >= 2 && cleaned[0] == '(' && cleaned[len(cleaned)-1] == ')'
}

var printer = message.NewPrinter(language.English)

// FormatAmount renders a value as dollars with thousands separators, e.g. "$1,250,000.00".
func FormatAmount(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// FormatPercent renders a rate with one decimal, e.g. "85.7%".
func FormatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}
