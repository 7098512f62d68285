package populator

import (
	"regexp"

	"fjacquet/balance-sheet/internal/extractor"
	"fjacquet/balance-sheet/internal/schema"
)

// FieldLocator binds a template path to the pattern that finds its figure.
type FieldLocator struct {
	Path    string
	Locator *extractor.Locator
}

// amount is the capture used by every account line: digits with optional
// thousands groups.
const amount = `(\d+(?:,\d+)*)`

func field(path, label string) FieldLocator {
	return FieldLocator{Path: path, Locator: extractor.MustCompile(label + `\s+` + amount)}
}

var (
	// companyLocator is case-sensitive so that only upper-case tickers qualify.
	companyLocator = &extractor.Locator{Pattern: regexp.MustCompile(`([A-Z]+),?\s*Inc\.?`)}
	dateLocator    = &extractor.Locator{Pattern: regexp.MustCompile(`(?i)As of\s+([^\n]+)`)}
)

// fields is applied in order, once per document. It is read-only after init.
var fields = []FieldLocator{
	field("assets.current_assets.cash.1010_checking", `1010\s+Checking`),
	field("assets.current_assets.cash.1020_savings", `1020\s+Savings`),
	field("assets.current_assets.cash.1030_petty_cash", `1030\s+Petty\s+Cash`),
	field("assets.current_assets.cash.total_cash", `Total\s+Cash`),
	field("assets.current_assets.1100_accounts_receivable", `1100\s+Accounts\s+Receivable`),
	field("assets.current_assets.1200_work_in_process", `1200\s+Work\s+in\s+Process`),
	field("assets.current_assets.other_current_assets.1310_prepaid_rent", `1310\s+Prepaid\s+Rent`),
	field("assets.current_assets.other_current_assets.1320_prepaid_liability_insurance", `1320\s+Prepaid\s+Liability\s+Insurance`),
	field("assets.current_assets.other_current_assets.total_other_current_assets", `Total\s+Other\s+Current\s+Assets`),
	field("assets.current_assets.total_current_assets", `Total\s+Current\s+Assets`),

	field("assets.non_current_assets.1400_net_computer_equipment", `1400\s+Net\s+Computer\s+Equipment`),
	field("assets.non_current_assets.1500_net_furniture_fixtures_equipment", `1500\s+Net\s+Furniture,\s+Fixtures,\s+&\s+Equipment`),
	field("assets.non_current_assets.1600_net_field_equipment", `1600\s+Net\s+Field\s+Equipment`),
	field("assets.non_current_assets.1700_net_real_estate", `1700\s+Net\s+Real\s+Estate`),
	field("assets.non_current_assets.1800_net_leasehold_improvements", `1800\s+Net\s+Leasehold\s+Improvements`),
	field("assets.non_current_assets.1900_other_assets", `1900\s+Other\s+Assets`),
	field("assets.non_current_assets.total_non_current_assets", `Total\s+Non-Current\s+Assets`),
	field(schema.PathTotalAssets, `Total\s+Assets`),

	field("liabilities.current_liabilities.2000_accounts_payable", `2000\s+Accounts\s+Payable`),
	field("liabilities.current_liabilities.2100_deferred_taxes", `2100\s+Deferred\s+Taxes`),
	field("liabilities.current_liabilities.2200_line_of_credit_borrowing", `2200\s+Line\s+of\s+Credit\s+Borrowing`),
	field("liabilities.current_liabilities.2300_current_portion_long_term_debt", `2300\s+Current\s+Portion\s+of\s+Long-Term\s+Debt`),
	field("liabilities.current_liabilities.2400_other_current_liabilities", `2400\s+Other\s+Current\s+Liabilities`),
	field("liabilities.current_liabilities.total_current_liabilities", `Total\s+Current\s+Liabilities`),
	field("liabilities.non_current_liabilities.2500_long_term_debt", `2500\s+Long-Term\s+Debt`),
	field("liabilities.non_current_liabilities.2600_other_liabilities", `2600\s+Other\s+Liabilities`),
	field("liabilities.non_current_liabilities.total_non_current_liabilities", `Total\s+Non-Current\s+Liabilities`),
	field(schema.PathTotalLiabilities, `Total\s+Liabilities`),

	field("equity.3000_capital_stock", `3000\s+Capital\s+Stock`),
	// Treasury stock is printed as a deduction: "(1,250,000)".
	{Path: "equity.3100_treasury_stock", Locator: extractor.MustCompileNegated(`3100\s+Treasury\s+Stock\s+\(` + amount + `\)`)},
	field("equity.3200_retained_earnings", `3200\s+Retained\s+Earnings`),
	field(schema.PathTotalEquity, `Total\s+Equity`),

	field(schema.PathTotalLiabilitiesAndEquity, `Total\s+Liabilities\s+and\s+Equity`),
}

// Fields returns a copy of the locator table in application order.
func Fields() []FieldLocator {
	return append([]FieldLocator(nil), fields...)
}
