package schema

// Header fields hold free text about the statement rather than figures. They are
// never counted as extraction targets.
const (
	HeaderCompanyName = "company_name"
	HeaderReportDate  = "report_date"
	HeaderReportTitle = "report_title"
)

// IsHeaderKey reports whether key names a header field.
func IsHeaderKey(key string) bool {
	switch key {
	case HeaderCompanyName, HeaderReportDate, HeaderReportTitle:
		return true
	}
	return false
}

// Paths of the aggregates read by the balance check.
const (
	PathTotalAssets               = "assets.total_assets"
	PathTotalLiabilities          = "liabilities.total_liabilities"
	PathTotalEquity               = "equity.total_equity"
	PathTotalLiabilitiesAndEquity = "total_liabilities_and_equity"
)

func zero() *Node { return NewNumeric(0) }

// DefaultTemplate returns a fresh copy of the standard balance-sheet template.
func DefaultTemplate() *Node {
	return NewSection(
		Field(HeaderCompanyName, NewText("")),
		Field(HeaderReportDate, NewText("")),
		Field("assets", NewSection(
			Field("current_assets", NewSection(
				Field("cash", NewSection(
					Field("1010_checking", zero()),
					Field("1020_savings", zero()),
					Field("1030_petty_cash", zero()),
					Field("total_cash", zero()),
				)),
				Field("1100_accounts_receivable", zero()),
				Field("1200_work_in_process", zero()),
				Field("other_current_assets", NewSection(
					Field("1310_prepaid_rent", zero()),
					Field("1320_prepaid_liability_insurance", zero()),
					Field("total_other_current_assets", zero()),
				)),
				Field("total_current_assets", zero()),
			)),
			Field("non_current_assets", NewSection(
				Field("1400_net_computer_equipment", zero()),
				Field("1500_net_furniture_fixtures_equipment", zero()),
				Field("1600_net_field_equipment", zero()),
				Field("1700_net_real_estate", zero()),
				Field("1800_net_leasehold_improvements", zero()),
				Field("1900_other_assets", zero()),
				Field("total_non_current_assets", zero()),
			)),
			Field("total_assets", zero()),
		)),
		Field("liabilities", NewSection(
			Field("current_liabilities", NewSection(
				Field("2000_accounts_payable", zero()),
				Field("2100_deferred_taxes", zero()),
				Field("2200_line_of_credit_borrowing", zero()),
				Field("2300_current_portion_long_term_debt", zero()),
				Field("2400_other_current_liabilities", zero()),
				Field("total_current_liabilities", zero()),
			)),
			Field("non_current_liabilities", NewSection(
				Field("2500_long_term_debt", zero()),
				Field("2600_other_liabilities", zero()),
				Field("total_non_current_liabilities", zero()),
			)),
			Field("total_liabilities", zero()),
		)),
		Field("equity", NewSection(
			Field("3000_capital_stock", zero()),
			Field("3100_treasury_stock", zero()),
			Field("3200_retained_earnings", zero()),
			Field("total_equity", zero()),
		)),
		Field(PathTotalLiabilitiesAndEquity, zero()),
	)
}
