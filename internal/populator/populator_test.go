package populator_test

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parsererror"
	"fjacquet/balance-sheet/internal/populator"
	"fjacquet/balance-sheet/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statement = `=== TEXT CONTENT FROM Balance-Sheet-Example.pdf ===
=== PAGE 1 TEXT ===
ABC, Inc.
Balance Sheet
As of December 31, 2018
ASSETS
Current Assets
Cash
1010 Checking 1,250,000
1020 Savings 75,000
1030 Petty Cash 500
Total Cash 1,325,500
1100 Accounts Receivable 2,500,000
1200 Work in Process 150,000
Other Current Assets
1310 Prepaid Rent 24,000
1320 Prepaid Liability Insurance 12,000
Total Other Current Assets 36,000
Total Current Assets 4,011,500
Non-Current Assets
1400 Net Computer Equipment 40,000
1500 Net Furniture, Fixtures, & Equipment 60,000
1600 Net Field Equipment 300,000
1700 Net Real Estate 1,500,000
1800 Net Leasehold Improvements 88,500
1900 Other Assets 0
Total Non-Current Assets 1,988,500
Total Assets 6,000,000
LIABILITIES
Current Liabilities
2000 Accounts Payable 400,000
2100 Deferred Taxes 100,000
2200 Line of Credit Borrowing 250,000
2300 Current Portion of Long-Term Debt 150,000
2400 Other Current Liabilities 100,000
Total Current Liabilities 1,000,000
Non-Current Liabilities
2500 Long-Term Debt 2,000,000
2600 Other Liabilities 0
Total Non-Current Liabilities 2,000,000
Total Liabilities 3,000,000
EQUITY
3000 Capital Stock 1,000,000
3100 Treasury Stock (500,000)
3200 Retained Earnings 2,500,000
Total Equity 3,000,000
Total Liabilities and Equity 6,000,000
`

func number(t *testing.T, root *schema.Node, path string) float64 {
	t.Helper()
	n, ok := root.Lookup(path)
	require.True(t, ok, "missing %s", path)
	require.Equal(t, schema.Numeric, n.Kind(), path)
	return n.Number()
}

func text(t *testing.T, root *schema.Node, path string) string {
	t.Helper()
	n, ok := root.Lookup(path)
	require.True(t, ok, "missing %s", path)
	require.Equal(t, schema.Text, n.Kind(), path)
	return n.Text()
}

func TestPopulate_FullStatement(t *testing.T) {
	p := populator.NewPopulator(logging.NewMockLogger(), nil)
	out, err := p.Populate(statement, schema.DefaultTemplate())
	require.NoError(t, err)

	assert.Equal(t, "ABC", text(t, out, schema.HeaderCompanyName))
	assert.Equal(t, "December 31, 2018", text(t, out, schema.HeaderReportDate))

	expected := map[string]float64{
		"assets.current_assets.cash.1010_checking":                             1250000,
		"assets.current_assets.cash.1030_petty_cash":                           500,
		"assets.current_assets.cash.total_cash":                                1325500,
		"assets.current_assets.other_current_assets.total_other_current_assets": 36000,
		"assets.current_assets.total_current_assets":                           4011500,
		"assets.non_current_assets.1500_net_furniture_fixtures_equipment":      60000,
		"assets.non_current_assets.1900_other_assets":                          0,
		"assets.non_current_assets.total_non_current_assets":                   1988500,
		schema.PathTotalAssets:                                                 6000000,
		"liabilities.current_liabilities.2300_current_portion_long_term_debt":  150000,
		"liabilities.current_liabilities.total_current_liabilities":            1000000,
		"liabilities.non_current_liabilities.total_non_current_liabilities":    2000000,
		schema.PathTotalLiabilities:                                            3000000,
		"equity.3100_treasury_stock":                                           -500000,
		schema.PathTotalEquity:                                                 3000000,
		schema.PathTotalLiabilitiesAndEquity:                                   6000000,
	}
	for path, want := range expected {
		assert.Equal(t, want, number(t, out, path), path)
	}
}

func TestPopulate_CashAndTotalsBalance(t *testing.T) {
	in := "1010 Checking 1,250,000\nTotal Assets 1,250,000\nTotal Liabilities 1,000,000\nTotal Equity 250,000\n"
	out, err := populator.NewPopulator(nil, nil).Populate(in, schema.DefaultTemplate())
	require.NoError(t, err)

	assert.Equal(t, 1250000.0, number(t, out, "assets.current_assets.cash.1010_checking"))
	assert.Equal(t, 1250000.0, number(t, out, schema.PathTotalAssets))
	assert.Equal(t, 1000000.0, number(t, out, schema.PathTotalLiabilities))
	assert.Equal(t, 250000.0, number(t, out, schema.PathTotalEquity))
}

func TestPopulateLocated_ReportsMatchedPaths(t *testing.T) {
	in := "Total Assets 0\nTotal Equity 250,000\n"
	out, located, err := populator.NewPopulator(nil, nil).PopulateLocated(in, schema.DefaultTemplate())
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{schema.PathTotalAssets: true, schema.PathTotalEquity: true}, located)
	assert.Zero(t, number(t, out, schema.PathTotalAssets))
	assert.Zero(t, number(t, out, schema.PathTotalLiabilitiesAndEquity))
}

func TestPopulate_TreasuryStockIsNegative(t *testing.T) {
	out, err := populator.NewPopulator(nil, nil).Populate("3100 Treasury Stock (500,000)", schema.DefaultTemplate())
	require.NoError(t, err)
	assert.Equal(t, -500000.0, number(t, out, "equity.3100_treasury_stock"))
}

func TestPopulate_EmptyTextZeroesEveryNumber(t *testing.T) {
	tmpl := schema.DefaultTemplate()
	require.NoError(t, tmpl.Walk(func(path, _ string, n *schema.Node) error {
		if n.Kind() == schema.Numeric {
			return tmpl.SetNumber(path, 42)
		}
		return nil
	}))
	require.NoError(t, tmpl.SetText(schema.HeaderCompanyName, "Template Co"))

	out, err := populator.NewPopulator(nil, nil).Populate("", tmpl)
	require.NoError(t, err)

	require.NoError(t, out.Walk(func(path, _ string, n *schema.Node) error {
		if n.Kind() == schema.Numeric {
			assert.Zero(t, n.Number(), path)
		}
		return nil
	}))
	assert.Equal(t, "Template Co", text(t, out, schema.HeaderCompanyName), "absent header keeps template value")
}

func TestPopulate_DoesNotMutateTemplate(t *testing.T) {
	tmpl := schema.DefaultTemplate()
	before := tmpl.Clone()

	_, err := populator.NewPopulator(nil, nil).Populate(statement, tmpl)
	require.NoError(t, err)
	assert.True(t, tmpl.Equal(before))
}

func TestPopulate_Idempotent(t *testing.T) {
	p := populator.NewPopulator(nil, nil)
	first, err := p.Populate(statement, schema.DefaultTemplate())
	require.NoError(t, err)
	second, err := p.Populate(statement, schema.DefaultTemplate())
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestPopulate_FirstMatchWins(t *testing.T) {
	out, err := populator.NewPopulator(nil, nil).Populate("Total Assets 100\nTotal Assets 200\n", schema.DefaultTemplate())
	require.NoError(t, err)
	assert.Equal(t, 100.0, number(t, out, schema.PathTotalAssets))
}

func TestPopulate_MissingLeafIsCreated(t *testing.T) {
	tmpl := schema.DefaultTemplate()
	equity, _ := tmpl.Lookup("equity")
	pruned := schema.NewSection()
	for _, e := range equity.Entries() {
		if e.Key != "3200_retained_earnings" {
			pruned.Put(e.Key, e.Node)
		}
	}
	tmpl.Put("equity", pruned)

	out, err := populator.NewPopulator(nil, nil).Populate("3200 Retained Earnings 7", tmpl)
	require.NoError(t, err)
	assert.Equal(t, 7.0, number(t, out, "equity.3200_retained_earnings"))
}

func TestPopulate_MalformedTemplate(t *testing.T) {
	tests := []struct {
		name string
		tmpl *schema.Node
	}{
		{name: "nil template", tmpl: nil},
		{name: "leaf root", tmpl: schema.NewNumeric(0)},
		{name: "missing section", tmpl: schema.NewSection(schema.Field("assets", schema.NewSection()))},
		{name: "leaf where section expected", tmpl: schema.NewSection(schema.Field("assets", schema.NewNumeric(0)))},
		{name: "number where header expected", tmpl: schema.NewSection(schema.Field(schema.HeaderCompanyName, schema.NewNumeric(0)))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := populator.NewPopulator(nil, nil).Populate("ABC, Inc.", tt.tmpl)
			var schemaErr *parsererror.SchemaError
			assert.True(t, errors.As(err, &schemaErr), "got %v", err)
		})
	}
}

func TestParse_UsesConfiguredTemplate(t *testing.T) {
	p := populator.NewPopulator(nil, nil)
	out, err := p.Parse(strings.NewReader(statement))
	require.NoError(t, err)
	assert.Equal(t, 6000000.0, number(t, out, schema.PathTotalAssets))
	assert.True(t, p.Template().Equal(schema.DefaultTemplate()))
}

func TestFields_CoverEveryTemplateNumber(t *testing.T) {
	tmpl := schema.DefaultTemplate()
	seen := map[string]bool{}
	for _, f := range populator.Fields() {
		assert.False(t, seen[f.Path], "duplicate locator for %s", f.Path)
		seen[f.Path] = true
		n, ok := tmpl.Lookup(f.Path)
		require.True(t, ok, f.Path)
		assert.Equal(t, schema.Numeric, n.Kind(), f.Path)
	}

	numeric := 0
	require.NoError(t, tmpl.Walk(func(_, _ string, n *schema.Node) error {
		if n.Kind() == schema.Numeric {
			numeric++
		}
		return nil
	}))
	assert.Equal(t, numeric, len(seen))
	assert.Len(t, seen, 33)
}
