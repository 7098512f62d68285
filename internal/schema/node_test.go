package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fjacquet/balance-sheet/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplate_Shape(t *testing.T) {
	tmpl := DefaultTemplate()

	var numeric, text int
	require.NoError(t, tmpl.Walk(func(path, key string, node *Node) error {
		switch node.Kind() {
		case Numeric:
			numeric++
		case Text:
			text++
		}
		return nil
	}))
	assert.Equal(t, 33, numeric)
	assert.Equal(t, 2, text)

	leaf, ok := tmpl.Lookup("assets.current_assets.cash.1010_checking")
	require.True(t, ok)
	assert.Equal(t, Numeric, leaf.Kind())
	assert.Zero(t, leaf.Number())
}

func TestDefaultTemplate_FreshCopies(t *testing.T) {
	a := DefaultTemplate()
	require.NoError(t, a.SetNumber(PathTotalAssets, 10))

	b := DefaultTemplate()
	leaf, _ := b.Lookup(PathTotalAssets)
	assert.Zero(t, leaf.Number())
}

func TestNode_CloneIsDeep(t *testing.T) {
	orig := DefaultTemplate()
	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	require.NoError(t, clone.SetNumber("equity.total_equity", 5))
	require.NoError(t, clone.SetText(HeaderCompanyName, "ACME"))

	leaf, _ := orig.Lookup("equity.total_equity")
	assert.Zero(t, leaf.Number())
	name, _ := orig.Lookup(HeaderCompanyName)
	assert.Empty(t, name.Text())
	assert.False(t, orig.Equal(clone))
}

func TestNode_SetNumber(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantErr    bool
		wantErrAt  string
		wantLength int
	}{
		{name: "existing leaf", path: "assets.total_assets", wantLength: 3},
		{name: "new leaf appended", path: "assets.goodwill", wantLength: 4},
		{name: "missing section", path: "assets.intangibles.patents", wantErr: true, wantErrAt: "assets.intangibles"},
		{name: "leaf used as section", path: "assets.total_assets.extra", wantErr: true, wantErrAt: "assets.total_assets"},
		{name: "section used as leaf", path: "assets.current_assets", wantErr: true, wantErrAt: "assets.current_assets"},
		{name: "text leaf used as number", path: HeaderReportDate, wantErr: true, wantErrAt: HeaderReportDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := DefaultTemplate()
			err := tmpl.SetNumber(tt.path, 42)
			if tt.wantErr {
				var schemaErr *parsererror.SchemaError
				require.True(t, errors.As(err, &schemaErr), "got %v", err)
				assert.Equal(t, tt.wantErrAt, schemaErr.Path)
				return
			}
			require.NoError(t, err)
			leaf, ok := tmpl.Lookup(tt.path)
			require.True(t, ok)
			assert.Equal(t, 42.0, leaf.Number())
			assets, _ := tmpl.Child("assets")
			assert.Equal(t, tt.wantLength, assets.Len())
		})
	}
}

func TestNode_SetOnLeafRoot(t *testing.T) {
	err := NewNumeric(1).SetNumber("a", 1)
	var schemaErr *parsererror.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestNode_PutKeepsPosition(t *testing.T) {
	s := NewSection(Field("a", NewNumeric(1)), Field("b", NewNumeric(2)))
	s.Put("a", NewNumeric(3))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, 3.0, entries[0].Node.Number())
}

func TestNode_WalkOrderAndSkip(t *testing.T) {
	s := NewSection(
		Field("x", NewNumeric(1)),
		Field("skip", NewSection(Field("hidden", NewNumeric(2)))),
		Field("y", NewSection(Field("z", NewNumeric(3)))),
	)

	var visited []string
	require.NoError(t, s.Walk(func(path, key string, node *Node) error {
		visited = append(visited, path)
		if key == "skip" {
			return SkipSection
		}
		return nil
	}))
	assert.Equal(t, []string{"x", "skip", "y", "y.z"}, visited)

	stop := errors.New("stop")
	err := s.Walk(func(path, key string, node *Node) error { return stop })
	assert.ErrorIs(t, err, stop)
}

func TestNode_NilEntryIsSchemaError(t *testing.T) {
	root := NewSection(
		Field("assets", NewSection(Field("total_assets", nil))),
	)

	err := root.Walk(func(string, string, *Node) error { return nil })
	var schemaErr *parsererror.SchemaError
	require.True(t, errors.As(err, &schemaErr), "got %v", err)
	assert.Equal(t, "assets.total_assets", schemaErr.Path)

	_, err = json.Marshal(root)
	require.True(t, errors.As(err, &schemaErr), "got %v", err)
	assert.Equal(t, "assets.total_assets", schemaErr.Path)

	err = root.SetNumber("assets.total_assets", 5)
	require.NoError(t, err, "a nil leaf can be replaced")
	v, ok := root.Lookup("assets.total_assets")
	require.True(t, ok)
	assert.Equal(t, 5.0, v.Number())

	err = NewSection(Field("assets", nil)).SetNumber("assets.total_assets", 1)
	require.True(t, errors.As(err, &schemaErr), "got %v", err)
	assert.Equal(t, "assets", schemaErr.Path)
}

func TestNode_MarshalJSONKeepsOrder(t *testing.T) {
	s := NewSection(
		Field("zeta", NewText("Z")),
		Field("alpha", NewSection(Field("1010_checking", NewNumeric(1250000)))),
		Field("mid", NewNumeric(-500000)),
	)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"Z","alpha":{"1010_checking":1250000},"mid":-500000}`, string(out))
}

func TestNode_JSONRoundTripThroughStruct(t *testing.T) {
	type envelope struct {
		Populated *Node `json:"populated"`
	}
	in := envelope{Populated: DefaultTemplate()}
	require.NoError(t, in.Populated.SetNumber(PathTotalAssets, 100))

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out envelope
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Populated.Equal(out.Populated))
}

func TestLoad(t *testing.T) {
	t.Run("json template", func(t *testing.T) {
		tmpl, err := Load(strings.NewReader(`{"company_name": "", "report_date": null, "assets": {"total_assets": 0, "cash": 12.5}}`))
		require.NoError(t, err)

		entries := tmpl.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "assets", entries[2].Key)

		date, _ := tmpl.Lookup(HeaderReportDate)
		assert.Equal(t, Text, date.Kind())
		cash, _ := tmpl.Lookup("assets.cash")
		assert.Equal(t, 12.5, cash.Number())
	})

	t.Run("yaml template", func(t *testing.T) {
		tmpl, err := Load(strings.NewReader("equity:\n  total_equity: 0\n  3100_treasury_stock: 0\n"))
		require.NoError(t, err)
		equity, _ := tmpl.Child("equity")
		assert.Equal(t, "3100_treasury_stock", equity.Entries()[1].Key)
	})

	errorCases := map[string]string{
		"empty":        "   ",
		"list root":    "[1, 2]",
		"list leaf":    `{"assets": [1, 2]}`,
		"boolean leaf": `{"assets": {"total_assets": true}}`,
		"dotted key":   `{"assets.total": 0}`,
		"invalid":      `{"assets": `,
	}
	for name, input := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(input))
			var schemaErr *parsererror.SchemaError
			assert.True(t, errors.As(err, &schemaErr), "got %v", err)
		})
	}
}

func TestIsHeaderKey(t *testing.T) {
	assert.True(t, IsHeaderKey(HeaderCompanyName))
	assert.True(t, IsHeaderKey(HeaderReportTitle))
	assert.False(t, IsHeaderKey("total_assets"))
}
