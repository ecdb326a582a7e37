package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

func TestAssembleMergesOverflowColumns(t *testing.T) {
	a := NewAssembler(AssemblyParams{MergeStart: 4, ColumnBudget: 6, HeaderRow: true})
	a.AddPage([]models.RawRow{
		{"A", "B", "C", "D", "E1", "E2", "E3"},
		{"1", "2", "3", "4", "x", "y", "z"},
	})

	table, err := a.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D", "E1 E2 E3", "Column 6"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, models.RawRow{"1", "2", "3", "4", "x y z", ""}, table.Rows[0])
}

func TestAssembleKeepsPageOrder(t *testing.T) {
	a := NewAssembler(AssemblyParams{MergeStart: -1, ColumnBudget: 2, HeaderRow: false})
	a.AddPage([]models.RawRow{{"p1r1"}, {"p1r2"}})
	a.AddPage(nil)
	a.AddPage([]models.RawRow{{"p3r1"}})

	table, err := a.Table()
	require.NoError(t, err)
	assert.Equal(t, 3, a.Pages())
	assert.Equal(t, []string{"Column 1", "Column 2"}, table.Headers)
	assert.Equal(t, []models.RawRow{{"p1r1", ""}, {"p1r2", ""}, {"p3r1", ""}}, table.Rows)
}

func TestAssembleIrregularRowsAreNeverDropped(t *testing.T) {
	a := NewAssembler(DefaultAssemblyParams())
	a.AddPage([]models.RawRow{
		{"Code", "Name", "Unit", "Qty", "Description"},
		{"1"},
		{"2", "Wall"},
		{"3", "Roof", "m2", "4", "tiles", "", "red", "x", "y", "z", "w", "extra"},
	})

	table, err := a.Table()
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, models.RawRow{"1", "", "", "", "", "", "", "", "", ""}, table.Rows[0])
	assert.Equal(t, "Wall", table.Rows[1][1])
	assert.Equal(t, "tiles red x y z w extra", table.Rows[2][4])
}

func TestAssembleEmptyDocument(t *testing.T) {
	a := NewAssembler(DefaultAssemblyParams())
	a.AddPage(nil)
	a.AddPage([]models.RawRow{{}})

	_, err := a.Table()
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestAssembleHeaderOnly(t *testing.T) {
	a := NewAssembler(AssemblyParams{MergeStart: -1, ColumnBudget: 0, HeaderRow: true})
	a.AddPage([]models.RawRow{{"A", "", "C"}})

	table, err := a.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "Column 2", "C"}, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestAssembleWidestRowWithoutBudget(t *testing.T) {
	a := NewAssembler(AssemblyParams{MergeStart: -1, ColumnBudget: 0, HeaderRow: false})
	a.AddPage([]models.RawRow{{"a"}, {"b", "c", "d"}, {"e", "f"}})

	table, err := a.Table()
	require.NoError(t, err)
	assert.Len(t, table.Headers, 3)
	assert.Equal(t, models.RawRow{"e", "f", ""}, table.Rows[2])
}

func TestAssembleRectangularInvariant(t *testing.T) {
	inputs := [][]models.RawRow{
		{{"a"}},
		{{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"}, {"1"}},
		{{"h1", "h2"}, {}, {"x", "", "", "", "", "y"}},
	}
	paramsList := []AssemblyParams{
		DefaultAssemblyParams(),
		{MergeStart: 1, ColumnBudget: 3, HeaderRow: false},
		{MergeStart: -1, ColumnBudget: 0, HeaderRow: true},
		{MergeStart: 0, ColumnBudget: 1, HeaderRow: false},
	}

	for _, params := range paramsList {
		for _, rows := range inputs {
			a := NewAssembler(params)
			a.AddPage(rows)
			table, err := a.Table()
			require.NoError(t, err)
			for i, row := range table.Rows {
				assert.Len(t, row, len(table.Headers), "params %+v row %d", params, i)
			}
		}
	}
}

func TestMergeRow(t *testing.T) {
	tests := []struct {
		row        models.RawRow
		mergeStart int
		expected   models.RawRow
	}{
		{models.RawRow{"1", "2", "3", "4", "x", "y", "z"}, 4, models.RawRow{"1", "2", "3", "4", "x y z"}},
		{models.RawRow{"1", "2", "3", "4", "", "y", " "}, 4, models.RawRow{"1", "2", "3", "4", "y"}},
		{models.RawRow{"1", "2", "3", "4", "only"}, 4, models.RawRow{"1", "2", "3", "4", "only"}},
		{models.RawRow{"1", "2", "3"}, 4, models.RawRow{"1", "2", "3"}},
		{models.RawRow{"a", "b"}, -1, models.RawRow{"a", "b"}},
		{models.RawRow{"a", "b", "c"}, 0, models.RawRow{"a b c"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MergeRow(tt.row, tt.mergeStart), "MergeRow(%q, %d)", tt.row, tt.mergeStart)
	}
}

func TestMergeInvariant(t *testing.T) {
	row := models.RawRow{"c0", "c1", "c2", "c3", "d1", "", "d2", "d3"}
	var parts []string
	for _, cell := range row[4:] {
		if cell != "" {
			parts = append(parts, cell)
		}
	}

	normalized := NormalizeRow(row, 4, 10)
	assert.Len(t, normalized, 10)
	assert.Equal(t, strings.Join(parts, " "), normalized[4])
}

func TestFitRowDoesNotAlias(t *testing.T) {
	src := models.RawRow{"a", "b"}
	out := FitRow(src, 2)
	out[0] = "changed"
	assert.Equal(t, "a", src[0])
	assert.Empty(t, FitRow(src, -3))
}
