package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected models.RawRow
	}{
		{"001 Foundation m2 120 55.50", models.RawRow{"001", "Foundation", "m2", "120", "55.50"}},
		{"  a\tb   c  ", models.RawRow{"a", "b", "c"}},
		{"", nil},
		{" \t  ", nil},
		{"single", models.RawRow{"single"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Tokenize(tt.input), "Tokenize(%q)", tt.input)
	}
}

func TestTokenizeLinesDropsBlankLines(t *testing.T) {
	rows := TokenizeLines([]string{"a b", "", "   ", "c"})
	assert.Equal(t, []models.RawRow{{"a", "b"}, {"c"}}, rows)
}

func TestParseFixedFieldsDefaultLayout(t *testing.T) {
	layout := DefaultFixedLayout()

	rec, ok := ParseFixedFields(Tokenize("1 001 Foundation m2 120 55.50"), layout)
	require.True(t, ok)
	assert.Equal(t, models.EstimateRecord{
		Code:     "001",
		Name:     "Foundation",
		Unit:     "m2",
		Quantity: "120",
		Price:    "55.50",
	}, rec)

	_, ok = ParseFixedFields(Tokenize("001 Foundation m2 120 55.50"), layout)
	assert.False(t, ok, "five tokens are below the default minimum of six")
}

func TestParseFixedLinesWithoutOrdinal(t *testing.T) {
	layout := FixedLayout{Offset: 0, MinFields: 5}

	records, stats := ParseFixedLines([]string{"001 Foundation m2 120 55.50", "noise"}, layout)

	require.Len(t, records, 1)
	assert.Equal(t, models.EstimateRecord{
		Code:     "001",
		Name:     "Foundation",
		Unit:     "m2",
		Quantity: "120",
		Price:    "55.50",
	}, records[0])
	assert.Equal(t, FixedFieldStats{Accepted: 1, Skipped: 1}, stats)
}

func TestParseFixedLinesIgnoresBlankLines(t *testing.T) {
	_, stats := ParseFixedLines([]string{"", "  ", "page 1 of 3"}, DefaultFixedLayout())
	assert.Equal(t, FixedFieldStats{Accepted: 0, Skipped: 1}, stats)
}

func TestFixedLayoutMinTokens(t *testing.T) {
	tests := []struct {
		layout   FixedLayout
		expected int
	}{
		{FixedLayout{Offset: 1, MinFields: 6}, 6},
		{FixedLayout{Offset: 0, MinFields: 5}, 5},
		{FixedLayout{Offset: 2, MinFields: 3}, 7},
		{FixedLayout{Offset: 0, MinFields: 9}, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.layout.minTokens(), "minTokens(%+v)", tt.layout)
	}
}

func TestRecordsToTable(t *testing.T) {
	table := RecordsToTable([]models.EstimateRecord{{Code: "7", Name: "Roof", Unit: "m2", Quantity: "3", Price: "9"}})
	assert.Equal(t, models.EstimateHeaders, table.Headers)
	assert.Equal(t, []models.RawRow{{"7", "Roof", "m2", "3", "9"}}, table.Rows)
}
