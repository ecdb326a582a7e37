package parser

import "github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"

// fixedFieldCount is the number of named fields in an EstimateRecord.
const fixedFieldCount = 5

// FixedLayout locates the named fields of a positionally stable line.
type FixedLayout struct {
	// Offset is the token index of the first field (Code).
	Offset int
	// MinFields is the minimum token count for a line to be accepted.
	MinFields int
}

// DefaultFixedLayout returns the layout where token 0 is a row ordinal and
// tokens 1..5 hold the fields.
func DefaultFixedLayout() FixedLayout {
	return FixedLayout{
		Offset:    1,
		MinFields: 6,
	}
}

// minTokens returns the effective acceptance threshold. A line must always
// carry every field the layout reads.
func (l FixedLayout) minTokens() int {
	need := l.Offset + fixedFieldCount
	if l.MinFields > need {
		return l.MinFields
	}
	return need
}

// ParseFixedFields reads an EstimateRecord from a tokenized line.
// It returns false for lines shorter than the layout requires.
func ParseFixedFields(tokens models.RawRow, layout FixedLayout) (models.EstimateRecord, bool) {
	if layout.Offset < 0 || len(tokens) < layout.minTokens() {
		return models.EstimateRecord{}, false
	}
	f := tokens[layout.Offset:]
	return models.EstimateRecord{
		Code:     f[0],
		Name:     f[1],
		Unit:     f[2],
		Quantity: f[3],
		Price:    f[4],
	}, true
}

// FixedFieldStats counts accepted and skipped lines.
type FixedFieldStats struct {
	Accepted int `json:"accepted"`
	Skipped  int `json:"skipped"`
}

// ParseFixedLines tokenizes lines and keeps the ones that match layout.
// Blank lines are not counted as skipped.
func ParseFixedLines(lines []string, layout FixedLayout) ([]models.EstimateRecord, FixedFieldStats) {
	var (
		records []models.EstimateRecord
		stats   FixedFieldStats
	)
	for _, line := range lines {
		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		rec, ok := ParseFixedFields(tokens, layout)
		if !ok {
			stats.Skipped++
			continue
		}
		records = append(records, rec)
		stats.Accepted++
	}
	return records, stats
}

// RecordsToTable builds a table with EstimateHeaders columns.
func RecordsToTable(records []models.EstimateRecord) *models.Table {
	headers := make([]string, len(models.EstimateHeaders))
	copy(headers, models.EstimateHeaders)

	rows := make([]models.RawRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Cells())
	}
	return &models.Table{Headers: headers, Rows: rows}
}
