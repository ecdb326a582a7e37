package models

// RawRow is one row of cells produced by a page-level extractor.
// Rows of the same page may have different lengths.
type RawRow []string

// Table is the assembled, rectangular dataset.
type Table struct {
	// Headers are the column names, synthesized as "Column N" when the
	// source has no header row.
	Headers []string `json:"headers"`
	// Rows holds the data rows in page order. Every row has len(Headers) cells.
	Rows []RawRow `json:"rows"`
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Headers)
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Cell returns the cell at (row, col), or "" when out of range.
func (t *Table) Cell(row, col int) string {
	if t == nil || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
