package models

// ExportTarget describes where a projected table is written.
type ExportTarget struct {
	// Path is the destination .xlsx file.
	Path string `json:"path"`
	// StartRow is the 1-based row where data begins. 1 creates a fresh
	// workbook with headers at row 1; larger values place headers at
	// StartRow-1 inside the existing workbook.
	StartRow int `json:"start_row"`
}

// IsAppend reports whether the target merges into an existing workbook.
func (t ExportTarget) IsAppend() bool {
	return t.StartRow > 1
}

// HeaderRow returns the 1-based row that receives the header cells.
func (t ExportTarget) HeaderRow() int {
	if t.StartRow <= 1 {
		return 1
	}
	return t.StartRow - 1
}

// DataRow returns the 1-based row of the first data cell.
func (t ExportTarget) DataRow() int {
	return t.HeaderRow() + 1
}
