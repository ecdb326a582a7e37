package models

// SheetData represents the content of one destination sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// UsedRange covers the non-empty cells, e.g. "A1:D10".
	UsedRange string `json:"used_range,omitempty"`
	// Rows contains the non-empty rows.
	Rows []CellRow `json:"rows,omitempty"`
}
