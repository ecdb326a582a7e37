// Package models defines data structures for PDF table extraction and export.
package models

// CellRow represents a single non-empty row of a destination sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string, 1-based) to the literal cell text.
	C map[string]string `json:"c"`
}
