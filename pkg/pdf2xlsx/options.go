// Package pdf2xlsx extracts tables from PDF files and exports a selection of
// their columns to styled xlsx workbooks.
package pdf2xlsx

import (
	"fmt"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/parser"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/source"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/writer"
)

// Mode represents how page text is turned into rows.
type Mode string

const (
	// ModeTable splits each visual line into cells at wide gaps and
	// normalizes the column count.
	ModeTable Mode = "table"
	// ModeLines splits each text line on whitespace and normalizes the
	// column count.
	ModeLines Mode = "lines"
	// ModeFixed reads fixed-position estimate fields from each line and
	// skips lines that are too short.
	ModeFixed Mode = "fixed"
)

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTable, ModeLines, ModeFixed:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be table, lines, or fixed)", s)
	}
}

// Options configures extraction and export behavior.
type Options struct {
	// Mode specifies the extraction mode (table, lines, fixed).
	Mode Mode
	// MergeStart is the first column folded into one joined field.
	// Negative disables merging. Ignored in fixed mode.
	MergeStart int
	// ColumnBudget is the column count of the assembled table. Zero or
	// negative uses the widest row. Ignored in fixed mode.
	ColumnBudget int
	// HeaderRow specifies whether the first row holds the headers.
	// If nil, defaults to true for table mode, false otherwise.
	HeaderRow *bool
	// Fixed locates the fields in fixed mode.
	Fixed parser.FixedLayout
	// Backend selects the PDF parsing library.
	Backend source.Backend
	// Layout controls line and cell reconstruction.
	Layout source.LayoutParams
	// Validate specifies whether to check PDF structure before extraction.
	// If nil, defaults to true.
	Validate *bool
	// SheetName names the sheet of freshly created workbooks.
	SheetName string
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	assembly := parser.DefaultAssemblyParams()
	return Options{
		Mode:         ModeTable,
		MergeStart:   assembly.MergeStart,
		ColumnBudget: assembly.ColumnBudget,
		Fixed:        parser.DefaultFixedLayout(),
		Backend:      source.BackendAuto,
		Layout:       source.DefaultLayoutParams(),
		SheetName:    writer.DefaultSheetName,
	}
}

// ShouldUseHeaderRow returns whether the first row holds the headers.
func (o Options) ShouldUseHeaderRow() bool {
	if o.HeaderRow != nil {
		return *o.HeaderRow
	}
	return o.Mode == ModeTable
}

// ShouldValidate returns whether to check PDF structure before extraction.
func (o Options) ShouldValidate() bool {
	if o.Validate != nil {
		return *o.Validate
	}
	return true
}

// AssemblyParams returns the table assembly parameters.
func (o Options) AssemblyParams() parser.AssemblyParams {
	return parser.AssemblyParams{
		MergeStart:   o.MergeStart,
		ColumnBudget: o.ColumnBudget,
		HeaderRow:    o.ShouldUseHeaderRow(),
	}
}

// WriterOptions returns the export options.
func (o Options) WriterOptions() writer.Options {
	return writer.Options{SheetName: o.SheetName}
}
