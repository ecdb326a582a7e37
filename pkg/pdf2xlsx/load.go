package pdf2xlsx

import (
	"errors"
	"os"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/parser"
	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/source"
)

// Diagnostics describes the outcome of a load.
type Diagnostics struct {
	// Pages is the number of pages read.
	Pages int `json:"pages"`
	// Rows is the number of data rows in the table.
	Rows int `json:"rows"`
	// Columns is the number of columns in the table.
	Columns int `json:"columns"`
	// SkippedLines counts non-blank lines rejected in fixed mode.
	SkippedLines int `json:"skipped_lines"`
}

// Load extracts the table of a PDF file.
func Load(path string, opts Options, extractor source.Extractor) (*models.Table, Diagnostics, error) {
	var diag Diagnostics

	// Validate input file exists
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = ErrFileNotFound
		}
		return nil, diag, NewExtractionError(path, "open", err)
	}

	if opts.ShouldValidate() {
		if _, err := source.Probe(path); err != nil {
			return nil, diag, NewExtractionError(path, "probe", err)
		}
	}

	pages, err := extractor.Extract(path)
	if err != nil {
		return nil, diag, NewExtractionError(path, "pages", err)
	}
	diag.Pages = len(pages)

	var table *models.Table
	switch opts.Mode {
	case ModeFixed:
		var lines []string
		for _, page := range pages {
			lines = append(lines, page.Lines...)
		}
		records, stats := parser.ParseFixedLines(lines, opts.Fixed)
		diag.SkippedLines = stats.Skipped
		if len(records) > 0 {
			table = parser.RecordsToTable(records)
		}
	default:
		asm := parser.NewAssembler(opts.AssemblyParams())
		for _, page := range pages {
			if opts.Mode == ModeLines {
				asm.AddPage(parser.TokenizeLines(page.Lines))
			} else {
				asm.AddPage(page.Rows)
			}
		}
		table, err = asm.Table()
		if err != nil && !errors.Is(err, parser.ErrEmptyTable) {
			return nil, diag, NewExtractionError(path, "pages", err)
		}
	}

	if table == nil {
		return nil, diag, &NoTableFoundError{Path: path, Pages: diag.Pages}
	}

	diag.Rows = table.NumRows()
	diag.Columns = table.NumColumns()
	return table, diag, nil
}
