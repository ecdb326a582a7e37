package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// ErrEmptyTable indicates that no rows were fed to an Assembler.
var ErrEmptyTable = errors.New("no rows to assemble")

// AssemblyParams holds parameters for column-count normalization.
type AssemblyParams struct {
	// MergeStart is the first column folded into a single joined field.
	// Negative disables merging.
	MergeStart int
	// ColumnBudget is the fixed column count of the assembled table.
	// Zero or negative uses the widest row.
	ColumnBudget int
	// HeaderRow takes the first row of the document as headers.
	HeaderRow bool
}

// DefaultAssemblyParams returns default assembly parameters.
func DefaultAssemblyParams() AssemblyParams {
	return AssemblyParams{
		MergeStart:   4,
		ColumnBudget: 10,
		HeaderRow:    true,
	}
}

// Assembler accumulates raw rows page by page into one table.
type Assembler struct {
	params AssemblyParams
	pages  int
	rows   []models.RawRow
}

// NewAssembler creates an Assembler.
func NewAssembler(params AssemblyParams) *Assembler {
	return &Assembler{params: params}
}

// AddPage appends the rows of the next page. Empty rows are ignored.
func (a *Assembler) AddPage(rows []models.RawRow) {
	a.pages++
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		a.rows = append(a.rows, row)
	}
}

// Pages returns the number of pages added so far.
func (a *Assembler) Pages() int {
	return a.pages
}

// Table builds the assembled table. It returns ErrEmptyTable when no page
// contributed a row.
func (a *Assembler) Table() (*models.Table, error) {
	if len(a.rows) == 0 {
		return nil, ErrEmptyTable
	}

	merged := make([]models.RawRow, len(a.rows))
	width := a.params.ColumnBudget
	for i, row := range a.rows {
		merged[i] = MergeRow(row, a.params.MergeStart)
		if a.params.ColumnBudget <= 0 && len(merged[i]) > width {
			width = len(merged[i])
		}
	}

	data := merged
	var headers []string
	if a.params.HeaderRow {
		headers = headerNames(FitRow(merged[0], width))
		data = merged[1:]
	} else {
		headers = SyntheticHeaders(width)
	}

	rows := make([]models.RawRow, len(data))
	for i, row := range data {
		rows[i] = FitRow(row, width)
	}

	return &models.Table{
		Headers: headers,
		Rows:    rows,
	}, nil
}

// NormalizeRow merges overflow columns and fits the row to width.
func NormalizeRow(row models.RawRow, mergeStart, width int) models.RawRow {
	return FitRow(MergeRow(row, mergeStart), width)
}

// MergeRow joins the cells from mergeStart through the end of the row into
// one field, separated by single spaces and skipping blank cells. Rows not
// longer than mergeStart are returned as a copy.
func MergeRow(row models.RawRow, mergeStart int) models.RawRow {
	if mergeStart < 0 || len(row) <= mergeStart {
		out := make(models.RawRow, len(row))
		copy(out, row)
		return out
	}

	out := make(models.RawRow, mergeStart+1)
	copy(out, row[:mergeStart])

	parts := make([]string, 0, len(row)-mergeStart)
	for _, cell := range row[mergeStart:] {
		if strings.TrimSpace(cell) == "" {
			continue
		}
		parts = append(parts, cell)
	}
	out[mergeStart] = strings.Join(parts, " ")
	return out
}

// FitRow truncates or pads row with empty cells to exactly width cells.
func FitRow(row models.RawRow, width int) models.RawRow {
	if width < 0 {
		width = 0
	}
	out := make(models.RawRow, width)
	copy(out, row)
	return out
}

// SyntheticHeaders returns "Column 1" .. "Column n".
func SyntheticHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = columnName(i)
	}
	return headers
}

// headerNames fills blank header cells with their synthetic names.
func headerNames(row models.RawRow) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		if strings.TrimSpace(h) == "" {
			h = columnName(i)
		}
		headers[i] = h
	}
	return headers
}

func columnName(i int) string {
	return "Column " + strconv.Itoa(i+1)
}
