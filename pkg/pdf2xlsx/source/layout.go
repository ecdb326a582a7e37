package source

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// defaultFontSize is used for fragments that report no font size.
const defaultFontSize = 10.0

// LayoutParams controls how text fragments are grouped into lines and cells.
type LayoutParams struct {
	// RowTolerance is the maximum baseline difference, in points, between
	// fragments of the same line.
	RowTolerance float64
	// WordGap is the horizontal gap, as a fraction of the font size, above
	// which a space is inserted between fragments.
	WordGap float64
	// CellGap is the horizontal gap, as a fraction of the font size, above
	// which a new cell starts.
	CellGap float64
	// ColumnTolerance is the maximum distance, in points, between cell start
	// positions of the same column. Negative disables column alignment.
	ColumnTolerance float64
}

// DefaultLayoutParams returns default layout parameters.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		RowTolerance:    2.0,
		WordGap:         0.15,
		CellGap:         1.0,
		ColumnTolerance: 10.0,
	}
}

// Fragment is a positioned piece of text in PDF user space (origin at the
// bottom-left corner of the page).
type Fragment struct {
	X        float64
	Y        float64
	W        float64
	FontSize float64
	S        string
}

// BuildPage groups fragments into lines and cells. Cells are aligned to the
// columns found on the whole page, so a row with a blank cell keeps an empty
// string in that position.
func BuildPage(number int, frags []Fragment, params LayoutParams) Page {
	page := Page{Number: number}

	var lines [][]cellSpan
	for _, row := range groupRows(frags, params.RowTolerance) {
		if spans := splitCells(row, params); len(spans) > 0 {
			lines = append(lines, spans)
		}
	}

	columns := columnBounds(lines, params.ColumnTolerance)
	for _, spans := range lines {
		texts := make([]string, len(spans))
		for i, sp := range spans {
			texts[i] = sp.text
		}
		page.Lines = append(page.Lines, strings.Join(texts, " "))
		page.Rows = append(page.Rows, alignCells(spans, columns))
	}
	return page
}

// groupRows clusters fragments by baseline, top line first, and sorts each
// line left to right.
func groupRows(frags []Fragment, tolerance float64) [][]Fragment {
	sorted := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if f.S == "" {
			continue
		}
		sorted = append(sorted, f)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]Fragment
	var rowY float64
	for _, f := range sorted {
		n := len(rows)
		if n > 0 && abs(rowY-f.Y) <= tolerance {
			rows[n-1] = append(rows[n-1], f)
			continue
		}
		rows = append(rows, []Fragment{f})
		rowY = f.Y
	}

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
	}
	return rows
}

// cellSpan is one cell of a line and the position where it starts.
type cellSpan struct {
	x0   float64
	text string
}

// splitCells joins the fragments of one line into cells.
func splitCells(row []Fragment, params LayoutParams) []cellSpan {
	var (
		spans   []cellSpan
		cur     strings.Builder
		start   float64
		prevEnd float64
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			spans = append(spans, cellSpan{x0: start, text: norm.NFC.String(s)})
		}
		cur.Reset()
	}

	for i, f := range row {
		size := f.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		if i > 0 {
			gap := f.X - prevEnd
			switch {
			case gap > params.CellGap*size:
				flush()
			case gap > params.WordGap*size:
				cur.WriteByte(' ')
			}
		}
		if cur.Len() == 0 {
			start = f.X
		}
		cur.WriteString(f.S)
		if end := f.X + f.W; i == 0 || end > prevEnd {
			prevEnd = end
		}
	}
	flush()
	return spans
}

// column is a range of cell start positions.
type column struct {
	lo, hi float64
}

// columnBounds clusters the start positions of every cell on the page. A new
// column begins where consecutive sorted starts are more than tolerance apart.
func columnBounds(lines [][]cellSpan, tolerance float64) []column {
	if tolerance < 0 {
		return nil
	}

	var starts []float64
	for _, spans := range lines {
		for _, sp := range spans {
			starts = append(starts, sp.x0)
		}
	}
	sort.Float64s(starts)

	var columns []column
	for _, x := range starts {
		n := len(columns)
		if n > 0 && x-columns[n-1].hi <= tolerance {
			columns[n-1].hi = x
			continue
		}
		columns = append(columns, column{lo: x, hi: x})
	}
	return columns
}

// alignCells places each span in the column holding its start position.
// Columns without text stay empty; spans sharing a column are joined.
func alignCells(spans []cellSpan, columns []column) models.RawRow {
	if len(columns) == 0 {
		row := make(models.RawRow, len(spans))
		for i, sp := range spans {
			row[i] = sp.text
		}
		return row
	}

	row := make(models.RawRow, len(columns))
	for _, sp := range spans {
		i := sort.Search(len(columns), func(i int) bool { return columns[i].hi >= sp.x0 })
		if i == len(columns) {
			i--
		}
		if row[i] != "" {
			row[i] += " " + sp.text
		} else {
			row[i] = sp.text
		}
	}
	return row
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
