package parser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

// ErrColumnOutOfRange indicates a column index outside the table.
var ErrColumnOutOfRange = errors.New("column index out of range")

// Project returns the sub-table made of the given columns in ascending
// index order. Duplicate indices are collapsed. All rows are kept.
func Project(table *models.Table, indices []int) (*models.Table, error) {
	cols := uniqueSorted(indices)
	width := table.NumColumns()
	for _, c := range cols {
		if c < 0 || c >= width {
			return nil, fmt.Errorf("%w: %d (table has %d columns)", ErrColumnOutOfRange, c, width)
		}
	}

	out := &models.Table{
		Headers: make([]string, len(cols)),
		Rows:    make([]models.RawRow, table.NumRows()),
	}
	for j, c := range cols {
		out.Headers[j] = table.Headers[c]
	}
	for i := range table.Rows {
		row := make(models.RawRow, len(cols))
		for j, c := range cols {
			row[j] = table.Cell(i, c)
		}
		out.Rows[i] = row
	}
	return out, nil
}

func uniqueSorted(indices []int) []int {
	out := make([]int, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
