package writer

import (
	"github.com/xuri/excelize/v2"
)

// NextStartRow returns the start row that places a new block directly under
// the existing content of a sheet: headers on the first free row and data on
// the row after it. A missing file yields 1. An existing file with an empty
// sheet yields 2, which still appends and keeps the rest of the workbook.
func NextStartRow(path, sheetName string) (int, error) {
	ok, err := fileExists(path)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows, err := f.GetRows(resolveSheet(f, sheetName))
	if err != nil {
		return 0, err
	}

	_, maxRow, _, _ := findDataBounds(rows)
	if maxRow < 0 {
		return 2, nil
	}
	// maxRow is 0-based; the header goes on maxRow+2 (1-based).
	return maxRow + 3, nil
}

// UsedRange returns the A1-style range covering the non-empty cells of a
// sheet, or "" when the sheet is empty.
func UsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return startCell + ":" + endCell, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
