// Package writer renders tables into styled xlsx worksheets.
package writer

import (
	"errors"
	"fmt"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet name of a fresh workbook.
const DefaultSheetName = "Sheet1"

// ErrInvalidStartRow indicates a start row below 1.
var ErrInvalidStartRow = errors.New("start row must be >= 1")

// Options configures export behavior.
type Options struct {
	// SheetName names the sheet of a fresh workbook. Append mode always
	// writes to the active sheet of the existing workbook.
	SheetName string
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{SheetName: DefaultSheetName}
}

// Result describes what an export wrote.
type Result struct {
	// Sheet is the sheet that received the block.
	Sheet string `json:"sheet"`
	// Range is the A1 range covering headers and data.
	Range string `json:"range"`
	// Appended is true when an existing workbook was reused.
	Appended bool `json:"appended"`
}

// Export writes table to target. With StartRow 1 it creates a new workbook
// and overwrites any file at target.Path. With a larger StartRow it opens
// the existing workbook (or starts a new one when the file is absent) and
// writes headers at StartRow-1 and data from StartRow, leaving every other
// cell untouched.
func Export(table *models.Table, target models.ExportTarget, opts Options) (*Result, error) {
	if target.StartRow < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStartRow, target.StartRow)
	}

	f, appended, err := openTarget(target, opts)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rng, err := writeBlock(f, sheet, table, target.HeaderRow())
	if err != nil {
		return nil, err
	}

	if err := f.SaveAs(target.Path); err != nil {
		return nil, err
	}

	return &Result{
		Sheet:    sheet,
		Range:    rng,
		Appended: appended,
	}, nil
}

// openTarget returns the workbook to write into and whether it already
// existed on disk.
func openTarget(target models.ExportTarget, opts Options) (*excelize.File, bool, error) {
	if target.IsAppend() {
		ok, err := fileExists(target.Path)
		if err != nil {
			return nil, false, err
		}
		if ok {
			f, err := excelize.OpenFile(target.Path)
			if err != nil {
				return nil, false, err
			}
			return f, true, nil
		}
	}

	f := excelize.NewFile()
	if opts.SheetName != "" && opts.SheetName != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, opts.SheetName); err != nil {
			f.Close()
			return nil, false, err
		}
	}
	return f, false, nil
}

// writeBlock writes headers at headerRow and data rows below it and returns
// the covered range. A table without columns writes nothing.
func writeBlock(f *excelize.File, sheet string, table *models.Table, headerRow int) (string, error) {
	cols := table.NumColumns()
	if cols == 0 {
		return "", nil
	}

	ids, err := registerStyles(f)
	if err != nil {
		return "", err
	}

	if err := writeRow(f, sheet, headerRow, table.Headers); err != nil {
		return "", err
	}
	if err := styleRows(f, sheet, headerRow, headerRow, cols, ids.header); err != nil {
		return "", err
	}

	for i, row := range table.Rows {
		if err := writeRow(f, sheet, headerRow+1+i, row); err != nil {
			return "", err
		}
	}
	lastRow := headerRow + table.NumRows()
	if table.NumRows() > 0 {
		if err := styleRows(f, sheet, headerRow+1, lastRow, cols, ids.data); err != nil {
			return "", err
		}
	}

	first, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return "", err
	}
	last, err := excelize.CoordinatesToCellName(cols, lastRow)
	if err != nil {
		return "", err
	}
	return first + ":" + last, nil
}

// writeRow stores each value as a literal string.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRows(f *excelize.File, sheet string, fromRow, toRow, cols, styleID int) error {
	hCell, err := excelize.CoordinatesToCellName(1, fromRow)
	if err != nil {
		return err
	}
	vCell, err := excelize.CoordinatesToCellName(cols, toRow)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, hCell, vCell, styleID)
}
