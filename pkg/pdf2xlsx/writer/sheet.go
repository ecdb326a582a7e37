package writer

import (
	"errors"
	"os"
	"strconv"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows reads the non-empty rows of a sheet. An empty sheetName selects
// the active sheet. Values are returned as their literal text.
func ReadRows(path, sheetName string) ([]models.CellRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readRows(f, resolveSheet(f, sheetName))
}

// Inspect reads a sheet together with its used range.
func Inspect(path, sheetName string) (*models.SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := resolveSheet(f, sheetName)
	rows, err := readRows(f, name)
	if err != nil {
		return nil, err
	}
	used, err := UsedRange(f, name)
	if err != nil {
		return nil, err
	}

	return &models.SheetData{
		Name:      name,
		UsedRange: used,
		Rows:      rows,
	}, nil
}

func readRows(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cellMap := make(map[string]string)
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = cellValue
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: rowIdx + 1,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// resolveSheet returns sheetName, or the active sheet when it is empty.
func resolveSheet(f *excelize.File, sheetName string) string {
	if sheetName != "" {
		return sheetName
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}

// fileExists reports whether path names an existing file.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
