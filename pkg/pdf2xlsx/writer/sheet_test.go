package writer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadRows(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellStr(sheetName, "A2", "100")
	f.SetCellStr(sheetName, "B2", "055.50")
	f.SetCellValue(sheetName, "A4", "Text")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	rows, err := ReadRows(tmpFile, "")
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	// Literal text is kept, no numeric coercion
	if rows[1].C["2"] != "055.50" {
		t.Errorf("Expected '055.50', got %v", rows[1].C["2"])
	}
	// Empty row 3 is skipped
	if rows[2].R != 4 {
		t.Errorf("Expected row 4, got %d", rows[2].R)
	}
}

func TestInspect(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "Data")
	f.SetCellStr("Data", "B2", "x")
	f.SetCellStr("Data", "D5", "y")

	tmpFile := filepath.Join(t.TempDir(), "inspect.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	sheet, err := Inspect(tmpFile, "")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if sheet.Name != "Data" {
		t.Errorf("Expected sheet 'Data', got %q", sheet.Name)
	}
	if sheet.UsedRange != "B2:D5" {
		t.Errorf("Expected used range 'B2:D5', got %q", sheet.UsedRange)
	}
	if len(sheet.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(sheet.Rows))
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	if _, err := ReadRows(filepath.Join(t.TempDir(), "missing.xlsx"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
}
