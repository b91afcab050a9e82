package testutil

import (
	"os"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TempDir creates a temporary directory removed when the test ends
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "data-cleaner-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// WriteWorkbook writes rows to Sheet1 of a new workbook at path.
// Row 0 is the header. nil values leave the cell empty.
func WriteWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	WriteSheet(t, path, "Sheet1", rows)
}

// WriteSheet is WriteWorkbook with a custom sheet name
func WriteSheet(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("Failed to rename sheet: %v", err)
		}
	}

	for r, row := range rows {
		for c, val := range row {
			if val == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("Invalid cell (%d,%d): %v", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				t.Fatalf("Failed to set %s: %v", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
}

// ReadWorkbook returns the name and formatted rows of the first sheet
func ReadWorkbook(t *testing.T, path string) (string, [][]string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open workbook %s: %v", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		t.Fatalf("Workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}
	return sheets[0], rows
}
