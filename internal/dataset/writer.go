package dataset

import (
	"fmt"

	"data-cleaner/internal/logger"
	"data-cleaner/internal/model"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Save writes the dataset to a new single-sheet .xlsx workbook.
// The header row is written first; there is no index column.
// Null cells are left empty; number formats such as dates are reapplied.
func Save(ds *model.Dataset, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := ds.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("failed to name sheet %q: %w", sheet, err)
		}
	}

	styler, err := NewStyler(f)
	if err != nil {
		return err
	}

	if err := writeHeader(f, sheet, ds.Columns, styler.HeaderStyle); err != nil {
		return err
	}

	for i, rec := range ds.Rows {
		if err := writeRecord(f, styler, sheet, i+2, rec); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Debug("Wrote %s to %s", ds, path)
	return nil
}

func writeHeader(f *excelize.File, sheet string, columns []string, style int) error {
	for i, name := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write header %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header %s: %w", cell, err)
		}
	}
	return nil
}

func writeRecord(f *excelize.File, styler *Styler, sheet string, row int, rec model.Record) error {
	for i, v := range rec {
		if v.IsNull() {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v.Native()); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}

		style, err := styler.NumFmtStyle(v.Format)
		if err != nil {
			return fmt.Errorf("failed to create number format for cell %s: %w", cell, err)
		}
		if style == 0 {
			continue
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", cell, err)
		}
	}
	return nil
}
