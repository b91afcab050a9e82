package dataset

import (
	"errors"
	"fmt"
	"strconv"

	"data-cleaner/internal/logger"
	"data-cleaner/internal/model"

	"github.com/xuri/excelize/v2"
)

// ErrNoSheets is returned when a workbook contains no worksheets
var ErrNoSheets = errors.New("workbook has no sheets")

// Load reads the first sheet of an .xlsx workbook into a Dataset.
// The first row is the header; every following row becomes a Record.
// Blank rows after the last non-blank row are dropped.
func Load(path string) (*model.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	sheet := sheets[0]
	logger.Debug("Reading sheet %q from %s", sheet, path)

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	var ds *model.Dataset
	var pending []int // blank rows held back until a non-blank row follows
	rowNum := 0

	for rows.Next() {
		rowNum++
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", rowNum, err)
		}

		// Row 1: header
		if ds == nil {
			ds = model.NewDataset(sheet, header(cols))
			continue
		}

		if isBlankRow(cols) {
			pending = append(pending, rowNum)
			continue
		}
		for _, n := range pending {
			ds.Append(model.Record{}, n)
		}
		pending = pending[:0]

		rec, err := readRecord(f, sheet, rowNum, cols)
		if err != nil {
			return nil, err
		}
		ds.Append(rec, rowNum)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate sheet %q: %w", sheet, err)
	}

	if ds == nil {
		// Completely empty sheet: no header, no rows
		ds = model.NewDataset(sheet, []string{})
	}

	logger.Debug("Loaded %s", ds)
	return ds, nil
}

func header(cols []string) []string {
	columns := make([]string, len(cols))
	copy(columns, cols)
	return columns
}

func isBlankRow(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}

func readRecord(f *excelize.File, sheet string, rowNum int, cols []string) (model.Record, error) {
	rec := make(model.Record, len(cols))
	for i, raw := range cols {
		v, err := cellValue(f, sheet, i+1, rowNum, raw)
		if err != nil {
			return nil, err
		}
		rec[i] = v
	}
	return rec, nil
}

// numFormat returns the number format applied to a cell through its style
func numFormat(f *excelize.File, sheet, cell string) (model.NumFormat, error) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return model.NumFormat{}, fmt.Errorf("failed to read style of cell %s: %w", cell, err)
	}
	if styleID == 0 {
		return model.NumFormat{}, nil
	}

	style, err := f.GetStyle(styleID)
	if err != nil {
		return model.NumFormat{}, fmt.Errorf("failed to read style %d of cell %s: %w", styleID, cell, err)
	}

	format := model.NumFormat{ID: style.NumFmt}
	if style.CustomNumFmt != nil {
		format.Code = *style.CustomNumFmt
	}
	return format, nil
}

// cellValue classifies a raw cell value using the cell's stored type.
// Numeric cells usually carry no type attribute, so untyped values that
// parse as a number are treated as numbers.
func cellValue(f *excelize.File, sheet string, col, row int, raw string) (model.Value, error) {
	if raw == "" {
		return model.Null(), nil
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Null(), err
	}
	typ, err := f.GetCellType(sheet, cell)
	if err != nil {
		return model.Null(), fmt.Errorf("failed to read cell %s: %w", cell, err)
	}

	switch typ {
	case excelize.CellTypeBool:
		return model.Bool(raw == "1" || raw == "TRUE" || raw == "true"), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset, excelize.CellTypeDate:
		if _, err := strconv.ParseFloat(raw, 64); err == nil {
			format, err := numFormat(f, sheet, cell)
			if err != nil {
				return model.Null(), err
			}
			return model.Number(raw).WithFormat(format), nil
		}
		return model.String(raw), nil
	default:
		return model.String(raw), nil
	}
}
