package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind represents the type of a cell value
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindString:
		return "STRING"
	case KindNumber:
		return "NUMBER"
	case KindBool:
		return "BOOL"
	default:
		return "UNKNOWN"
	}
}

// NumFormat is a cell number format: a built-in format ID or a custom format code.
// The zero value is the General format.
type NumFormat struct {
	ID   int
	Code string
}

// IsGeneral reports whether the format leaves the value unformatted
func (f NumFormat) IsGeneral() bool {
	return f.ID == 0 && f.Code == ""
}

// Value is a single cell. Raw holds the cell content exactly as stored in the sheet.
// Format carries the number format of numeric cells, such as a date display format.
type Value struct {
	Kind   Kind
	Raw    string
	Format NumFormat
}

// Null returns a missing value
func Null() Value {
	return Value{Kind: KindNull}
}

// String returns a text value
func String(s string) Value {
	return Value{Kind: KindString, Raw: s}
}

// Number returns a numeric value from its raw representation
func Number(raw string) Value {
	return Value{Kind: KindNumber, Raw: raw}
}

// WithFormat returns a copy of the value carrying the given number format
func (v Value) WithFormat(f NumFormat) Value {
	v.Format = f
	return v
}

// Bool returns a boolean value
func Bool(b bool) Value {
	if b {
		return Value{Kind: KindBool, Raw: "1"}
	}
	return Value{Kind: KindBool, Raw: "0"}
}

// IsNull reports whether the value is missing
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// Text converts the value to its text form
func (v Value) Text() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindBool:
		if v.Raw == "1" || strings.EqualFold(v.Raw, "true") {
			return "TRUE"
		}
		return "FALSE"
	default:
		return v.Raw
	}
}

// Native converts the value into the Go type written back to a sheet cell.
// Numbers that fail to parse fall back to their raw text.
func (v Value) Native() interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindNumber:
		if n, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return n
		}
		return v.Raw
	case KindBool:
		return v.Text() == "TRUE"
	default:
		return v.Raw
	}
}

// Record is one data row, positionally aligned with Dataset.Columns
type Record []Value

// Dataset is a fully loaded sheet: a header row followed by data rows
type Dataset struct {
	Sheet   string   // Source sheet name
	Columns []string // Header row, in sheet order
	Rows    []Record // Data rows, in sheet order

	// SourceRows maps each row to its 1-based row number in the source sheet.
	// It stays aligned with Rows through filtering.
	SourceRows []int
}

// NewDataset creates an empty Dataset with the given header
func NewDataset(sheet string, columns []string) *Dataset {
	return &Dataset{
		Sheet:      sheet,
		Columns:    columns,
		Rows:       make([]Record, 0),
		SourceRows: make([]int, 0),
	}
}

// Append adds a row, padding or widening so every row matches the header width
func (d *Dataset) Append(rec Record, sourceRow int) {
	for len(d.Columns) < len(rec) {
		d.Columns = append(d.Columns, "")
		for i := range d.Rows {
			d.Rows[i] = append(d.Rows[i], Null())
		}
	}
	for len(rec) < len(d.Columns) {
		rec = append(rec, Null())
	}
	d.Rows = append(d.Rows, rec)
	d.SourceRows = append(d.SourceRows, sourceRow)
}

// Len returns the number of data rows
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the first column named exactly name, or -1
func (d *Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Value returns the cell at (row, col), or Null if the row is short
func (d *Dataset) Value(row, col int) Value {
	if row < 0 || row >= len(d.Rows) {
		return Null()
	}
	rec := d.Rows[row]
	if col < 0 || col >= len(rec) {
		return Null()
	}
	return rec[col]
}

// String returns a short description for logs
func (d *Dataset) String() string {
	return fmt.Sprintf("%s (%d columns, %d rows)", d.Sheet, len(d.Columns), len(d.Rows))
}
