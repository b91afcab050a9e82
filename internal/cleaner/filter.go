package cleaner

import (
	"fmt"
	"strings"
	"unicode"

	"data-cleaner/internal/model"
)

// TextColumn is the column every row is checked on
const TextColumn = "text"

// missingMarkers are cell texts read as missing values, as pandas does by default
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "1.#IND": true, "1.#QNAN": true,
	"-NaN": true, "-nan": true, "NaN": true, "nan": true,
	"<NA>": true, "N/A": true, "n/a": true, "NA": true,
	"NULL": true, "null": true, "None": true,
}

// IsMissing reports whether a value is null or one of the missing-value markers.
// Markers match the whole cell text exactly.
func IsMissing(v model.Value) bool {
	if v.IsNull() {
		return true
	}
	if v.Kind == model.KindBool {
		return false
	}
	return missingMarkers[v.Text()]
}

// IsBlank reports whether a value is missing or empty after trimming whitespace
func IsBlank(v model.Value) bool {
	if IsMissing(v) {
		return true
	}
	return strings.TrimFunc(v.Text(), isSpace) == ""
}

// isSpace also accepts the information separators U+001C to U+001F
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Filter returns a new dataset holding only the rows whose text column is
// present and not blank. Row order and columns are preserved; the input is
// not modified. It fails with a KindSchema *Error if the header has no text column.
func Filter(ds *model.Dataset) (*model.Dataset, error) {
	return filter(ds, nil)
}

// filter calls step once per input row when step is non-nil
func filter(ds *model.Dataset, step func()) (*model.Dataset, error) {
	col := ds.ColumnIndex(TextColumn)
	if col < 0 {
		return nil, newError(KindSchema, "", fmt.Errorf("column %q not found in header %v", TextColumn, ds.Columns))
	}

	out := model.NewDataset(ds.Sheet, append([]string(nil), ds.Columns...))
	for i, rec := range ds.Rows {
		if !IsBlank(ds.Value(i, col)) {
			out.Rows = append(out.Rows, rec)
			out.SourceRows = append(out.SourceRows, sourceRow(ds, i))
		}
		if step != nil {
			step()
		}
	}
	return out, nil
}

// RemovedRows lists the source row numbers present in before but not in after.
// Both datasets must come from the same load, with after a filtered copy of before.
func RemovedRows(before, after *model.Dataset) []int {
	kept := make(map[int]bool, len(after.SourceRows))
	for _, n := range after.SourceRows {
		kept[n] = true
	}

	removed := make([]int, 0, before.Len()-after.Len())
	for i := range before.Rows {
		n := sourceRow(before, i)
		if !kept[n] {
			removed = append(removed, n)
		}
	}
	return removed
}

// sourceRow falls back to the row's position (header = row 1) when the
// dataset was built in memory without source row numbers
func sourceRow(ds *model.Dataset, i int) int {
	if i < len(ds.SourceRows) {
		return ds.SourceRows[i]
	}
	return i + 2
}
