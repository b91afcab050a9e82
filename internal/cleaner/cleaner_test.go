package cleaner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"data-cleaner/internal/testutil"
	"data-cleaner/internal/ui"
)

func TestCleanScenario(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "kertagosa.xlsx")
	output := filepath.Join(dir, "cleaned", "nested", "kertagosa_cleaned.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"id", "text"},
		{1, "Hello"},
		{2, "  "},
		{3, nil},
		{4, "World"},
		{5, ""},
	})

	stats, err := Clean(Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if stats.InitialRows != 5 || stats.FinalRows != 2 || stats.RemovedRows != 3 {
		t.Errorf("Stats = %d/%d/%d, expected 5/2/3", stats.InitialRows, stats.FinalRows, stats.RemovedRows)
	}
	if stats.Column != TextColumn || stats.Sheet != "Sheet1" {
		t.Errorf("Stats sheet/column = %s/%s", stats.Sheet, stats.Column)
	}
	expectedRemoved := []int{3, 4, 6}
	if len(stats.RemovedRowNumbers) != len(expectedRemoved) {
		t.Fatalf("RemovedRowNumbers = %v, expected %v", stats.RemovedRowNumbers, expectedRemoved)
	}
	for i := range expectedRemoved {
		if stats.RemovedRowNumbers[i] != expectedRemoved[i] {
			t.Errorf("RemovedRowNumbers = %v, expected %v", stats.RemovedRowNumbers, expectedRemoved)
			break
		}
	}

	_, rows := testutil.ReadWorkbook(t, output)
	expected := [][]string{
		{"id", "text"},
		{"1", "Hello"},
		{"4", "World"},
	}
	assertRows(t, rows, expected)
}

func TestCleanEmptyDataset(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"text", "label"},
	})

	stats, err := Clean(Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if stats.InitialRows != 0 || stats.FinalRows != 0 || stats.RemovedRows != 0 {
		t.Errorf("Stats = %+v, expected all zero", stats)
	}

	_, rows := testutil.ReadWorkbook(t, output)
	assertRows(t, rows, [][]string{{"text", "label"}})
}

func TestCleanAllWhitespace(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"label", "text"},
		{"a", " "},
		{"b", "\t"},
		{"c", "   \n"},
	})

	stats, err := Clean(Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if stats.FinalRows != 0 || stats.RemovedRows != 3 {
		t.Errorf("Stats = %+v, expected 0 remaining, 3 removed", stats)
	}

	_, rows := testutil.ReadWorkbook(t, output)
	assertRows(t, rows, [][]string{{"label", "text"}})
}

func TestCleanIdempotent(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	first := filepath.Join(dir, "first.xlsx")
	second := filepath.Join(dir, "second.xlsx")

	testutil.WriteSheet(t, input, "Comments", [][]interface{}{
		{"user", "text", "score", "note"},
		{"ana", "good service", 4.5, "ok"},
		{"budi", nil, 3, "no text"},
		{"citra", "  slow  ", 2, nil},
		{"dewi", "   ", 1, "blank"},
		{nil, "anonymous", nil, nil},
	})

	stats1, err := Clean(Options{InputPath: input, OutputPath: first})
	if err != nil {
		t.Fatalf("First clean failed: %v", err)
	}
	if stats1.FinalRows != 3 {
		t.Errorf("First pass kept %d rows, expected 3", stats1.FinalRows)
	}

	stats2, err := Clean(Options{InputPath: first, OutputPath: second})
	if err != nil {
		t.Fatalf("Second clean failed: %v", err)
	}
	if stats2.RemovedRows != 0 || stats2.FinalRows != stats1.FinalRows {
		t.Errorf("Second pass stats = %+v, expected nothing removed", stats2)
	}

	sheet1, rows1 := testutil.ReadWorkbook(t, first)
	sheet2, rows2 := testutil.ReadWorkbook(t, second)
	if sheet1 != "Comments" || sheet2 != "Comments" {
		t.Errorf("Sheet names = %s/%s, expected Comments", sheet1, sheet2)
	}
	assertRows(t, rows2, rows1)
	assertRows(t, rows1, [][]string{
		{"user", "text", "score", "note"},
		{"ana", "good service", "4.5", "ok"},
		{"citra", "  slow  ", "2"},
		{"", "anonymous"},
	})
}

func TestCleanMissingMarkers(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"text", "label"},
		{"Hello", "NA"},
		{"NA", "dropped"},
		{"None", "dropped"},
	})

	stats, err := Clean(Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if stats.InitialRows != 3 || stats.FinalRows != 1 || stats.RemovedRows != 2 {
		t.Errorf("Stats = %d/%d/%d, expected 3/1/2", stats.InitialRows, stats.FinalRows, stats.RemovedRows)
	}

	// Markers outside the text column pass through as written
	_, rows := testutil.ReadWorkbook(t, output)
	assertRows(t, rows, [][]string{
		{"text", "label"},
		{"Hello", "NA"},
	})
}

func TestCleanKeepsDateCells(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"text", "posted"},
		{"hello", time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"  ", time.Date(2023, 3, 16, 0, 0, 0, 0, time.UTC)},
		{"world", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	})

	stats, err := Clean(Options{InputPath: input, OutputPath: output})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if stats.FinalRows != 2 {
		t.Errorf("FinalRows = %d, expected 2", stats.FinalRows)
	}

	_, in := testutil.ReadWorkbook(t, input)
	_, out := testutil.ReadWorkbook(t, output)
	assertRows(t, out, [][]string{in[0], in[1], in[3]})

	// Dates must be shown as dates, not as serial numbers
	if out[1][1] == "45000" {
		t.Errorf("Date written as serial number: %v", out[1])
	}
}

func TestCleanNotFound(t *testing.T) {
	dir := testutil.TempDir(t)
	output := filepath.Join(dir, "out", "cleaned.xlsx")

	_, err := Clean(Options{InputPath: filepath.Join(dir, "missing.xlsx"), OutputPath: output})
	if err == nil {
		t.Fatal("Expected error for missing input")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf = %s, expected %s", KindOf(err), KindNotFound)
	}

	if _, statErr := os.Stat(filepath.Dir(output)); !os.IsNotExist(statErr) {
		t.Error("Output directory should not be created when input is missing")
	}
}

func TestCleanNotFoundLeavesExistingOutput(t *testing.T) {
	dir := testutil.TempDir(t)
	output := filepath.Join(dir, "cleaned.xlsx")

	original := []byte("previous run")
	if err := os.WriteFile(output, original, 0644); err != nil {
		t.Fatalf("Failed to seed output: %v", err)
	}

	_, err := Clean(Options{InputPath: filepath.Join(dir, "missing.xlsx"), OutputPath: output})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !bytes.Equal(content, original) {
		t.Error("Existing output file was modified")
	}
}

func TestCleanLoadError(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "corrupt.xlsx")
	output := filepath.Join(dir, "out", "cleaned.xlsx")

	if err := os.WriteFile(input, []byte("this is not a zip archive"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt input: %v", err)
	}

	_, err := Clean(Options{InputPath: input, OutputPath: output})
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("Expected ErrLoad, got %v", err)
	}

	var ce *Error
	if !errors.As(err, &ce) || ce.Err == nil {
		t.Error("LoadError should carry the underlying cause")
	}

	if _, statErr := os.Stat(filepath.Dir(output)); !os.IsNotExist(statErr) {
		t.Error("Output directory should not be created on load failure")
	}
}

func TestCleanSchemaError(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"id", "body"},
		{1, "Hello"},
	})

	_, err := Clean(Options{InputPath: input, OutputPath: output})
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("Expected ErrSchema, got %v", err)
	}

	var ce *Error
	if errors.As(err, &ce) && ce.Path != input {
		t.Errorf("Schema error path = %s, expected %s", ce.Path, input)
	}

	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("Output should not be written on schema failure")
	}
}

func TestCleanSaveError(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"text"},
		{"Hello"},
	})

	// A regular file where the output directory should be
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker: %v", err)
	}

	output := filepath.Join(blocker, "cleaned.xlsx")
	_, err := Clean(Options{InputPath: input, OutputPath: output})
	if !errors.Is(err, ErrSave) {
		t.Fatalf("Expected ErrSave, got %v", err)
	}
	if KindOf(err) != KindSave {
		t.Errorf("KindOf = %s, expected %s", KindOf(err), KindSave)
	}
}

func TestCleanWithProgress(t *testing.T) {
	dir := testutil.TempDir(t)
	input := filepath.Join(dir, "in.xlsx")
	output := filepath.Join(dir, "out.xlsx")

	testutil.WriteWorkbook(t, input, [][]interface{}{
		{"text"},
		{"a"},
		{"b"},
	})

	buf := &bytes.Buffer{}
	progress := ui.NewPipelineWithOutput(Phases(), buf)

	if _, err := Clean(Options{InputPath: input, OutputPath: output, Progress: progress}); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected progress output")
	}
}

func TestErrorMessage(t *testing.T) {
	err := newError(KindLoad, "dataset/kertagosa.xlsx", errors.New("zip: not a valid zip file"))
	expected := "failed to load input file: 'dataset/kertagosa.xlsx': zip: not a valid zip file"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}

	if errors.Is(err, ErrSave) {
		t.Error("Load error should not match ErrSave")
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf should be empty for foreign errors")
	}
}

func assertRows(t *testing.T, got, expected [][]string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Got %d rows %v, expected %d rows %v", len(got), got, len(expected), expected)
	}
	for i := range expected {
		if len(got[i]) != len(expected[i]) {
			t.Errorf("Row %d = %v, expected %v", i+1, got[i], expected[i])
			continue
		}
		for j := range expected[i] {
			if got[i][j] != expected[i][j] {
				t.Errorf("Row %d col %d = %q, expected %q", i+1, j+1, got[i][j], expected[i][j])
			}
		}
	}
}
