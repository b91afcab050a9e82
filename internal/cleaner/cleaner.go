package cleaner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"data-cleaner/internal/dataset"
	"data-cleaner/internal/logger"
	"data-cleaner/internal/model"
	"data-cleaner/internal/ui"
)

// Options configures a single clean
type Options struct {
	InputPath  string
	OutputPath string

	// Progress is optional; a nil pipeline reports nothing.
	Progress *ui.Pipeline
}

// Phases returns the progress phases Clean advances through, in order
func Phases() []ui.Phase {
	return []ui.Phase{ui.PhaseLoading, ui.PhaseFiltering, ui.PhaseSaving}
}

// Clean loads the input workbook, drops every row whose text column is
// missing or blank, and writes the rest to the output workbook.
//
// Errors are *Error values:
//   - KindNotFound: input does not exist
//   - KindLoad: input could not be parsed
//   - KindSchema: header has no text column
//   - KindSave: output directory or file could not be written
//
// Nothing is created on disk unless loading and filtering succeed.
func Clean(opts Options) (*model.CleanStats, error) {
	progress := opts.Progress
	if progress == nil {
		progress = ui.NewPipeline(Phases())
		progress.Disable()
	}
	defer progress.Finish()

	// 1. Load the dataset
	loadBar := progress.NextPhase(1)

	if _, err := os.Stat(opts.InputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError(KindNotFound, opts.InputPath, nil)
		}
		return nil, newError(KindLoad, opts.InputPath, err)
	}

	ds, err := dataset.Load(opts.InputPath)
	if err != nil {
		return nil, newError(KindLoad, opts.InputPath, err)
	}
	loadBar.Increment()

	initialRows := ds.Len()
	logger.Info("📄 Loaded '%s': %s rows.", opts.InputPath, ui.FormatCount(initialRows))

	// 2. Drop rows with a missing or blank text value
	filterBar := progress.NextPhase(initialRows)
	cleaned, err := filter(ds, func() { filterBar.Increment() })
	if err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = opts.InputPath
		}
		return nil, err
	}

	stats := model.NewCleanStats(initialRows, cleaned.Len())
	stats.InputPath = opts.InputPath
	stats.OutputPath = opts.OutputPath
	stats.Sheet = ds.Sheet
	stats.Column = TextColumn
	stats.RemovedRowNumbers = RemovedRows(ds, cleaned)

	logger.Info("🗑️  Removed %s rows (Empty text or NaN).", ui.FormatCount(stats.RemovedRows))
	logger.Info("✅ Remaining rows: %s", ui.FormatCount(stats.FinalRows))
	logger.Debug("Removed source rows: %v", stats.RemovedRowNumbers)

	// 3. Save the cleaned dataset
	saveBar := progress.NextPhase(1)

	if dir := filepath.Dir(opts.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, newError(KindSave, opts.OutputPath, fmt.Errorf("failed to create output directory: %w", err))
		}
	}

	if err := dataset.Save(cleaned, opts.OutputPath); err != nil {
		return nil, newError(KindSave, opts.OutputPath, err)
	}
	saveBar.Increment()

	stats.FinishedAt = time.Now()
	logger.Info("💾 Saved cleaned data to: '%s'", opts.OutputPath)

	return stats, nil
}
