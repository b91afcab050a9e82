package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"data-cleaner/internal/config"
	"data-cleaner/internal/model"
)

// Document is the JSON run report
type Document struct {
	Input             string    `json:"input"`
	Output            string    `json:"output"`
	Sheet             string    `json:"sheet"`
	Column            string    `json:"column"`
	InitialRows       int       `json:"initial_rows"`
	FinalRows         int       `json:"final_rows"`
	RemovedRows       int       `json:"removed_rows"`
	RemovedRowNumbers []int     `json:"removed_row_numbers"`
	FinishedAt        time.Time `json:"finished_at"`
}

// NewDocument builds the report document from run stats
func NewDocument(stats *model.CleanStats) Document {
	removed := stats.RemovedRowNumbers
	if removed == nil {
		removed = []int{}
	}
	return Document{
		Input:             stats.InputPath,
		Output:            stats.OutputPath,
		Sheet:             stats.Sheet,
		Column:            stats.Column,
		InitialRows:       stats.InitialRows,
		FinalRows:         stats.FinalRows,
		RemovedRows:       stats.RemovedRows,
		RemovedRowNumbers: removed,
		FinishedAt:        stats.FinishedAt,
	}
}

// JSONExporter writes <output>_report.json
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(stats *model.CleanStats, cfg *config.Config) error {
	if err := ensureReportDir(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(NewDocument(stats), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	outFile := cfg.GetReportBase() + ".json"
	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
