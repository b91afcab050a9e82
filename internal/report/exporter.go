package report

import (
	"fmt"
	"os"
	"strings"

	"data-cleaner/internal/config"
	"data-cleaner/internal/model"
)

// Exporter writes a run report for one clean
type Exporter interface {
	Export(stats *model.CleanStats, cfg *config.Config) error
}

// GetExporters returns a list of Exporters based on requested formats
func GetExporters(formats []string) []Exporter {
	exporters := []Exporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if fmtStr == "docx" {
			fmtStr = "word"
		}
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "json":
			exporters = append(exporters, NewJSONExporter())
		case "html":
			exporters = append(exporters, NewHTMLExporter())
		case "word":
			exporters = append(exporters, NewWordExporter())
		}
	}

	return exporters
}

func ensureReportDir(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.GetReportDir(), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	return nil
}
