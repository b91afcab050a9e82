package report

import (
	"fmt"
	"html/template"
	"os"

	"data-cleaner/internal/config"
	"data-cleaner/internal/model"
	"data-cleaner/internal/ui"
)

// HTMLExporter writes <output>_report.html
type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

func (e *HTMLExporter) Export(stats *model.CleanStats, cfg *config.Config) error {
	if err := ensureReportDir(cfg); err != nil {
		return err
	}

	tmpl, err := template.New("clean-report").Funcs(template.FuncMap{
		"count": ui.FormatCount,
		"date": func(d Document) string {
			if d.FinishedAt.IsZero() {
				return ""
			}
			return d.FinishedAt.Format("2006-01-02 15:04:05")
		},
	}).Parse(ReportTemplate)
	if err != nil {
		return err
	}

	outFile := cfg.GetReportBase() + ".html"
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	return tmpl.Execute(f, NewDocument(stats))
}
