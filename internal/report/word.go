package report

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"data-cleaner/internal/config"
	"data-cleaner/internal/model"
	"data-cleaner/internal/ui"

	"github.com/nguyenthenguyen/docx"
)

// WordExporter writes <output>_report.docx
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(stats *model.CleanStats, cfg *config.Config) error {
	if err := ensureReportDir(cfg); err != nil {
		return err
	}

	tmpl, err := buildTemplate()
	if err != nil {
		return fmt.Errorf("failed to build report template: %w", err)
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(tmpl), int64(len(tmpl)))
	if err != nil {
		return fmt.Errorf("failed to read report template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()
	d := NewDocument(stats)

	date := ""
	if !d.FinishedAt.IsZero() {
		date = d.FinishedAt.Format("2006-01-02 15:04:05")
	}

	doc.Replace("{{Date}}", date, -1)
	doc.Replace("{{Input}}", d.Input, -1)
	doc.Replace("{{Output}}", d.Output, -1)
	doc.Replace("{{Sheet}}", d.Sheet, -1)
	doc.Replace("{{Column}}", d.Column, -1)
	doc.Replace("{{InitialRows}}", ui.FormatCount(d.InitialRows), -1)
	doc.Replace("{{RemovedRows}}", ui.FormatCount(d.RemovedRows), -1)
	doc.Replace("{{FinalRows}}", ui.FormatCount(d.FinalRows), -1)
	doc.Replace("{{RemovedRowNumbers}}", joinRows(d.RemovedRowNumbers), -1)

	outFile := cfg.GetReportBase() + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func joinRows(rows []int) string {
	if len(rows) == 0 {
		return "none"
	}
	parts := make([]string, len(rows))
	for i, n := range rows {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

var templateParts = []struct {
	name    string
	content string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Data Cleaning Report</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: {{Date}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Input: {{Input}} (sheet {{Sheet}})</w:t></w:r></w:p>
<w:p><w:r><w:t>Output: {{Output}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Column checked: {{Column}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Rows loaded: {{InitialRows}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Rows removed: {{RemovedRows}}</w:t></w:r></w:p>
<w:p><w:r><w:t>Rows remaining: {{FinalRows}}</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Removed sheet rows: {{RemovedRowNumbers}}</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// buildTemplate assembles a minimal .docx with {{Placeholder}} markers
func buildTemplate() ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, part := range templateParts {
		fw, err := w.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := fw.Write([]byte(part.content)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
