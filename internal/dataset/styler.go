package dataset

import (
	"data-cleaner/internal/model"

	"github.com/xuri/excelize/v2"
)

// Styler handles Excel styling for written datasets
type Styler struct {
	File *excelize.File

	HeaderStyle int

	numFmtStyles map[model.NumFormat]int
}

// NewStyler creates a new Styler and registers the header style
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f, numFmtStyles: make(map[model.NumFormat]int)}
	var err error

	// Header Style: Bold, thin border, centered (same look as a pandas export)
	s.HeaderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// NumFmtStyle returns a style applying the number format, registering it on first use.
// The General format needs no style and returns 0.
func (s *Styler) NumFmtStyle(format model.NumFormat) (int, error) {
	if format.IsGeneral() {
		return 0, nil
	}
	if id, ok := s.numFmtStyles[format]; ok {
		return id, nil
	}

	style := &excelize.Style{NumFmt: format.ID}
	if format.Code != "" {
		code := format.Code
		style.CustomNumFmt = &code
	}
	id, err := s.File.NewStyle(style)
	if err != nil {
		return 0, err
	}
	s.numFmtStyles[format] = id
	return id, nil
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
}
