package report

import (
	"github.com/avolkov/pdfreveal/internal/layout"
)

// Report is the YAML dump of everything the pipeline reconstructed, for
// inspection without opening the output PDF.
type Report struct {
	Version string `yaml:"version"`
	Input   string `yaml:"input"`
	Pages   []Page `yaml:"pages"`
}

// Page holds the reconstructed lines of one page, 1-indexed.
type Page struct {
	Number int    `yaml:"number"`
	Lines  []Line `yaml:"lines"`
}

// Line mirrors layout.ReconstructedLine with stable YAML field names.
type Line struct {
	Text     string  `yaml:"text"`
	X0       float64 `yaml:"x0"`
	X1       float64 `yaml:"x1"`
	Top      float64 `yaml:"top"`
	FontSize float64 `yaml:"font_size"`
}

func New(input string) *Report {
	return &Report{Version: "1.0", Input: input}
}

// AddPage appends one page's lines in pipeline order.
func (r *Report) AddPage(number int, lines []layout.ReconstructedLine) {
	page := Page{Number: number, Lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		page.Lines = append(page.Lines, Line{
			Text:     l.Text,
			X0:       l.X0,
			X1:       l.X1,
			Top:      l.Top,
			FontSize: l.FontSize,
		})
	}
	r.Pages = append(r.Pages, page)
}
