package render

import (
	"fmt"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/avolkov/pdfreveal/internal/layout"
)

// Mode selects how reconstructed text is placed relative to the original.
type Mode string

const (
	// ModeSideBySide emits double-width pages: original on the left,
	// reconstructed text on the right.
	ModeSideBySide Mode = "side_by_side"
	// ModeOverlayWhite draws the reconstructed text in white directly on the
	// original page: invisible against the background, present in the text
	// layer.
	ModeOverlayWhite Mode = "overlay_white"
)

// ParseMode validates a mode string from the CLI or a config file.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSideBySide, ModeOverlayWhite:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want side_by_side or overlay_white)", s)
}

// Writer consumes pages with their reconstructed lines and produces the
// output document. Writers never influence clustering or synthesis; the
// pipeline is strictly one-way.
type Writer interface {
	AddPage(page *model.PdfPage, lines []layout.ReconstructedLine) error
	WriteToFile(path string) error
}

// NewWriter returns the writer for the given mode. baseline is the fraction
// of the font size used to nudge the draw position from the box top toward
// the text baseline (0.85 by default; empirical, tunable).
func NewWriter(mode Mode, baseline float64) (Writer, error) {
	font, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return nil, fmt.Errorf("load Helvetica: %w", err)
	}
	switch mode {
	case ModeSideBySide:
		return &sideBySideWriter{c: creator.New(), font: font, baseline: baseline}, nil
	case ModeOverlayWhite:
		return &overlayWriter{c: creator.New(), font: font, baseline: baseline}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

// textTop converts the baseline-anchored draw position of a line into the
// top-anchored position paragraphs use: baseline = top + size*baseline
// factor, minus one font size back up to the paragraph top. Clamped at the
// page top for degenerate geometry.
func textTop(line layout.ReconstructedLine, baseline float64) float64 {
	y := line.Top + line.FontSize*baseline - line.FontSize
	if y < 0 {
		y = 0
	}
	return y
}

// drawLine places one reconstructed line at its recovered position, shifted
// right by xOffset.
func drawLine(c *creator.Creator, font *model.PdfFont, line layout.ReconstructedLine,
	xOffset, baseline float64, color creator.Color) error {
	p := c.NewParagraph(line.Text)
	p.SetFont(font)
	p.SetFontSize(line.FontSize)
	p.SetColor(color)
	p.SetEnableWrap(false)
	p.SetPos(xOffset+line.X0, textTop(line, baseline))
	return c.Draw(p)
}
