package render

import (
	"fmt"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/avolkov/pdfreveal/internal/layout"
)

// sideBySideWriter composes double-width output pages: the original page is
// embedded vector-faithfully in the left half, the reconstructed lines are
// drawn in black in the right half at their recovered coordinates.
type sideBySideWriter struct {
	c        *creator.Creator
	font     *model.PdfFont
	baseline float64
}

func (w *sideBySideWriter) AddPage(page *model.PdfPage, lines []layout.ReconstructedLine) error {
	mbox, err := page.GetMediaBox()
	if err != nil {
		return fmt.Errorf("media box: %w", err)
	}
	pw, ph := mbox.Width(), mbox.Height()

	w.c.SetPageSize(creator.PageSize{2 * pw, ph})
	w.c.NewPage()

	block, err := creator.NewBlockFromPage(page)
	if err != nil {
		return fmt.Errorf("embed page: %w", err)
	}
	block.SetPos(0, 0)
	if err := w.c.Draw(block); err != nil {
		return fmt.Errorf("draw embedded page: %w", err)
	}

	black := creator.ColorRGBFromArithmetic(0, 0, 0)
	for _, line := range lines {
		if err := drawLine(w.c, w.font, line, pw, w.baseline, black); err != nil {
			return fmt.Errorf("draw line at %.1f,%.1f: %w", line.X0, line.Top, err)
		}
	}
	return nil
}

func (w *sideBySideWriter) WriteToFile(path string) error {
	return w.c.WriteToFile(path)
}
