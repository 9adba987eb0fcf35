package render

import (
	"fmt"

	"github.com/unidoc/unipdf/v3/creator"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/avolkov/pdfreveal/internal/layout"
)

// overlayWriter re-emits the original pages with the reconstructed lines
// drawn on top in white: a viewer sees the untouched original, but the
// recovered characters are back in the extractable text layer above any
// redaction bars.
type overlayWriter struct {
	c        *creator.Creator
	font     *model.PdfFont
	baseline float64
}

func (w *overlayWriter) AddPage(page *model.PdfPage, lines []layout.ReconstructedLine) error {
	if page.MediaBox == nil {
		mbox, err := page.GetMediaBox()
		if err != nil {
			return fmt.Errorf("media box: %w", err)
		}
		page.MediaBox = mbox
	}

	if err := w.c.AddPage(page); err != nil {
		return fmt.Errorf("add page: %w", err)
	}

	white := creator.ColorRGBFromArithmetic(1, 1, 1)
	for _, line := range lines {
		if err := drawLine(w.c, w.font, line, 0, w.baseline, white); err != nil {
			return fmt.Errorf("draw line at %.1f,%.1f: %w", line.X0, line.Top, err)
		}
	}
	return nil
}

func (w *overlayWriter) WriteToFile(path string) error {
	return w.c.WriteToFile(path)
}
