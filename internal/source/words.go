package source

import (
	"math"
	"strings"

	"github.com/unidoc/unipdf/v3/extractor"

	"github.com/avolkov/pdfreveal/internal/layout"
)

// wordAccum accumulates consecutive text marks into one word: the union of
// their boxes (PDF coordinates, origin bottom-left) plus the font metadata
// of the first glyph.
type wordAccum struct {
	text               strings.Builder
	llx, lly, urx, ury float64
	fontSize           *float64
	fontName           string
}

func (w *wordAccum) box(pageHeight float64) layout.WordBox {
	return layout.WordBox{
		Text:     w.text.String(),
		X0:       w.llx,
		X1:       w.urx,
		Top:      pageHeight - w.ury,
		Bottom:   pageHeight - w.lly,
		FontSize: w.fontSize,
		FontName: w.fontName,
	}
}

// wordsFromMarks groups per-glyph text marks into word boxes. A word ends at
// a whitespace mark, at a horizontal gap wider than wordTol, or when the next
// mark has no vertical overlap with the word so far. Marks without glyphs
// (meta) and marks with non-finite geometry are skipped; the clustering
// stage downstream never sees degenerate numbers.
//
// Output coordinates are converted to a top-left origin: top = H - ury.
func wordsFromMarks(marks []extractor.TextMark, pageHeight, wordTol float64) []layout.WordBox {
	var words []layout.WordBox
	var cur *wordAccum

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.text.String()) != "" {
			words = append(words, cur.box(pageHeight))
		}
		cur = nil
	}

	for _, m := range marks {
		if m.Meta {
			continue
		}
		if strings.TrimSpace(m.Text) == "" {
			flush()
			continue
		}
		b := m.BBox
		if !finite(b.Llx) || !finite(b.Lly) || !finite(b.Urx) || !finite(b.Ury) {
			continue
		}

		if cur != nil {
			gap := b.Llx - cur.urx
			verticalMiss := b.Lly > cur.ury || b.Ury < cur.lly
			if gap > wordTol || gap < -wordTol || verticalMiss {
				flush()
			}
		}

		if cur == nil {
			cur = &wordAccum{llx: b.Llx, lly: b.Lly, urx: b.Urx, ury: b.Ury}
			if m.FontSize > 0 {
				size := m.FontSize
				cur.fontSize = &size
			}
			cur.fontName = markFontName(m)
		} else {
			cur.llx = math.Min(cur.llx, b.Llx)
			cur.lly = math.Min(cur.lly, b.Lly)
			cur.urx = math.Max(cur.urx, b.Urx)
			cur.ury = math.Max(cur.ury, b.Ury)
		}
		cur.text.WriteString(m.Text)
	}
	flush()

	return words
}

func markFontName(m extractor.TextMark) string {
	if m.Font == nil {
		return ""
	}
	d := m.Font.FontDescriptor()
	if d == nil || d.FontName == nil {
		return ""
	}
	return d.FontName.String()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
