package layout

import (
	"math"
	"sort"
	"strings"
)

// minFontSize is the floor for the bbox-height fallback estimate. Degenerate
// boxes (zero or near-zero height) would otherwise produce unreadable output.
const minFontSize = 6.0

// SynthesizeLine rebuilds one text line from a cluster of word boxes.
// Words are re-sorted by x0 (clustering sorts by top, which may interleave x
// across the page), then joined left to right with whitespace proportional
// to the horizontal gap between them. The second return value is false when
// the cluster is empty or assembles to whitespace only; such lines are
// dropped from the page.
func SynthesizeLine(cluster []WordBox, opts Options) (ReconstructedLine, bool) {
	if len(cluster) == 0 {
		return ReconstructedLine{}, false
	}

	words := make([]WordBox, len(cluster))
	copy(words, cluster)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].X0 < words[j].X0
	})

	tops := make([]float64, len(words))
	for i, w := range words {
		tops[i] = w.Top
	}

	var b strings.Builder
	b.WriteString(words[0].Text)

	// rightEdge is the max x1 seen so far, not the previous word's x1:
	// extraction artifacts can hand us slightly overlapping or out-of-order
	// boxes, and gaps must be measured against the line's true right edge.
	rightEdge := words[0].X1

	for _, w := range words[1:] {
		gap := w.X0 - rightEdge
		switch {
		case gap > 0:
			n := int(math.Round(gap / math.Max(0.5, opts.SpaceUnit)))
			if n < opts.MinSpaces {
				n = opts.MinSpaces
			}
			b.WriteString(strings.Repeat(" ", n))
		case gap > -opts.SpaceUnit*0.3:
			// A small negative gap is kerning/rounding noise across a real
			// word break; anything deeper is a split glyph run.
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
		if w.X1 > rightEdge {
			rightEdge = w.X1
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return ReconstructedLine{}, false
	}

	return ReconstructedLine{
		Text:     text,
		X0:       words[0].X0,
		X1:       rightEdge,
		Top:      median(tops),
		FontSize: fontSize(words),
	}, true
}

// fontSize picks the representative size for a line: the median of the
// explicitly reported sizes when any word carries one, otherwise the median
// of the bounding-box heights with each height floored at minFontSize.
func fontSize(words []WordBox) float64 {
	var sizes []float64
	for _, w := range words {
		if w.FontSize != nil {
			sizes = append(sizes, *w.FontSize)
		}
	}
	if len(sizes) > 0 {
		return median(sizes)
	}

	heights := make([]float64, len(words))
	for i, w := range words {
		heights[i] = math.Max(minFontSize, w.Bottom-w.Top)
	}
	return median(heights)
}

// median returns the element at index len/2 of the sorted values. For even
// counts that is the upper of the two middle elements, never an average.
func median(vals []float64) float64 {
	s := make([]float64, len(vals))
	copy(s, vals)
	sort.Float64s(s)
	return s[len(s)/2]
}
