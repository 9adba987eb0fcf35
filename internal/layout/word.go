package layout

// WordBox is a single extracted word with its bounding box in page points.
// The origin is the top-left corner of the page, y grows downward.
type WordBox struct {
	Text   string
	X0, X1 float64 // left and right edge, X0 <= X1
	Top    float64 // top edge of the bounding box (not the baseline)
	Bottom float64 // bottom edge, Top <= Bottom

	// FontSize is nil when the extractor did not report a size for the word.
	FontSize *float64
	FontName string
}

// ReconstructedLine is one rebuilt text line, immutable once produced.
// It is purely a rendering instruction: the text with synthesized spacing
// plus the geometry needed to place it back on the page.
type ReconstructedLine struct {
	Text     string
	X0, X1   float64
	Top      float64
	FontSize float64
}

// Options are the tuning knobs of the reconstruction pipeline.
type Options struct {
	LineTol   float64 // vertical clustering tolerance, points
	SpaceUnit float64 // points per synthesized space
	MinSpaces int     // floor on inserted spaces when a positive gap exists
}

// ReconstructPage rebuilds all text lines of one page from its unordered
// word boxes: cluster by vertical proximity, then synthesize each line.
// Lines come out in top-to-bottom, left-to-right order. Whitespace-only
// lines are dropped. Zero words yield zero lines.
func ReconstructPage(words []WordBox, opts Options) []ReconstructedLine {
	var lines []ReconstructedLine
	for _, cluster := range ClusterWords(words, opts.LineTol) {
		if line, ok := SynthesizeLine(cluster, opts); ok {
			lines = append(lines, line)
		}
	}
	return lines
}
