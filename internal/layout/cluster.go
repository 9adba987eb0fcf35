package layout

import (
	"math"
	"sort"
)

// ClusterWords groups the words of one page into visual text lines.
// Words are ordered by (top, x0) and folded left to right: a word joins the
// current line while its top is within lineTol of the line's running mean
// top, otherwise it starts a new line. Every word lands in exactly one
// cluster.
//
// The reference top is a running mean rather than a fixed anchor so that a
// long line with baseline jitter (sub/superscripts, rounding) stays grouped:
// the mean drifts with the line, and only the distance to the current mean
// has to stay within tolerance.
func ClusterWords(words []WordBox, lineTol float64) [][]WordBox {
	if len(words) == 0 {
		return nil
	}

	sorted := make([]WordBox, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Top != sorted[j].Top {
			return sorted[i].Top < sorted[j].Top
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var clusters [][]WordBox
	current := []WordBox{sorted[0]}
	ref := topMean{n: 1, mean: sorted[0].Top}

	for _, w := range sorted[1:] {
		if math.Abs(w.Top-ref.mean) <= lineTol {
			current = append(current, w)
			ref = ref.add(w.Top)
			continue
		}
		clusters = append(clusters, current)
		current = []WordBox{w}
		ref = topMean{n: 1, mean: w.Top}
	}

	return append(clusters, current)
}

// topMean is the explicit accumulator for the running mean of cluster tops.
type topMean struct {
	n    int
	mean float64
}

func (m topMean) add(v float64) topMean {
	n := m.n + 1
	return topMean{n: n, mean: (m.mean*float64(m.n) + v) / float64(n)}
}
