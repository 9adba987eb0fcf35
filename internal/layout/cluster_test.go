package layout

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func word(text string, x0, x1, top float64) WordBox {
	return WordBox{Text: text, X0: x0, X1: x1, Top: top, Bottom: top + 10}
}

func TestClusterWordsEmpty(t *testing.T) {
	if got := ClusterWords(nil, 2.0); got != nil {
		t.Errorf("Expected no clusters for empty input, got %d", len(got))
	}
}

func TestClusterWordsSingleWord(t *testing.T) {
	clusters := ClusterWords([]WordBox{word("lone", 10, 20, 100)}, 2.0)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 1)
	require.Equal(t, "lone", clusters[0][0].Text)
}

func TestClusterWordsSplitsBeyondTolerance(t *testing.T) {
	// 53 - 50 = 3 > 2.0: two separate lines.
	words := []WordBox{
		word("Hello", 100, 140, 50),
		word("World", 160, 200, 53),
	}
	clusters := ClusterWords(words, 2.0)
	require.Len(t, clusters, 2)
	require.Equal(t, "Hello", clusters[0][0].Text)
	require.Equal(t, "World", clusters[1][0].Text)
}

func TestClusterWordsSameLine(t *testing.T) {
	words := []WordBox{
		word("World", 160, 200, 50),
		word("Hello", 100, 140, 50),
	}
	clusters := ClusterWords(words, 2.0)
	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 2)
}

func TestClusterWordsRunningMeanDrift(t *testing.T) {
	// Each top is within tolerance of the running mean, but the last word is
	// further than lineTol from the first word's top. The drifting mean must
	// keep the whole sequence in one cluster.
	words := []WordBox{
		word("a", 0, 5, 50.0),
		word("b", 10, 15, 51.8), // mean 50.0 -> 50.9
		word("c", 20, 25, 52.6), // mean 50.9 -> 51.47
		word("d", 30, 35, 53.4), // |53.4-51.47| = 1.93 <= 2.0
	}
	clusters := ClusterWords(words, 2.0)
	require.Len(t, clusters, 1, "running mean should absorb gradual drift")
	require.Len(t, clusters[0], 4)
}

func TestClusterWordsCoverage(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var words []WordBox
	for i := 0; i < 200; i++ {
		top := float64(r.Intn(40)) * 12.0
		x := r.Float64() * 500
		words = append(words, word("w", x, x+20, top+r.Float64()))
	}

	clusters := ClusterWords(words, 2.0)

	total := 0
	seen := map[WordBox]int{}
	for _, c := range clusters {
		total += len(c)
		for _, w := range c {
			seen[w]++
		}
	}
	if total != len(words) {
		t.Fatalf("Expected %d words across clusters, got %d", len(words), total)
	}
	want := map[WordBox]int{}
	for _, w := range words {
		want[w]++
	}
	require.Equal(t, want, seen, "each word must appear exactly once")
}

func TestClusterWordsDeterminism(t *testing.T) {
	words := []WordBox{
		word("c", 200, 220, 50.5),
		word("a", 10, 40, 50),
		word("b", 100, 130, 50),
		word("d", 10, 40, 70),
		word("e", 60, 90, 69.5),
	}
	first := ClusterWords(words, 2.0)
	for i := 0; i < 10; i++ {
		if got := ClusterWords(words, 2.0); !reflect.DeepEqual(first, got) {
			t.Fatalf("Run %d produced different clusters", i)
		}
	}
}

func TestClusterWordsToleranceMonotonicity(t *testing.T) {
	// Bands of words 12pt apart with sub-point jitter, like a typical body
	// of text. Tight tolerances split inside a band, loose ones merge
	// neighboring bands; the cluster count can only shrink as tol grows.
	r := rand.New(rand.NewSource(42))
	var words []WordBox
	for band := 0; band < 20; band++ {
		for i := 0; i < 6; i++ {
			x := r.Float64() * 400
			words = append(words, word("w", x, x+15, float64(band)*12.0+r.Float64()*0.8))
		}
	}

	tols := []float64{0.5, 1.0, 2.0, 4.0, 8.0, 16.0}
	prev := -1
	for _, tol := range tols {
		n := len(ClusterWords(words, tol))
		if prev >= 0 && n > prev {
			t.Errorf("lineTol %.1f produced %d clusters, more than %d at a tighter tolerance", tol, n, prev)
		}
		prev = n
	}
}
