package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkov/pdfreveal/internal/layout"
)

func TestReportRoundTrip(t *testing.T) {
	r := New("doc.pdf")
	r.AddPage(1, []layout.ReconstructedLine{
		{Text: "Hello       World", X0: 100, X1: 200, Top: 50, FontSize: 12},
		{Text: "second line", X0: 100, X1: 180, Top: 64, FontSize: 12},
	})
	r.AddPage(2, nil)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, Write(r, path))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, "1.0", got.Version)
	require.Equal(t, "doc.pdf", got.Input)
	require.Len(t, got.Pages, 2)
	require.Equal(t, 1, got.Pages[0].Number)
	require.Len(t, got.Pages[0].Lines, 2)
	require.Equal(t, "Hello       World", got.Pages[0].Lines[0].Text)
	require.Equal(t, 12.0, got.Pages[0].Lines[0].FontSize)
	require.Empty(t, got.Pages[1].Lines)
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing report file")
	}
}
