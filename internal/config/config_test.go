package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.Equal(t, "side_by_side", cfg.Mode)
	require.Equal(t, 2.0, cfg.LineTol)
	require.Equal(t, 3.0, cfg.SpaceUnit)
	require.Equal(t, 1, cfg.MinSpaces)
	require.Equal(t, 3.0, cfg.WordTol)
	require.Equal(t, 0.85, cfg.BaselineOffset)
	if cfg.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.Workers)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		mode  string
		want  string
	}{
		{"report.pdf", "side_by_side", "report_side_by_side.pdf"},
		{"report.pdf", "overlay_white", "report_overlay_white.pdf"},
		{"/tmp/a.b/doc.PDF", "side_by_side", "/tmp/a.b/doc_side_by_side.pdf"},
		{"noext", "overlay_white", "noext_overlay_white.pdf"},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.InputPath = tt.input
		cfg.Mode = tt.mode
		if got := cfg.DefaultOutputPath(); got != tt.want {
			t.Errorf("DefaultOutputPath(%q, %s) = %q, want %q", tt.input, tt.mode, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfreveal.yaml")
	data := []byte("mode: overlay_white\nline_tol: 3.5\nmin_spaces: 2\nstats: true\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "overlay_white", cfg.Mode)
	require.Equal(t, 3.5, cfg.LineTol)
	require.Equal(t, 2, cfg.MinSpaces)
	require.True(t, cfg.ShowStats)

	// Untouched keys keep their defaults.
	require.Equal(t, 3.0, cfg.SpaceUnit)
	require.Equal(t, 0.85, cfg.BaselineOffset)
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
