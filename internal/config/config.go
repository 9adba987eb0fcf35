package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries every knob of a single run. The yaml tags back the optional
// --config file; flags override whatever the file sets.
type Config struct {
	InputPath  string `yaml:"-"`
	OutputPath string `yaml:"-"`

	Mode           string  `yaml:"mode"`
	LineTol        float64 `yaml:"line_tol"`
	SpaceUnit      float64 `yaml:"space_unit"`
	MinSpaces      int     `yaml:"min_spaces"`
	WordTol        float64 `yaml:"word_tol"`
	BaselineOffset float64 `yaml:"baseline_offset"`

	ReportPath   string `yaml:"report"`
	PreviewDir   string `yaml:"preview_dir"`
	PreviewWidth int    `yaml:"preview_width"`
	DPI          int    `yaml:"dpi"`
	Workers      int    `yaml:"workers"`
	ShowStats    bool   `yaml:"stats"`
}

func Default() *Config {
	return &Config{
		Mode:           "side_by_side",
		LineTol:        2.0,
		SpaceUnit:      3.0,
		MinSpaces:      1,
		WordTol:        3.0,
		BaselineOffset: 0.85,
		PreviewWidth:   1280,
		DPI:            150,
		Workers:        runtime.NumCPU(),
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultOutputPath derives the output file name from the input and mode:
// <base>_side_by_side.pdf or <base>_overlay_white.pdf next to the input.
func (c *Config) DefaultOutputPath() string {
	base := strings.TrimSuffix(c.InputPath, filepath.Ext(c.InputPath))
	return base + "_" + c.Mode + ".pdf"
}
