package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avolkov/pdfreveal/internal/config"
	"github.com/avolkov/pdfreveal/internal/engine"
	"github.com/avolkov/pdfreveal/internal/render"
	"github.com/avolkov/pdfreveal/internal/source"
	"github.com/avolkov/pdfreveal/internal/system"
)

var (
	flagOutput       string
	flagMode         string
	flagLineTol      float64
	flagSpaceUnit    float64
	flagMinSpaces    int
	flagWordTol      float64
	flagBaseline     float64
	flagConfig       string
	flagReport       string
	flagPreviewDir   string
	flagPreviewWidth int
	flagDPI          int
	flagStats        bool
	flagVerbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "pdfreveal [flags] <input.pdf>",
	Short: "Recover text hidden behind PDF redaction bars",
	Long: `pdfreveal reconstructs the text lines of a PDF from its embedded word
geometry and re-renders them, either side by side with the original pages or
as a white text overlay on top of them. Redaction bars that cover text only
visually, without removing it from the content stream, stop hiding anything.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	defaults := config.Default()

	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output PDF path (default: derived from the input and mode)")
	rootCmd.Flags().StringVar(&flagMode, "mode", defaults.Mode, "output mode: side_by_side or overlay_white")
	rootCmd.Flags().Float64Var(&flagLineTol, "line-tol", defaults.LineTol, "line grouping tolerance in points, try 1.5-4.0")
	rootCmd.Flags().Float64Var(&flagSpaceUnit, "space-unit", defaults.SpaceUnit, "points per inserted space (bigger means fewer spaces)")
	rootCmd.Flags().IntVar(&flagMinSpaces, "min-spaces", defaults.MinSpaces, "minimum spaces between words when a gap exists")
	rootCmd.Flags().Float64Var(&flagWordTol, "word-tol", defaults.WordTol, "horizontal gap in points that separates two words")
	rootCmd.Flags().Float64Var(&flagBaseline, "baseline-offset", defaults.BaselineOffset, "baseline nudge as a fraction of the font size")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file (flags override it)")
	rootCmd.Flags().StringVar(&flagReport, "report", "", "write reconstructed lines to this YAML file")
	rootCmd.Flags().StringVar(&flagPreviewDir, "preview-dir", "", "rasterize output pages as PNGs into this directory")
	rootCmd.Flags().IntVar(&flagPreviewWidth, "preview-width", defaults.PreviewWidth, "max preview width in pixels, 0 keeps native size")
	rootCmd.Flags().IntVar(&flagDPI, "dpi", defaults.DPI, "preview rasterization DPI")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print a performance report and append benchmark.log")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	system.InitResourceLimits()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.InputPath = args[0]

	// Fail on a missing input before any parsing starts.
	if _, err := os.Stat(cfg.InputPath); err != nil {
		return fmt.Errorf("input file not found: %s", cfg.InputPath)
	}

	mode, err := render.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = cfg.DefaultOutputPath()
	}

	src, err := source.Open(cfg.InputPath, cfg.WordTol)
	if err != nil {
		return err
	}
	defer src.Close()

	writer, err := render.NewWriter(mode, cfg.BaselineOffset)
	if err != nil {
		return err
	}

	if err := engine.NewProject(cfg, src, writer).Run(); err != nil {
		return err
	}

	fmt.Println(cfg.OutputPath)
	return nil
}

// buildConfig layers the run configuration: defaults, then the optional
// config file, then every flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = flagMode
	}
	if flags.Changed("line-tol") {
		cfg.LineTol = flagLineTol
	}
	if flags.Changed("space-unit") {
		cfg.SpaceUnit = flagSpaceUnit
	}
	if flags.Changed("min-spaces") {
		cfg.MinSpaces = flagMinSpaces
	}
	if flags.Changed("word-tol") {
		cfg.WordTol = flagWordTol
	}
	if flags.Changed("baseline-offset") {
		cfg.BaselineOffset = flagBaseline
	}
	if flags.Changed("report") {
		cfg.ReportPath = flagReport
	}
	if flags.Changed("preview-dir") {
		cfg.PreviewDir = flagPreviewDir
	}
	if flags.Changed("preview-width") {
		cfg.PreviewWidth = flagPreviewWidth
	}
	if flags.Changed("dpi") {
		cfg.DPI = flagDPI
	}
	if flags.Changed("stats") {
		cfg.ShowStats = flagStats
	}
	cfg.OutputPath = flagOutput

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}
