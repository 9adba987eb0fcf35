package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/avolkov/pdfreveal/internal/config"
	"github.com/avolkov/pdfreveal/internal/layout"
	"github.com/avolkov/pdfreveal/internal/preview"
	"github.com/avolkov/pdfreveal/internal/render"
	"github.com/avolkov/pdfreveal/internal/report"
	"github.com/avolkov/pdfreveal/internal/source"
)

// Project wires one run together: the input source, the reconstruction
// parameters and the output writer.
type Project struct {
	Config *config.Config
	Source source.Source
	Writer render.Writer
}

func NewProject(cfg *config.Config, src source.Source, w render.Writer) *Project {
	return &Project{Config: cfg, Source: src, Writer: w}
}

// Run processes the document page by page, strictly in order: extract word
// boxes, reconstruct lines, hand page and lines to the writer. Only after
// every page succeeded is the output document written; there is no partial
// output. Word-level anomalies are absorbed upstream; any error reaching
// this loop is fatal for the run.
func (p *Project) Run() error {
	startTime := time.Now()
	var extractTime, renderTime time.Duration

	pageCount := p.Source.PageCount()
	if pageCount == 0 {
		return fmt.Errorf("document has no pages")
	}

	opts := layout.Options{
		LineTol:   p.Config.LineTol,
		SpaceUnit: p.Config.SpaceUnit,
		MinSpaces: p.Config.MinSpaces,
	}

	var rep *report.Report
	if p.Config.ReportPath != "" {
		rep = report.New(p.Config.InputPath)
	}

	totalWords, totalLines := 0, 0
	for i := 0; i < pageCount; i++ {
		t0 := time.Now()
		words, err := p.Source.Words(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		lines := layout.ReconstructPage(words, opts)
		extractTime += time.Since(t0)

		t1 := time.Now()
		page, err := p.Source.Page(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		if err := p.Writer.AddPage(page, lines); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		renderTime += time.Since(t1)

		if rep != nil {
			rep.AddPage(i+1, lines)
		}
		totalWords += len(words)
		totalLines += len(lines)
		logrus.Debugf("page %d/%d: %d words -> %d lines", i+1, pageCount, len(words), len(lines))
	}

	if err := p.Writer.WriteToFile(p.Config.OutputPath); err != nil {
		return fmt.Errorf("write %s: %w", p.Config.OutputPath, err)
	}
	logrus.Infof("reconstructed %d lines from %d words across %d pages", totalLines, totalWords, pageCount)

	if rep != nil {
		if err := report.Write(rep, p.Config.ReportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logrus.Infof("line report written: %s", p.Config.ReportPath)
	}

	if p.Config.PreviewDir != "" {
		if err := preview.Render(p.Config.OutputPath, p.Config.PreviewDir,
			p.Config.DPI, p.Config.PreviewWidth, p.Config.Workers); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
		logrus.Infof("previews written: %s", p.Config.PreviewDir)
	}

	if p.Config.ShowStats {
		p.printStats(pageCount, totalLines, time.Since(startTime), extractTime, renderTime)
	}

	return nil
}

func (p *Project) printStats(pageCount, totalLines int, total, extract, draw time.Duration) {
	pps := float64(pageCount) / total.Seconds()
	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Total Time: %.2fs\n"+
			"Extraction: %.2fs\n"+
			"Rendering: %.2fs\n"+
			"Pages/s: %.2f\n"+
			"----------------------------\n",
		total.Seconds(), extract.Seconds(), draw.Seconds(), pps,
	)

	logEntry := fmt.Sprintf("[%s] Input: %s | Pages: %d | Lines: %d | Total: %.2fs | Extract: %.2fs | Render: %.2fs\n",
		time.Now().Format("2006-01-02 15:04:05"),
		filepath.Base(p.Config.InputPath),
		pageCount,
		totalLines,
		total.Seconds(),
		extract.Seconds(),
		draw.Seconds(),
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		logrus.Warnf("could not write benchmark.log: %v", err)
	}
}
