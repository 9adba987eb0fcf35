package preview

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Render rasterizes every page of the written output document into
// dir/page_NNN.png at the given DPI, downscaled to maxWidth when the page is
// wider (0 keeps the native size). Runs after the pipeline has finished;
// pages are encoded concurrently with up to workers goroutines.
func Render(pdfPath, dir string, dpi, maxWidth, workers int) error {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", pdfPath, err)
	}
	pages := doc.NumPage()
	doc.Close()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if workers < 1 {
		workers = 1
	}
	if workers > pages {
		workers = pages
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i := 0; i < pages; i++ {
		g.Go(func() error {
			// Each goroutine opens its own document: fitz handles do not
			// support concurrent page rendering.
			d, err := fitz.New(pdfPath)
			if err != nil {
				return err
			}
			defer d.Close()

			img, err := d.ImageDPI(i, float64(dpi))
			if err != nil {
				return fmt.Errorf("render page %d: %w", i+1, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("page_%03d.png", i+1))
			if err := writePNG(path, img, maxWidth); err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			logrus.Debugf("preview written: %s", path)
			return nil
		})
	}

	return g.Wait()
}

// writePNG encodes img to path, scaled down to maxWidth when needed. Scaled
// buffers come from the shared image pool and go back after encoding.
func writePNG(path string, img image.Image, maxWidth int) error {
	var pooled *image.RGBA
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		pooled = scale(img, maxWidth)
		img = pooled
	}
	if pooled != nil {
		defer rgbaPool.put(pooled)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func scale(img image.Image, maxWidth int) *image.RGBA {
	b := img.Bounds()
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := rgbaPool.get(image.Rect(0, 0, maxWidth, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
