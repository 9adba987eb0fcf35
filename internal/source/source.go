package source

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"

	"github.com/avolkov/pdfreveal/internal/layout"
)

// Source hands the pipeline everything it needs from the input document:
// page geometry, word boxes and the page objects themselves for re-embedding.
type Source interface {
	PageCount() int
	Words(index int) ([]layout.WordBox, error)
	Page(index int) (*model.PdfPage, error)
	Close() error
}

// PDFSource reads the input through unipdf. Word boxes are assembled from
// the extractor's text marks; see words.go.
type PDFSource struct {
	file    *os.File
	reader  *model.PdfReader
	pages   int
	wordTol float64
}

// Open validates the document structurally and opens it for extraction.
// wordTol is the horizontal gap (points) that separates two words when
// grouping text marks. The caller owns the returned source and must Close it.
func Open(path string, wordTol float64) (*PDFSource, error) {
	if err := api.ValidateFile(path, pdfcpumodel.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := model.NewPdfReaderLazy(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	pages, err := reader.GetNumPages()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("page count of %s: %w", path, err)
	}

	return &PDFSource{file: f, reader: reader, pages: pages, wordTol: wordTol}, nil
}

func (s *PDFSource) PageCount() int {
	return s.pages
}

// Page returns the zero-indexed page object. The media box is materialized
// on the page so downstream consumers see it even when it is inherited from
// the page tree.
func (s *PDFSource) Page(index int) (*model.PdfPage, error) {
	page, err := s.reader.GetPage(index + 1)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", index+1, err)
	}
	mbox, err := page.GetMediaBox()
	if err != nil {
		return nil, fmt.Errorf("page %d media box: %w", index+1, err)
	}
	if page.MediaBox == nil {
		page.MediaBox = mbox
	}
	return page, nil
}

// Words extracts the word boxes of one page in top-left-origin coordinates.
// A page without extractable text yields an empty slice, not an error.
func (s *PDFSource) Words(index int) ([]layout.WordBox, error) {
	page, err := s.Page(index)
	if err != nil {
		return nil, err
	}

	ex, err := extractor.New(page)
	if err != nil {
		return nil, fmt.Errorf("page %d extractor: %w", index+1, err)
	}
	pageText, _, _, err := ex.ExtractPageText()
	if err != nil {
		return nil, fmt.Errorf("page %d text: %w", index+1, err)
	}

	return wordsFromMarks(pageText.Marks().Elements(), page.MediaBox.Height(), s.wordTol), nil
}

func (s *PDFSource) Close() error {
	return s.file.Close()
}
