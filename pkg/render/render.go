// Package render rasterizes PDF pages for on-screen display. The production
// implementation goes through go-fitz (MuPDF); the Renderer interface keeps
// the session decoupled from the engine.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/sync/errgroup"

	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

// BaseDPI is the rendering resolution at zoom factor 1.0.
const BaseDPI = 72.0

// Renderer converts PDF pages to pixel buffers.
type Renderer interface {
	// RenderPage rasterizes the page at the given 0-based index at the
	// given zoom factor.
	RenderPage(path string, index int, zoom float64) (image.Image, error)

	// RenderThumbnails rasterizes every page of the document scaled to
	// the target pixel width, in page order.
	RenderThumbnails(doc *pdf.Document, width, parallel int) ([]image.Image, error)
}

// FitzRenderer renders through go-fitz. Documents are opened per call; a
// fitz handle is not safe for concurrent use.
type FitzRenderer struct{}

// NewFitzRenderer creates a MuPDF-backed renderer.
func NewFitzRenderer() *FitzRenderer {
	return &FitzRenderer{}
}

// RenderPage rasterizes one page at dpi = 72 * zoom.
func (r *FitzRenderer) RenderPage(path string, index int, zoom float64) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open PDF document: %w", err)
	}
	defer doc.Close()

	if index < 0 || index >= doc.NumPage() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", pdf.ErrInvalidPageIndex, index, doc.NumPage())
	}

	img, err := doc.ImageDPI(index, BaseDPI*zoom)
	if err != nil {
		return nil, fmt.Errorf("unable to render page %d: %w", index, err)
	}
	return img, nil
}

// RenderThumbnails renders all pages at a scale derived from each page's
// actual width. At most parallel pages render at once; the call returns only
// after every page is done.
func (r *FitzRenderer) RenderThumbnails(doc *pdf.Document, width, parallel int) ([]image.Image, error) {
	if parallel < 1 {
		parallel = 1
	}

	images := make([]image.Image, doc.PageCount())

	var g errgroup.Group
	g.SetLimit(parallel)

	for i := 0; i < doc.PageCount(); i++ {
		g.Go(func() error {
			dim, err := doc.PageDim(i)
			if err != nil {
				return err
			}
			zoom := float64(width) / dim.Width
			img, err := r.RenderPage(doc.Path(), i, zoom)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// SavePNG writes an image to path as PNG.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
