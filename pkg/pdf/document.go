// Package pdf wraps pdfcpu document access behind the handle type the rest of
// the application works with: open with signature check, page count and
// dimensions, page content readback, close.
package pdf

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Signature is the magic number every accepted file must start with.
var Signature = []byte("%PDF")

// Document is an open PDF file. It owns the underlying pdfcpu context and is
// invalidated by Close or by any operation that rebuilds the file on disk.
type Document struct {
	ctx  *model.Context
	path string
	dims []types.Dim
}

// CheckSignature verifies that the file at path begins with %PDF.
func CheckSignature(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, len(Signature))
	if _, err := f.Read(buf); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, path)
	}
	if string(buf) != string(Signature) {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, path)
	}
	return nil
}

// Open opens a PDF file and returns a Document. Files that do not carry the
// %PDF signature are rejected before pdfcpu ever sees them.
func Open(path string) (*Document, error) {
	if err := CheckSignature(path); err != nil {
		return nil, err
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := api.ValidateContext(ctx); err != nil {
		return nil, fmt.Errorf("invalid PDF: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	return &Document{
		ctx:  ctx,
		path: path,
		dims: dims,
	}, nil
}

// Path returns the on-disk location the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	if d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// CheckIndex validates a zero-based page index against the document.
func (d *Document) CheckIndex(index int) error {
	if index < 0 || index >= d.PageCount() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidPageIndex, index, d.PageCount())
	}
	return nil
}

// PageDim returns the width and height in points of the page at the given
// zero-based index.
func (d *Document) PageDim(index int) (types.Dim, error) {
	if err := d.CheckIndex(index); err != nil {
		return types.Dim{}, err
	}
	return d.dims[index], nil
}

// PageContent returns the decoded content stream of the page at the given
// zero-based index.
func (d *Document) PageContent(index int) ([]byte, error) {
	if err := d.CheckIndex(index); err != nil {
		return nil, err
	}

	pageDict, _, _, err := d.ctx.PageDict(index+1, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dict: %w", err)
	}

	content, err := d.ctx.PageContent(pageDict, index+1)
	if err != nil {
		return nil, fmt.Errorf("failed to read page content: %w", err)
	}
	return content, nil
}

// Close releases resources associated with the document. The handle must not
// be used afterwards.
func (d *Document) Close() error {
	d.ctx = nil
	d.dims = nil
	return nil
}
