// Package pdfmaster is the non-GUI core of the PDF Master application: a
// document session with page navigation and zoom, single-page reordering with
// linear undo/redo, group splitting, merging, and page rasterization.
package pdfmaster

import (
	"github.com/AntWinner-y-y/PDF-Master/pkg/merge"
	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
	"github.com/AntWinner-y-y/PDF-Master/pkg/reorder"
	"github.com/AntWinner-y-y/PDF-Master/pkg/session"
)

// Re-export types from the internal packages for the public API
type (
	Session    = session.Session
	Config     = session.Config
	Document   = pdf.Document
	MoveRecord = reorder.MoveRecord
	History    = reorder.History
)

// Sentinel errors surfaced at the application boundary
var (
	ErrInvalidSignature    = pdf.ErrInvalidSignature
	ErrInvalidPageIndex    = pdf.ErrInvalidPageIndex
	ErrInsufficientSources = merge.ErrInsufficientSources
)

// NewDefaultConfig returns the stock application settings.
func NewDefaultConfig() *Config {
	return session.NewDefaultConfig()
}

// NewSession creates a session with no document open.
func NewSession(cfg *Config) (*Session, error) {
	return session.New(cfg)
}

// Open opens a PDF file directly, without a session.
func Open(path string) (*Document, error) {
	return pdf.Open(path)
}

// Merge concatenates the given PDF files into outPath.
func Merge(paths []string, outPath string) error {
	return merge.Merge(paths, outPath)
}
