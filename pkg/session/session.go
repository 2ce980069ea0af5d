// Package session holds the state of the running application: the open
// document, the active page, the zoom factor, the merge list, and the move
// history. Every mutating operation goes through here, synchronously on the
// caller's goroutine.
package session

import (
	"fmt"
	"image"

	"github.com/AntWinner-y-y/PDF-Master/pkg/logger"
	"github.com/AntWinner-y-y/PDF-Master/pkg/merge"
	"github.com/AntWinner-y-y/PDF-Master/pkg/pagespec"
	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
	"github.com/AntWinner-y-y/PDF-Master/pkg/render"
	"github.com/AntWinner-y-y/PDF-Master/pkg/reorder"
	"github.com/AntWinner-y-y/PDF-Master/pkg/split"
)

// Session mediates all document operations for one user.
type Session struct {
	cfg      *Config
	renderer render.Renderer

	doc         *pdf.Document
	currentPage int
	zoom        float64
	ctrl        *reorder.Controller
	mergeList   []string
}

// New validates the config and creates a session with no document open.
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	return &Session{
		cfg:      cfg,
		renderer: render.NewFitzRenderer(),
		zoom:     1.0,
	}, nil
}

// HasDocument reports whether a document is open.
func (s *Session) HasDocument() bool {
	return s.doc != nil
}

// Document returns the open document handle, nil if none.
func (s *Session) Document() *pdf.Document {
	return s.doc
}

// Open loads the PDF at path, replacing any open document. The current page
// and zoom reset and the move history starts empty. On failure the session is
// left exactly as it was.
func (s *Session) Open(path string) error {
	doc, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed to open document", "path", path, "err", err)
		return err
	}

	if s.doc != nil {
		s.doc.Close()
	}
	s.doc = doc
	s.currentPage = 0
	s.zoom = 1.0
	s.ctrl = reorder.NewController(path)

	logger.Info("document opened", "path", path, "pages", doc.PageCount())
	return nil
}

// Close discards the open document and resets page, zoom, and history.
func (s *Session) Close() {
	if s.doc == nil {
		return
	}
	logger.Info("document closed", "path", s.doc.Path())
	s.doc.Close()
	s.doc = nil
	s.ctrl = nil
	s.currentPage = 0
	s.zoom = 1.0
}

// CurrentPage returns the active 0-based page index.
func (s *Session) CurrentPage() int {
	return s.currentPage
}

// NextPage advances the active page, staying in range.
func (s *Session) NextPage() {
	if s.doc != nil && s.currentPage < s.doc.PageCount()-1 {
		s.currentPage++
	}
}

// PrevPage moves the active page back, staying in range.
func (s *Session) PrevPage() {
	if s.doc != nil && s.currentPage > 0 {
		s.currentPage--
	}
}

// GoToPage jumps to a 1-based page number, as typed into the page box.
func (s *Session) GoToPage(oneBased int) error {
	if s.doc == nil {
		return fmt.Errorf("no document open")
	}
	if err := s.doc.CheckIndex(oneBased - 1); err != nil {
		return err
	}
	s.currentPage = oneBased - 1
	return nil
}

// requireDocument guards operations that need an open document.
func (s *Session) requireDocument() error {
	if s.doc == nil {
		return fmt.Errorf("no document open")
	}
	return nil
}

// reload reopens the document handle after its file was rebuilt on disk and
// keeps the active page in range.
func (s *Session) reload() error {
	path := s.doc.Path()
	s.doc.Close()

	doc, err := pdf.Open(path)
	if err != nil {
		s.doc = nil
		s.ctrl = nil
		return fmt.Errorf("failed to reload document: %w", err)
	}
	s.doc = doc
	if s.currentPage >= doc.PageCount() {
		s.currentPage = doc.PageCount() - 1
	}
	return nil
}

// MovePage moves the page at source to target (0-based), records the move,
// and reloads the handle.
func (s *Session) MovePage(source, target int) error {
	if err := s.requireDocument(); err != nil {
		return err
	}
	if err := s.doc.CheckIndex(source); err != nil {
		return err
	}
	if err := s.doc.CheckIndex(target); err != nil {
		return err
	}
	if source == target {
		return nil
	}

	if err := s.ctrl.ApplyMove(source, target); err != nil {
		logger.Error("page move failed", "source", source, "target", target, "err", err)
		return err
	}
	logger.Info("page moved", "source", source, "target", target)
	return s.reload()
}

// MovePageSpec parses 1-based "source,target" text and applies the move.
func (s *Session) MovePageSpec(text string) error {
	source, target, err := pagespec.ParseMove(text)
	if err != nil {
		return err
	}
	return s.MovePage(source, target)
}

// Undo reverts the most recent page move. It reports false when the history
// is exhausted.
func (s *Session) Undo() (bool, error) {
	if err := s.requireDocument(); err != nil {
		return false, err
	}
	done, err := s.ctrl.Undo()
	if err != nil || !done {
		return done, err
	}
	logger.Info("move undone")
	return true, s.reload()
}

// Redo replays the most recently undone page move. It reports false when
// there is nothing to redo.
func (s *Session) Redo() (bool, error) {
	if err := s.requireDocument(); err != nil {
		return false, err
	}
	done, err := s.ctrl.Redo()
	if err != nil || !done {
		return done, err
	}
	logger.Info("move redone")
	return true, s.reload()
}

// History returns the session's move history, nil when no document is open.
func (s *Session) History() *reorder.History {
	if s.ctrl == nil {
		return nil
	}
	return s.ctrl.History()
}

// Split parses a group spec like "1,4;2-3;5-6" and writes one file per group
// into "<base>_split" under outputDir. Returns the paths written.
func (s *Session) Split(specText, outputDir string) ([]string, error) {
	if err := s.requireDocument(); err != nil {
		return nil, err
	}

	groups, err := pagespec.ParseGroups(specText)
	if err != nil {
		return nil, err
	}

	paths, err := split.Split(s.doc, groups, outputDir)
	if err != nil {
		logger.Error("split failed", "spec", specText, "err", err)
		return nil, err
	}
	logger.Info("document split", "parts", len(paths))
	return paths, nil
}

// MergeList returns the paths queued for merging, in order.
func (s *Session) MergeList() []string {
	return append([]string(nil), s.mergeList...)
}

// AddToMergeList validates and appends source files, skipping paths that are
// already queued.
func (s *Session) AddToMergeList(paths ...string) error {
	for _, p := range paths {
		if err := pdf.CheckSignature(p); err != nil {
			return err
		}
		if s.inMergeList(p) {
			continue
		}
		s.mergeList = append(s.mergeList, p)
	}
	return nil
}

func (s *Session) inMergeList(path string) bool {
	for _, p := range s.mergeList {
		if p == path {
			return true
		}
	}
	return false
}

// RemoveFromMergeList drops the queued source at the given position.
func (s *Session) RemoveFromMergeList(i int) error {
	if i < 0 || i >= len(s.mergeList) {
		return fmt.Errorf("merge list index %d out of range [0, %d)", i, len(s.mergeList))
	}
	s.mergeList = append(s.mergeList[:i], s.mergeList[i+1:]...)
	return nil
}

// Merge concatenates the queued sources into outPath and clears the queue on
// success.
func (s *Session) Merge(outPath string) error {
	if err := merge.Merge(s.mergeList, outPath); err != nil {
		logger.Error("merge failed", "sources", len(s.mergeList), "err", err)
		return err
	}
	logger.Info("documents merged", "sources", len(s.mergeList), "out", outPath)
	s.mergeList = nil
	return nil
}

// RenderCurrentPage rasterizes the active page at the session zoom.
func (s *Session) RenderCurrentPage() (image.Image, error) {
	if err := s.requireDocument(); err != nil {
		return nil, err
	}
	return s.renderer.RenderPage(s.doc.Path(), s.currentPage, s.zoom)
}

// RenderThumbnails rasterizes every page at the configured thumbnail width.
func (s *Session) RenderThumbnails() ([]image.Image, error) {
	if err := s.requireDocument(); err != nil {
		return nil, err
	}
	return s.renderer.RenderThumbnails(s.doc, s.cfg.ThumbnailWidth, s.cfg.MaxParallelRenders)
}

// SetThumbnailWidth adjusts the thumbnail width within the configured bounds.
func (s *Session) SetThumbnailWidth(width int) {
	if width < s.cfg.ThumbnailMinWidth {
		width = s.cfg.ThumbnailMinWidth
	}
	if width > s.cfg.ThumbnailMaxWidth {
		width = s.cfg.ThumbnailMaxWidth
	}
	s.cfg.ThumbnailWidth = width
}

// ThumbnailWidth returns the current thumbnail width in pixels.
func (s *Session) ThumbnailWidth() int {
	return s.cfg.ThumbnailWidth
}
