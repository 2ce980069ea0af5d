package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntWinner-y-y/PDF-Master/internal/testpdf"
	"github.com/AntWinner-y-y/PDF-Master/pkg/pagespec"
	"github.com/AntWinner-y-y/PDF-Master/pkg/pdf"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(NewDefaultConfig())
	require.NoError(t, err)
	return s
}

func openFixture(t *testing.T, s *Session, pages int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, testpdf.Write(path, pages))
	require.NoError(t, s.Open(path))
	return path
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.ZoomMin = -1

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestOpenResetsState(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 3)

	s.NextPage()
	s.ZoomIn()
	require.NoError(t, s.MovePage(0, 2))
	require.Equal(t, 1, s.History().Len())

	// Opening another document resets page, zoom, and history.
	openFixture(t, s, 2)
	assert.Equal(t, 0, s.CurrentPage())
	assert.Equal(t, 1.0, s.Zoom())
	assert.Equal(t, 0, s.History().Len())
}

func TestFailedOpenLeavesSessionUnchanged(t *testing.T) {
	s := newTestSession(t)
	path := openFixture(t, s, 3)
	s.NextPage()

	bad := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))

	err := s.Open(bad)
	assert.ErrorIs(t, err, pdf.ErrInvalidSignature)

	require.True(t, s.HasDocument())
	assert.Equal(t, path, s.Document().Path())
	assert.Equal(t, 1, s.CurrentPage())
}

func TestCloseDiscardsDocumentAndHistory(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 3)
	require.NoError(t, s.MovePage(0, 1))

	s.Close()
	assert.False(t, s.HasDocument())
	assert.Nil(t, s.History())
	assert.Equal(t, 1.0, s.Zoom())
}

func TestPageNavigationStaysInRange(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 3)

	s.PrevPage()
	assert.Equal(t, 0, s.CurrentPage())

	s.NextPage()
	s.NextPage()
	s.NextPage()
	assert.Equal(t, 2, s.CurrentPage())

	require.NoError(t, s.GoToPage(2))
	assert.Equal(t, 1, s.CurrentPage())

	assert.ErrorIs(t, s.GoToPage(4), pdf.ErrInvalidPageIndex)
	assert.ErrorIs(t, s.GoToPage(0), pdf.ErrInvalidPageIndex)
	assert.Equal(t, 1, s.CurrentPage())
}

func TestZoomStepsAndClamping(t *testing.T) {
	s := newTestSession(t)

	s.ZoomIn()
	assert.InDelta(t, 1.2, s.Zoom(), 1e-9)

	s.ZoomOut()
	assert.InDelta(t, 1.0, s.Zoom(), 1e-9)

	for i := 0; i < 20; i++ {
		s.ZoomIn()
	}
	assert.Equal(t, 5.0, s.Zoom())

	for i := 0; i < 40; i++ {
		s.ZoomOut()
	}
	assert.Equal(t, 0.1, s.Zoom())
}

func TestSetZoomPercent(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetZoomPercent("150%"))
	assert.InDelta(t, 1.5, s.Zoom(), 1e-9)
	assert.Equal(t, "150%", s.ZoomPercent())

	require.NoError(t, s.SetZoomPercent("80"))
	assert.InDelta(t, 0.8, s.Zoom(), 1e-9)

	// Out-of-range values clamp.
	require.NoError(t, s.SetZoomPercent("900%"))
	assert.Equal(t, 5.0, s.Zoom())

	// Garbage leaves the zoom unchanged.
	assert.Error(t, s.SetZoomPercent("huge"))
	assert.Equal(t, 5.0, s.Zoom())
}

func TestMovePageSpecAppliesMove(t *testing.T) {
	s := newTestSession(t)
	path := openFixture(t, s, 5)

	require.NoError(t, s.MovePageSpec("2,4"))

	order, err := testpdf.ReadOrder(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 2, 5}, order)
	assert.Equal(t, 5, s.Document().PageCount())
}

func TestMovePageSpecRejectsBadInput(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 3)

	assert.ErrorIs(t, s.MovePageSpec("nonsense"), pagespec.ErrSyntax)
	assert.ErrorIs(t, s.MovePageSpec("1,9"), pdf.ErrInvalidPageIndex)
	assert.ErrorIs(t, s.MovePageSpec("0,2"), pdf.ErrInvalidPageIndex)
	assert.Equal(t, 0, s.History().Len())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := newTestSession(t)
	path := openFixture(t, s, 4)

	require.NoError(t, s.MovePage(3, 0))
	moved, err := testpdf.ReadOrder(path)
	require.NoError(t, err)

	done, err := s.Undo()
	require.NoError(t, err)
	require.True(t, done)

	order, err := testpdf.ReadOrder(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order)

	done, err = s.Redo()
	require.NoError(t, err)
	require.True(t, done)

	order, err = testpdf.ReadOrder(path)
	require.NoError(t, err)
	assert.Equal(t, moved, order)
}

func TestUndoWithoutHistoryReportsFalse(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 2)

	done, err := s.Undo()
	require.NoError(t, err)
	assert.False(t, done)
}

func TestSplitSpec(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 3)
	outDir := t.TempDir()

	paths, err := s.Split("1-2;3", outDir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	order, err := testpdf.ReadOrder(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestSplitSpecRejectsOutOfRange(t *testing.T) {
	s := newTestSession(t)
	openFixture(t, s, 1)
	outDir := t.TempDir()

	_, err := s.Split("1,2", outDir)
	assert.ErrorIs(t, err, pdf.ErrInvalidPageIndex)

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestMergeListManagement(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, testpdf.Write(a, 1))
	require.NoError(t, testpdf.Write(b, 2))

	require.NoError(t, s.AddToMergeList(a, b))
	require.NoError(t, s.AddToMergeList(a)) // duplicate skipped
	assert.Equal(t, []string{a, b}, s.MergeList())

	require.NoError(t, s.RemoveFromMergeList(0))
	assert.Equal(t, []string{b}, s.MergeList())
	assert.Error(t, s.RemoveFromMergeList(5))
}

func TestMergeListRejectsNonPDF(t *testing.T) {
	s := newTestSession(t)
	bad := filepath.Join(t.TempDir(), "bad.pdf")
	require.NoError(t, os.WriteFile(bad, []byte("text"), 0o644))

	err := s.AddToMergeList(bad)
	assert.ErrorIs(t, err, pdf.ErrInvalidSignature)
	assert.Empty(t, s.MergeList())
}

func TestMergeClearsQueueOnSuccess(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, testpdf.Write(a, 2))
	require.NoError(t, testpdf.Write(b, 1))
	require.NoError(t, s.AddToMergeList(a, b))

	out := filepath.Join(dir, "merged.pdf")
	require.NoError(t, s.Merge(out))
	assert.Empty(t, s.MergeList())

	order, err := testpdf.ReadOrder(out)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, order)
}

func TestSetThumbnailWidthClamps(t *testing.T) {
	s := newTestSession(t)

	s.SetThumbnailWidth(50)
	assert.Equal(t, 100, s.ThumbnailWidth())

	s.SetThumbnailWidth(200)
	assert.Equal(t, 200, s.ThumbnailWidth())

	s.SetThumbnailWidth(1000)
	assert.Equal(t, 300, s.ThumbnailWidth())
}
