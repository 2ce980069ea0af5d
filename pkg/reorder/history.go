package reorder

// MoveRecord is one completed page move.
type MoveRecord struct {
	Source int
	Target int
}

// History is a linear undo/redo log of page moves. The cursor points at the
// most recently applied record, -1 when nothing is applied.
type History struct {
	records []MoveRecord
	cursor  int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push appends a record after the cursor, discarding any redo branch, and
// advances the cursor onto the new record.
func (h *History) Push(rec MoveRecord) {
	h.records = append(h.records[:h.cursor+1], rec)
	h.cursor = len(h.records) - 1
}

// CanUndo reports whether a record is available behind the cursor.
func (h *History) CanUndo() bool {
	return h.cursor >= 0
}

// CanRedo reports whether a previously undone record is available ahead of
// the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.records)-1
}

// Current returns the record at the cursor.
func (h *History) Current() (MoveRecord, bool) {
	if !h.CanUndo() {
		return MoveRecord{}, false
	}
	return h.records[h.cursor], true
}

// Next returns the record just past the cursor.
func (h *History) Next() (MoveRecord, bool) {
	if !h.CanRedo() {
		return MoveRecord{}, false
	}
	return h.records[h.cursor+1], true
}

// StepBack moves the cursor one record back.
func (h *History) StepBack() {
	if h.CanUndo() {
		h.cursor--
	}
}

// StepForward moves the cursor one record forward.
func (h *History) StepForward() {
	if h.CanRedo() {
		h.cursor++
	}
}

// Len returns the number of recorded moves.
func (h *History) Len() int {
	return len(h.records)
}

// Cursor returns the index of the most recently applied record, -1 if none.
func (h *History) Cursor() int {
	return h.cursor
}

// Reset drops all records, as happens when a document is opened or closed.
func (h *History) Reset() {
	h.records = nil
	h.cursor = -1
}
