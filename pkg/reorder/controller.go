package reorder

// Controller binds an Engine and a History to one document path, giving move
// operations standard linear undo/redo semantics. Undo replays the inverse
// move (target, source); redo replays the original. Neither pushes a record.
type Controller struct {
	engine  *Engine
	history *History
	path    string
}

// NewController returns a Controller for the document at path with an empty
// history.
func NewController(path string) *Controller {
	return &Controller{
		engine:  NewEngine(),
		history: NewHistory(),
		path:    path,
	}
}

// History exposes the underlying move log.
func (c *Controller) History() *History {
	return c.history
}

// ApplyMove performs the reorder and, on success, records it, discarding any
// redo branch. A move onto itself returns without touching the history.
func (c *Controller) ApplyMove(source, target int) error {
	if source == target {
		return nil
	}
	if err := c.engine.Reorder(c.path, source, target); err != nil {
		return err
	}
	c.history.Push(MoveRecord{Source: source, Target: target})
	return nil
}

// Undo reverts the move at the cursor by replaying it with swapped arguments.
// It reports false when there is nothing to undo. The cursor moves only after
// the physical reorder succeeds.
func (c *Controller) Undo() (bool, error) {
	rec, ok := c.history.Current()
	if !ok {
		return false, nil
	}
	if err := c.engine.Reorder(c.path, rec.Target, rec.Source); err != nil {
		return false, err
	}
	c.history.StepBack()
	return true, nil
}

// Redo replays the move just past the cursor. It reports false when there is
// nothing to redo. The cursor moves only after the physical reorder succeeds.
func (c *Controller) Redo() (bool, error) {
	rec, ok := c.history.Next()
	if !ok {
		return false, nil
	}
	if err := c.engine.Reorder(c.path, rec.Source, rec.Target); err != nil {
		return false, err
	}
	c.history.StepForward()
	return true, nil
}
