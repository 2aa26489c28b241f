// Package dnd implements the drag-and-drop core: hit testing of drop zones,
// gesture activation, and the drag session state machine that reorders the
// board while a task or column is being dragged.
package dnd

import (
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Board is the subset of the board store the controller mutates.
type Board interface {
	Task(id string) (models.Task, bool)
	Column(id string) (models.Column, bool)
	ColumnIndex(id string) int
	NextInColumn(taskID string) string
	MoveTask(taskID, targetColumnID, beforeTaskID string) bool
	ReassignTask(taskID, columnID string) bool
	MoveColumn(columnID string, toIndex int) bool
	Snapshot() models.BoardData
	Restore(data models.BoardData)
}

// Result describes the outcome of a finished gesture.
type Result struct {
	Entity Entity
	// Changed is true when the gesture left the board different from how it
	// found it, either from hover reassignments or the final commit. Callers
	// persist when it is set.
	Changed bool
	// Celebrated is true when the task landed in the completion column.
	Celebrated bool
	// RolledBack is true when an invalid release restored the pre-drag board.
	RolledBack bool
}

// Controller is the drag session state machine. It is Idle when no session
// is active and Dragging otherwise; the session's entity kind distinguishes
// DraggingTask from DraggingColumn.
//
// Controller is not safe for concurrent use.
type Controller struct {
	board    Board
	feedback Feedback
	logger   *slog.Logger

	completionColumn string
	rollback         bool

	session *session
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithFeedback sets the haptic/celebration sink.
func WithFeedback(f Feedback) ControllerOption {
	return func(c *Controller) {
		if f != nil {
			c.feedback = f
		}
	}
}

// WithCompletionColumn sets the column whose entry is celebrated.
func WithCompletionColumn(columnID string) ControllerOption {
	return func(c *Controller) {
		if columnID != "" {
			c.completionColumn = columnID
		}
	}
}

// WithRollbackOnInvalidRelease restores the pre-drag board when a gesture
// ends outside every drop zone. By default hover reassignments are sticky.
func WithRollbackOnInvalidRelease(enabled bool) ControllerOption {
	return func(c *Controller) {
		c.rollback = enabled
	}
}

// WithControllerLogger sets the logger.
func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController creates an idle controller over board.
func NewController(board Board, opts ...ControllerOption) *Controller {
	c := &Controller{
		board:            board,
		feedback:         NopFeedback{},
		logger:           slog.Default(),
		completionColumn: models.DefaultCompletionColumn,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBoard swaps the board the controller operates on. Any active session is
// dropped without side effects.
func (c *Controller) SetBoard(board Board) {
	c.board = board
	c.session = nil
}

// Dragging reports whether a gesture is active.
func (c *Controller) Dragging() bool {
	return c.session != nil
}

// Active returns the dragged entity.
func (c *Controller) Active() (Entity, bool) {
	if c.session == nil {
		return Entity{}, false
	}
	return c.session.entity, true
}

// Start begins a gesture for e. It refuses to start while another gesture is
// active or when e no longer exists on the board.
func (c *Controller) Start(e Entity) bool {
	if c.session != nil {
		return false
	}

	s := &session{entity: e}
	switch e.Kind {
	case KindTask:
		t, ok := c.board.Task(e.Task.ID)
		if !ok {
			return false
		}
		s.entity.Task = t
		s.originColumn = t.ColumnID
	case KindColumn:
		col, ok := c.board.Column(e.Column.ID)
		if !ok {
			return false
		}
		s.entity.Column = col
	default:
		return false
	}

	if c.rollback {
		snap := c.board.Snapshot()
		s.snapshot = &snap
	}
	c.session = s
	c.feedback.Pulse(PulseGrab)
	c.logger.Debug("drag started", "kind", e.Kind, "id", e.ID())
	return true
}

// Hover processes one pointer-move tick. ok is false when the pointer is
// outside every zone. It reports whether the board changed.
func (c *Controller) Hover(t Target, ok bool) bool {
	if c.session == nil || !ok || c.session.entity.Kind != KindTask {
		return false
	}
	return c.hoverTask(t)
}

func (c *Controller) hoverTask(t Target) bool {
	s := c.session
	task, found := c.board.Task(s.entity.Task.ID)
	if !found {
		return false
	}

	var changed bool
	switch t.Kind {
	case TargetTask:
		if t.TaskID == task.ID {
			return false
		}
		over, found := c.board.Task(t.TaskID)
		if !found || over.ColumnID == task.ColumnID {
			// Same-column reorders wait for release.
			return false
		}
		before := over.ID
		if t.After {
			before = c.board.NextInColumn(over.ID)
		}
		changed = c.board.MoveTask(task.ID, over.ColumnID, before)
	case TargetColumn, TargetDock:
		if t.ColumnID == task.ColumnID {
			return false
		}
		changed = c.board.ReassignTask(task.ID, t.ColumnID)
	}

	if changed {
		s.mutated = true
		c.trackCompletion()
	}
	return changed
}

// trackCompletion arms the celebration when the task has just entered the
// completion column and the gesture did not start there, and disarms it when
// the task leaves again.
func (c *Controller) trackCompletion() {
	s := c.session
	task, ok := c.board.Task(s.entity.Task.ID)
	if !ok {
		return
	}
	inCompletion := task.ColumnID == c.completionColumn
	s.armed = inCompletion && s.originColumn != c.completionColumn
}

// Release ends the gesture over t (ok false: released outside every zone)
// and commits the final position.
func (c *Controller) Release(t Target, ok bool) Result {
	s := c.session
	if s == nil {
		return Result{}
	}
	defer func() { c.session = nil }()

	c.feedback.Pulse(PulseDrop)
	res := Result{Entity: s.entity}

	if !ok {
		if c.rollback && s.snapshot != nil && s.mutated {
			c.board.Restore(*s.snapshot)
			s.mutated = false
			s.armed = false
			res.RolledBack = true
			res.Changed = true
		}
	}

	var committed bool
	if ok {
		switch s.entity.Kind {
		case KindTask:
			c.hoverTask(t)
			committed = c.commitTask(t)
		case KindColumn:
			committed = c.commitColumn(t)
		}
	}

	if s.armed {
		c.feedback.Celebrate()
		res.Celebrated = true
	}

	res.Changed = res.Changed || s.mutated || committed
	c.logger.Debug("drag ended",
		"kind", s.entity.Kind,
		"id", s.entity.ID(),
		"changed", res.Changed,
		"celebrated", res.Celebrated,
	)
	return res
}

// Cancel ends the gesture as if released outside every zone.
func (c *Controller) Cancel() Result {
	return c.Release(Target{}, false)
}

// commitTask applies a same-column reorder against the final hover target.
func (c *Controller) commitTask(t Target) bool {
	if t.Kind != TargetTask {
		return false
	}
	task, ok := c.board.Task(c.session.entity.Task.ID)
	if !ok || t.TaskID == task.ID {
		return false
	}
	over, ok := c.board.Task(t.TaskID)
	if !ok || over.ColumnID != task.ColumnID {
		return false
	}

	before := over.ID
	if t.After {
		before = c.board.NextInColumn(over.ID)
		if before == task.ID {
			// Already directly after the hovered card.
			return false
		}
	}
	return c.board.MoveTask(task.ID, task.ColumnID, before)
}

func (c *Controller) commitColumn(t Target) bool {
	if t.Kind == TargetDock || t.ColumnID == "" {
		return false
	}
	id := c.session.entity.Column.ID
	if t.ColumnID == id {
		return false
	}
	to := c.board.ColumnIndex(t.ColumnID)
	if to == -1 {
		return false
	}
	return c.board.MoveColumn(id, to)
}
