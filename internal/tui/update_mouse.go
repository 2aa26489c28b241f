package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// ============================================================================
// PRESS
// ============================================================================

// handleMouseClick records a press. Cards and column headers arm the
// activator; the drag itself starts once the pointer has travelled far
// enough. Everything else acts on press.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.UiState.Mode() != state.NormalMode {
		return m, nil
	}
	m.NotificationState.Clear()

	p := dnd.Point{X: mouse.X, Y: mouse.Y}
	m.DragState.Pointer = p
	v := m.boardView()
	l := m.layoutFor(v)

	if item, ok := l.DockItemAt(p); ok {
		m.selectColumn(item.ColumnID)
		return m, nil
	}
	if item, ok := l.ProjectAt(p); ok {
		m.switchToProject(item.ProjectID)
		return m, nil
	}
	if l.NewProject.Contains(p) {
		return m.handleCreateProject()
	}

	if card, ok := l.CardAt(p); ok {
		task, found := m.Board.Task(card.TaskID)
		if !found {
			return m, nil
		}
		m.UiState.SetSelectedColumn(columnIndex(v.Columns, card.ColumnID))
		m.UiState.SetSelectedTask(card.Index)
		m.DragState.Grab = dnd.Point{X: p.X - card.Rect.X, Y: p.Y - card.Rect.Y}
		cmd := m.press(p, dnd.TaskEntity(task))
		return m, cmd
	}
	if box, ok := l.HeaderAt(p); ok {
		col, found := m.Board.Column(box.ColumnID)
		if !found {
			return m, nil
		}
		m.UiState.SetSelectedColumn(box.Index)
		m.UiState.SetSelectedTask(0)
		m.DragState.Grab = dnd.Point{X: p.X - box.Rect.X, Y: p.Y - box.Rect.Y}
		cmd := m.press(p, dnd.ColumnEntity(col))
		return m, cmd
	}
	if box, ok := l.ColumnAt(p); ok {
		m.UiState.SetSelectedColumn(box.Index)
		m.UiState.SetSelectedTask(0)
	}
	return m, nil
}

// press arms the activator for e. Touch presses need a timer to activate
// without motion.
func (m *Model) press(p dnd.Point, e dnd.Entity) tea.Cmd {
	pointer := m.Config.Drag.PointerType()
	m.DragState.Activator.Press(p, e, pointer, m.clock())
	if pointer == dnd.PointerTouch {
		return holdTick(m.Config.Drag.TouchDelay)
	}
	return nil
}

func columnIndex(cols []models.Column, id string) int {
	for i, c := range cols {
		if c.ID == id {
			return i
		}
	}
	return 0
}

// ============================================================================
// MOTION
// ============================================================================

// handleMouseMotion activates a pending press and feeds hover ticks to the
// board while a gesture runs.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	p := dnd.Point{X: mouse.X, Y: mouse.Y}
	m.DragState.Pointer = p

	if !m.Board.Dragging() {
		e, ok := m.DragState.Activator.Move(p, m.clock())
		if !ok || !m.Board.StartDrag(e) {
			return m, nil
		}
	}

	m.hoverAt(p)

	if m.DragState.EdgeScrolling {
		return m, nil
	}
	l := m.layoutFor(m.boardView())
	if l.EdgeDirection(p, m.Config.Drag.EdgeScrollMargin) != 0 {
		m.DragState.EdgeScrolling = true
		return m, edgeScrollTick()
	}
	return m, nil
}

// handleHoldTick starts a touch drag once the press has been held long
// enough without drifting.
func (m Model) handleHoldTick() (tea.Model, tea.Cmd) {
	if m.Board.Dragging() {
		return m, nil
	}
	e, ok := m.DragState.Activator.Tick(m.clock())
	if !ok || !m.Board.StartDrag(e) {
		return m, nil
	}
	m.hoverAt(m.DragState.Pointer)
	return m, nil
}

// resolveAt returns the drop target under p for the active gesture.
func (m Model) resolveAt(p dnd.Point) (dnd.Target, bool) {
	v := m.boardView()
	r := dnd.NewResolver()
	for _, z := range m.layoutFor(v).Zones(v.Active.Kind) {
		r.Add(z)
	}
	return r.Resolve(p, v.Active.Kind)
}

// hoverAt resolves p and feeds it to the board. A task that changed column
// keeps the selection.
func (m *Model) hoverAt(p dnd.Point) {
	t, ok := m.resolveAt(p)
	m.DragState.SetOver(t, ok)
	if !m.Board.Hover(t, ok) {
		return
	}
	if v := m.boardView(); v.Active.Kind == dnd.KindTask {
		m.selectTask(v.Active.Task.ID)
	}
}

// handleEdgeScroll scrolls the viewport one column while the dragged
// pointer rests near the board edge, then re-resolves the hover since the
// zones moved under it.
func (m Model) handleEdgeScroll() (tea.Model, tea.Cmd) {
	if !m.Board.Dragging() {
		m.DragState.EdgeScrolling = false
		return m, nil
	}
	p := m.DragState.Pointer
	dir := m.layoutFor(m.boardView()).EdgeDirection(p, m.Config.Drag.EdgeScrollMargin)
	if dir == 0 || !m.scrollViewport(dir) {
		m.DragState.EdgeScrolling = false
		return m, nil
	}
	m.hoverAt(p)
	return m, edgeScrollTick()
}

// ============================================================================
// RELEASE
// ============================================================================

func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	p := dnd.Point{X: mouse.X, Y: mouse.Y}
	m.DragState.Pointer = p

	if !m.Board.Dragging() {
		// A press that never activated is a click; it already selected on press.
		m.DragState.Activator.Release()
		return m, nil
	}

	t, ok := m.resolveAt(p)
	ctx, cancel := m.DbContext()
	defer cancel()
	res, err := m.Board.Release(ctx, t, ok)
	return m.finishDrag(res, err)
}

// cancelDrag ends the gesture as an invalid release.
func (m Model) cancelDrag() (tea.Model, tea.Cmd) {
	ctx, cancel := m.DbContext()
	defer cancel()
	res, err := m.Board.CancelDrag(ctx)
	return m.finishDrag(res, err)
}

func (m Model) finishDrag(res dnd.Result, err error) (tea.Model, tea.Cmd) {
	m.DragState.Reset()
	if m.reportError(err, "Error moving") {
		return m, nil
	}

	switch res.Entity.Kind {
	case dnd.KindTask:
		m.selectTask(res.Entity.Task.ID)
	case dnd.KindColumn:
		m.selectColumn(res.Entity.Column.ID)
	}
	if res.RolledBack {
		m.NotificationState.Add(state.LevelInfo, "Move undone")
	}
	if res.Celebrated {
		return m, m.celebrate()
	}
	return m, nil
}

// ============================================================================
// WHEEL
// ============================================================================

// handleMouseWheel scrolls the card list of the column under the pointer,
// or the column viewport for horizontal wheels. Wheels are ignored during a
// drag; only edge auto-scroll moves the board then.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.UiState.Mode() != state.NormalMode || m.Board.Dragging() {
		return m, nil
	}
	mouse := msg.Mouse()
	p := dnd.Point{X: mouse.X, Y: mouse.Y}

	switch mouse.Button {
	case tea.MouseWheelLeft:
		m.scrollViewport(-1)
		return m, nil
	case tea.MouseWheelRight:
		m.scrollViewport(1)
		return m, nil
	}

	v := m.boardView()
	l := m.layoutFor(v)
	box, ok := l.ColumnAt(p)
	if !ok {
		return m, nil
	}
	delta := 1
	if mouse.Button == tea.MouseWheelUp {
		delta = -1
	}
	visible := layout.VisibleCards(box.Rect.H)
	count := len(v.TasksByColumn[box.ColumnID])
	offset := m.UiState.TaskScrollOffset(box.ColumnID) + delta
	m.UiState.SetTaskScrollOffset(box.ColumnID, max(0, min(offset, count-visible)))
	return m, nil
}
