package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/services/project"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m.handleQuit()
	case key.Matches(msg, k.Help):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, k.Escape):
		return m.handleEscape()

	case key.Matches(msg, k.AddTask):
		return m.handleAddTask()
	case key.Matches(msg, k.EditTask):
		return m.handleEditTask()
	case key.Matches(msg, k.DeleteTask):
		return m.handleDeleteTask()
	case key.Matches(msg, k.ViewTask):
		return m.handleViewTask()
	case key.Matches(msg, k.MoveTaskLeft):
		return m.handleShiftTask(-1)
	case key.Matches(msg, k.MoveTaskRight):
		return m.handleShiftTask(1)
	case key.Matches(msg, k.MoveTaskUp):
		return m.handleReorderTask(-1)
	case key.Matches(msg, k.MoveTaskDown):
		return m.handleReorderTask(1)

	case key.Matches(msg, k.CreateColumn):
		return m.handleCreateColumn()
	case key.Matches(msg, k.RenameColumn):
		return m.handleRenameColumn()
	case key.Matches(msg, k.DeleteColumn):
		return m.handleDeleteColumn()
	case key.Matches(msg, k.MoveColumnLeft):
		return m.handleMoveColumn(-1)
	case key.Matches(msg, k.MoveColumnRight):
		return m.handleMoveColumn(1)

	case key.Matches(msg, k.CreateProject):
		return m.handleCreateProject()
	case key.Matches(msg, k.RenameProject):
		return m.handleRenameProject()
	case key.Matches(msg, k.DeleteProject):
		return m.handleDeleteProject()
	case key.Matches(msg, k.NextProject):
		return m.handleCycleProject(1)
	case key.Matches(msg, k.PrevProject):
		return m.handleCycleProject(-1)

	case key.Matches(msg, k.PrevColumn):
		return m.handleNavigateLeft()
	case key.Matches(msg, k.NextColumn):
		return m.handleNavigateRight()
	case key.Matches(msg, k.PrevTask):
		return m.handleNavigateUp()
	case key.Matches(msg, k.NextTask):
		return m.handleNavigateDown()
	case key.Matches(msg, k.ScrollLeft):
		return m.handleScroll(-1)
	case key.Matches(msg, k.ScrollRight):
		return m.handleScroll(1)

	case key.Matches(msg, k.Search):
		return m.handleEnterSearch()
	case key.Matches(msg, k.ToggleSidebar):
		m.UiState.ToggleSidebar()
		m.ensureVisible()
		return m, nil
	case key.Matches(msg, k.ToggleTheme):
		return m.handleToggleTheme()
	}

	return m, nil
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.Board.Dragging() {
		m.cancelDrag()
	}
	return m, tea.Quit
}

// handleEscape clears an applied filter.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	if m.SearchState.Active() {
		m.SearchState.Clear()
		m.clampSelection()
	}
	return m, nil
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedTask(0)
		m.ensureVisible()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() < len(m.boardView().Columns)-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedTask(0)
		m.ensureVisible()
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() > 0 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() - 1)
		m.ensureVisible()
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedTask() < len(m.getCurrentTasks())-1 {
		m.UiState.SetSelectedTask(m.UiState.SelectedTask() + 1)
		m.ensureVisible()
	}
	return m, nil
}

// handleScroll moves the column viewport without changing the selection
// unless it would fall off screen.
func (m Model) handleScroll(delta int) (tea.Model, tea.Cmd) {
	m.scrollViewport(delta)
	return m, nil
}

// scrollViewport shifts the viewport by delta columns and drags the
// selection along when it leaves the window. It reports whether the
// viewport moved.
func (m *Model) scrollViewport(delta int) bool {
	v := m.boardView()
	l := m.layoutFor(v)
	offset := layout.ClampOffset(l.ViewportOffset+delta, l.ViewportSize, len(v.Columns))
	if offset == l.ViewportOffset {
		return false
	}
	m.UiState.SetViewportOffset(offset)

	sel := m.UiState.SelectedColumn()
	switch {
	case sel < offset:
		m.UiState.SetSelectedColumn(offset)
		m.UiState.SetSelectedTask(0)
	case sel >= offset+l.ViewportSize:
		m.UiState.SetSelectedColumn(offset + l.ViewportSize - 1)
		m.UiState.SetSelectedTask(0)
	}
	return true
}

// ============================================================================
// TASKS
// ============================================================================

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		m.NotificationState.Add(state.LevelError, "Create a column first")
		return m, nil
	}
	return m.openTaskForm(col.ID, nil)
}

func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return m, nil
	}
	return m.openTaskForm(task.ColumnID, task)
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		m.NotificationState.Add(state.LevelInfo, "No task selected")
		return m, nil
	}
	return m.openConfirm(state.ConfirmDeleteTask, task.ID,
		fmt.Sprintf("Delete '%s'?", task.Title), "")
}

func (m Model) handleViewTask() (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	m.UiState.SetViewingTask(task.ID)
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

// handleShiftTask moves the selected task to the neighbouring column.
func (m Model) handleShiftTask(delta int) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	celebrate, err := m.Board.ShiftTask(ctx, task.ID, delta)
	if m.reportError(err, "Error moving task") {
		return m, nil
	}
	m.selectTask(task.ID)
	if celebrate {
		return m, m.celebrate()
	}
	return m, nil
}

// handleReorderTask moves the selected task one slot up or down.
func (m Model) handleReorderTask(delta int) (tea.Model, tea.Cmd) {
	task := m.getCurrentTask()
	if task == nil {
		return m, nil
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	if m.reportError(m.Board.ReorderTask(ctx, task.ID, delta), "Error moving task") {
		return m, nil
	}
	m.selectTask(task.ID)
	return m, nil
}

// ============================================================================
// COLUMNS
// ============================================================================

func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	return m.openColumnForm("", "")
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		return m, nil
	}
	return m.openColumnForm(col.ID, col.Title)
}

func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		return m, nil
	}
	// Count unfiltered tasks: the filter may hide some.
	count := len(m.Board.View("").TasksByColumn[col.ID])
	detail := ""
	if count > 0 {
		detail = fmt.Sprintf("This will also delete %d task(s).", count)
	}
	return m.openConfirm(state.ConfirmDeleteColumn, col.ID,
		fmt.Sprintf("Delete column '%s'?", col.Title), detail)
}

func (m Model) handleMoveColumn(delta int) (tea.Model, tea.Cmd) {
	col := m.getCurrentColumn()
	if col == nil {
		return m, nil
	}
	to := m.UiState.SelectedColumn() + delta
	if to < 0 || to >= len(m.boardView().Columns) {
		return m, nil
	}
	ctx, cancel := m.DbContext()
	defer cancel()
	if m.reportError(m.Board.MoveColumn(ctx, col.ID, to), "Error moving column") {
		return m, nil
	}
	m.UiState.SetSelectedColumn(to)
	m.ensureVisible()
	return m, nil
}

// ============================================================================
// PROJECTS
// ============================================================================

func (m Model) handleCreateProject() (tea.Model, tea.Cmd) {
	return m.openProjectForm("", "")
}

func (m Model) handleRenameProject() (tea.Model, tea.Cmd) {
	p := m.getCurrentProject()
	if p == nil {
		return m, nil
	}
	return m.openProjectForm(p.ID, p.Name)
}

func (m Model) handleDeleteProject() (tea.Model, tea.Cmd) {
	p := m.getCurrentProject()
	if p == nil {
		return m, nil
	}
	if len(m.projects) <= 1 {
		m.NotificationState.Add(state.LevelWarning, "Cannot delete the last project")
		return m, nil
	}
	return m.openConfirm(state.ConfirmDeleteProject, p.ID,
		fmt.Sprintf("Delete project '%s'?", p.Name), "All of its columns and tasks will be removed.")
}

func (m Model) handleCycleProject(delta int) (tea.Model, tea.Cmd) {
	if len(m.projects) < 2 {
		return m, nil
	}
	idx := 0
	if p := m.getCurrentProject(); p != nil {
		for i := range m.projects {
			if m.projects[i].ID == p.ID {
				idx = i
			}
		}
	}
	next := (idx + delta + len(m.projects)) % len(m.projects)
	m.switchToProject(m.projects[next].ID)
	return m, nil
}

// switchToProject selects a project, loads its board and resets the view.
func (m *Model) switchToProject(id string) {
	if id == m.Board.ProjectID() {
		return
	}
	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.Projects.Select(ctx, id); err != nil {
		m.reportError(err, "Error switching project")
		return
	}
	if err := m.Board.SwitchProject(ctx, id); err != nil {
		m.reportError(err, "Error loading project")
		return
	}
	m.SearchState.Clear()
	m.UiState.ResetSelection()
	m.reloadProjects()
}

// ============================================================================
// VIEW
// ============================================================================

func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.SearchMode)
	return m, m.SearchState.Input.Focus()
}

func (m Model) handleToggleTheme() (tea.Model, tea.Cmd) {
	next := m.theme.Next(m.clock())
	if m.Themes != nil {
		ctx, cancel := m.DbContext()
		defer cancel()
		if err := m.Themes.SetTheme(ctx, next); err != nil {
			m.Logger.Error("failed to save theme", "error", err)
			m.NotificationState.Add(state.LevelWarning, "Theme not saved")
		}
	}
	if next == themeGradient {
		return m, gradientTick()
	}
	return m, nil
}

// reportError logs err and turns it into a notification. It reports whether
// the operation failed; a save failure keeps the in-memory change, so it only
// warns and does not count as failed.
func (m Model) reportError(err error, message string) bool {
	switch {
	case err == nil:
		return false
	case kanban.IsSaveError(err):
		m.Logger.Error("board not saved", "error", err)
		m.NotificationState.Add(state.LevelWarning, "Changes not saved")
		return false
	case errors.Is(err, project.ErrLastProject):
		m.NotificationState.Add(state.LevelWarning, "Cannot delete the last project")
	default:
		m.Logger.Error(message, "error", err)
		m.NotificationState.Add(state.LevelError, message)
	}
	return true
}
