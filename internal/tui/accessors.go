package tui

import (
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
)

// boardView returns the filtered board for one frame.
func (m Model) boardView() kanban.View {
	return m.Board.View(m.SearchState.Query())
}

// layoutFor computes the geometry of v at the current terminal size.
func (m Model) layoutFor(v kanban.View) layout.Layout {
	return layout.Compute(layout.Params{
		Width:          m.UiState.Width(),
		Height:         m.UiState.Height(),
		SidebarOpen:    m.UiState.SidebarOpen(),
		Projects:       m.projects,
		Columns:        v.Columns,
		Tasks:          v.TasksByColumn,
		ViewportOffset: m.UiState.ViewportOffset(),
		TaskOffsets:    m.UiState.TaskScrollOffsets(),
		DraggingTask:   v.Dragging && v.Active.Kind == dnd.KindTask,
	})
}

// getCurrentColumn returns the selected column, or nil on an empty board.
func (m Model) getCurrentColumn() *models.Column {
	cols := m.boardView().Columns
	if len(cols) == 0 {
		return nil
	}
	idx := min(m.UiState.SelectedColumn(), len(cols)-1)
	return &cols[idx]
}

// getCurrentTasks returns the visible tasks of the selected column.
func (m Model) getCurrentTasks() []models.Task {
	v := m.boardView()
	if len(v.Columns) == 0 {
		return nil
	}
	idx := min(m.UiState.SelectedColumn(), len(v.Columns)-1)
	return v.TasksByColumn[v.Columns[idx].ID]
}

// getCurrentTask returns the selected task, or nil when the column is empty.
func (m Model) getCurrentTask() *models.Task {
	tasks := m.getCurrentTasks()
	if len(tasks) == 0 || m.UiState.SelectedTask() >= len(tasks) {
		return nil
	}
	return &tasks[m.UiState.SelectedTask()]
}

// getCurrentProject returns the loaded project.
func (m Model) getCurrentProject() *models.Project {
	id := m.Board.ProjectID()
	for i := range m.projects {
		if m.projects[i].ID == id {
			return &m.projects[i]
		}
	}
	return nil
}

// clampSelection keeps the selection inside the board after a mutation.
func (m *Model) clampSelection() {
	v := m.boardView()
	if len(v.Columns) == 0 {
		m.UiState.SetSelectedColumn(0)
		m.UiState.SetSelectedTask(0)
		return
	}
	col := min(m.UiState.SelectedColumn(), len(v.Columns)-1)
	m.UiState.SetSelectedColumn(col)
	tasks := v.TasksByColumn[v.Columns[col].ID]
	m.UiState.SetSelectedTask(max(min(m.UiState.SelectedTask(), len(tasks)-1), 0))
	m.ensureVisible()
}

// ensureVisible scrolls the viewport and the selected column's card list so
// the selection is on screen.
func (m *Model) ensureVisible() {
	v := m.boardView()
	l := m.layoutFor(v)
	m.UiState.EnsureSelectionVisible(l.ViewportSize)
	m.UiState.SetViewportOffset(layout.ClampOffset(m.UiState.ViewportOffset(), l.ViewportSize, len(v.Columns)))

	if col := m.getCurrentColumn(); col != nil {
		m.UiState.EnsureTaskVisible(col.ID, m.UiState.SelectedTask(), layout.VisibleCards(l.Board.H))
	}
}

// selectColumn moves the selection to the column with the given id.
func (m *Model) selectColumn(id string) {
	for i, col := range m.boardView().Columns {
		if col.ID == id {
			m.UiState.SetSelectedColumn(i)
			m.UiState.SetSelectedTask(0)
			m.ensureVisible()
			return
		}
	}
}

// selectTask moves the selection to the task with the given id. Tasks hidden
// by the filter leave the selection alone.
func (m *Model) selectTask(id string) {
	v := m.boardView()
	for ci, col := range v.Columns {
		for ti, t := range v.TasksByColumn[col.ID] {
			if t.ID == id {
				m.UiState.SetSelectedColumn(ci)
				m.UiState.SetSelectedTask(ti)
				m.ensureVisible()
				return
			}
		}
	}
}
