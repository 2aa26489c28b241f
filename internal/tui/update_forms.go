package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/tui/huhforms"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// formWidth is the width of every dialog box.
func (m Model) formWidth() int {
	return layers.ModalWidth(m.UiState.Width(), 40, 72)
}

// ============================================================================
// OPENING
// ============================================================================

// openTaskForm opens the task form. A nil task creates a new task in
// columnID.
func (m Model) openTaskForm(columnID string, task *models.Task) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Reset()
	fs.Kind = state.FormCreateTask
	fs.TargetID = columnID
	fs.Priority = string(models.PriorityMedium)
	if task != nil {
		fs.Kind = state.FormEditTask
		fs.TargetID = task.ID
		fs.Title = task.Title
		fs.Content = task.Content
		fs.Priority = string(task.Priority)
		fs.Color = task.Color
	}

	lines := max(m.UiState.Height()/3, 3)
	form := huhforms.CreateTaskForm(&fs.Title, &fs.Content, &fs.Priority, &fs.Color, task != nil, lines)
	return m.showForm(form, state.FormMode)
}

// openColumnForm opens the column name form; an empty id creates a column.
func (m Model) openColumnForm(id, title string) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Reset()
	fs.Kind = state.FormCreateColumn
	if id != "" {
		fs.Kind = state.FormRenameColumn
		fs.TargetID = id
		fs.Title = title
	}
	return m.showForm(huhforms.CreateColumnForm(&fs.Title, id != ""), state.FormMode)
}

// openProjectForm opens the project name form; an empty id creates a project.
func (m Model) openProjectForm(id, name string) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Reset()
	fs.Kind = state.FormCreateProject
	if id != "" {
		fs.Kind = state.FormRenameProject
		fs.TargetID = id
		fs.Title = name
	}
	return m.showForm(huhforms.CreateProjectForm(&fs.Title, id != ""), state.FormMode)
}

// openConfirm asks before deleting targetID.
func (m Model) openConfirm(kind state.ConfirmKind, targetID, question, detail string) (tea.Model, tea.Cmd) {
	fs := m.FormState
	fs.Reset()
	fs.ConfirmKind = kind
	fs.TargetID = targetID
	fs.ConfirmMessage = question
	return m.showForm(huhforms.CreateConfirmForm(question, detail, &fs.Confirm), state.ConfirmMode)
}

func (m Model) showForm(form *huh.Form, mode state.Mode) (tea.Model, tea.Cmd) {
	form = form.
		WithTheme(huhforms.CreateTableroTheme(m.theme.scheme)).
		WithWidth(m.formWidth() - 6).
		WithShowHelp(true)
	m.FormState.Form = form
	m.UiState.SetMode(mode)
	return m, form.Init()
}

// ============================================================================
// UPDATING
// ============================================================================

// updateForm forwards every message to the open form and applies the result
// once it completes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.FormState
	if fs.Form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		return m.closeForm()
	}

	model, cmd := fs.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		fs.Form = f
	}

	switch fs.Form.State {
	case huh.StateCompleted:
		if m.UiState.Mode() == state.ConfirmMode {
			m.applyConfirm()
		} else {
			m.applyForm()
		}
		_, closeCmd := m.closeForm()
		return m, tea.Batch(cmd, closeCmd)
	case huh.StateAborted:
		return m.closeForm()
	}
	return m, cmd
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}

// applyForm saves the values of a completed form.
func (m *Model) applyForm() {
	fs := m.FormState
	title := strings.TrimSpace(fs.Title)
	ctx, cancel := m.DbContext()
	defer cancel()

	switch fs.Kind {
	case state.FormCreateTask:
		task, err := m.Board.CreateTask(ctx, fs.TargetID, models.TaskInit{
			Title:    title,
			Content:  strings.TrimSpace(fs.Content),
			Priority: models.ParsePriority(fs.Priority),
			Color:    fs.Color,
		})
		if m.reportError(err, "Error creating task") {
			return
		}
		m.selectTask(task.ID)

	case state.FormEditTask:
		content := strings.TrimSpace(fs.Content)
		priority := models.ParsePriority(fs.Priority)
		color := fs.Color
		patch := models.TaskPatch{Content: &content, Priority: &priority, Color: &color}
		// A blank title keeps the old one.
		if title != "" {
			patch.Title = &title
		}
		if m.reportError(m.Board.UpdateTask(ctx, fs.TargetID, patch), "Error updating task") {
			return
		}
		m.selectTask(fs.TargetID)

	case state.FormCreateColumn:
		if title == "" {
			m.NotificationState.Add(state.LevelWarning, "Column name cannot be empty")
			return
		}
		col, err := m.Board.CreateColumn(ctx, title)
		if m.reportError(err, "Error creating column") {
			return
		}
		m.selectColumn(col.ID)

	case state.FormRenameColumn:
		if title == "" {
			m.NotificationState.Add(state.LevelWarning, "Column name cannot be empty")
			return
		}
		m.reportError(m.Board.RenameColumn(ctx, fs.TargetID, title), "Error renaming column")

	case state.FormCreateProject:
		p, err := m.Projects.Create(ctx, title)
		if m.reportError(err, "Error creating project") {
			return
		}
		m.reloadProjects()
		m.switchToProject(p.ID)

	case state.FormRenameProject:
		_, err := m.Projects.Rename(ctx, fs.TargetID, title)
		if m.reportError(err, "Error renaming project") {
			return
		}
		m.reloadProjects()
	}
}

// applyConfirm performs a confirmed deletion.
func (m *Model) applyConfirm() {
	fs := m.FormState
	if !fs.Confirm {
		return
	}
	ctx, cancel := m.DbContext()
	defer cancel()

	switch fs.ConfirmKind {
	case state.ConfirmDeleteTask:
		m.reportError(m.Board.DeleteTask(ctx, fs.TargetID), "Error deleting task")
	case state.ConfirmDeleteColumn:
		m.reportError(m.Board.DeleteColumn(ctx, fs.TargetID), "Error deleting column")
	case state.ConfirmDeleteProject:
		if m.reportError(m.Projects.Delete(ctx, fs.TargetID), "Error deleting project") {
			return
		}
		m.reloadProjects()
		active, err := m.Projects.Active(ctx)
		if m.reportError(err, "Error loading project") {
			return
		}
		if m.reportError(m.Board.SwitchProject(ctx, active.ID), "Error loading project") {
			return
		}
		m.SearchState.Clear()
		m.UiState.ResetSelection()
	}
	m.clampSelection()
}
