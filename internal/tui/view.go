package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/services/kanban"
	"github.com/thenoetrevino/tablero/internal/tui/components"
	"github.com/thenoetrevino/tablero/internal/tui/layers"
	"github.com/thenoetrevino/tablero/internal/tui/layout"
	"github.com/thenoetrevino/tablero/internal/tui/notifications"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = lipgloss.Color(m.theme.scheme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	v := m.boardView()
	l := m.layoutFor(v)
	s := m.theme.styles

	layerList := []*lipgloss.Layer{
		layers.At(m.renderBackground(), 0, 0, layers.ZBoard),
		layers.At(m.renderHeader(v), 0, 0, layers.ZBoard),
		layers.At(m.renderSearchLine(), 0, 1, layers.ZBoard),
		layers.At(m.renderFooter(v), 0, l.Footer.Y, layers.ZBoard),
	}

	if l.Sidebar.W > 0 {
		projectID := v.ProjectID
		layerList = append(layerList, layers.At(components.RenderSidebar(s, components.SidebarProps{
			Projects: m.projects,
			ActiveID: projectID,
			Width:    l.Sidebar.W,
			Height:   l.Sidebar.H,
		}), l.Sidebar.X, l.Sidebar.Y, layers.ZBoard))
	}

	layerList = append(layerList, m.boardLayers(v, l)...)

	if l.DockVisible {
		layerList = append(layerList, layers.At(m.renderDock(v, l), l.Dock.X, l.Dock.Y, layers.ZDock))
	}
	if v.Dragging {
		if ghost := m.ghostLayer(v); ghost != nil {
			layerList = append(layerList, ghost)
		}
	}
	if modal := m.modalLayer(); modal != nil {
		layerList = append(layerList, modal)
	}

	layerList = append(layerList, m.NotificationState.GetLayers(func(n state.Notification) string {
		return notifications.RenderFromState(m.theme.scheme, n)
	}, layout.HeaderHeight, layers.ZNotification)...)

	if m.confetti.Active() {
		layerList = append(layerList, components.ConfettiLayers(
			m.confetti.Particles(), m.UiState.Width(), m.UiState.Height(), layers.ZConfetti)...)
	}

	view.Content = lipgloss.NewCanvas(layerList...).Render()
	return view
}

// ============================================================================
// CHROME
// ============================================================================

func (m Model) renderBackground() string {
	line := strings.Repeat(" ", m.UiState.Width())
	rows := make([]string, m.UiState.Height())
	for i := range rows {
		rows[i] = line
	}
	return m.theme.styles.Background.Render(strings.Join(rows, "\n"))
}

func (m Model) renderHeader(v kanban.View) string {
	name := ""
	if p := m.getCurrentProject(); p != nil {
		name = p.Name
	}
	return components.RenderHeader(m.theme.styles, components.HeaderProps{
		ProjectName: name,
		Stats:       v.Stats,
		ThemeLabel:  m.theme.Label(),
		Width:       m.UiState.Width(),
	})
}

func (m Model) renderSearchLine() string {
	s := m.theme.styles
	switch {
	case m.UiState.Mode() == state.SearchMode:
		m.SearchState.Input.SetWidth(max(m.UiState.Width()-4, 10))
		return m.SearchState.Input.View()
	case m.SearchState.Active():
		return s.Indicator.Render("/ ") + s.Normal.Render(m.SearchState.Query()) +
			s.Subtle.Render("  (esc to clear)")
	}
	return s.Subtle.Render("/ to search")
}

func (m Model) renderFooter(v kanban.View) string {
	dragging := ""
	if v.Dragging {
		switch v.Active.Kind {
		case dnd.KindTask:
			dragging = v.Active.Task.Title
		case dnd.KindColumn:
			dragging = v.Active.Column.Title
		}
	}
	help := renderShortHelp(m.keys.shortHelp())
	if v.Dragging {
		help = "release to drop  esc cancel"
	}
	return components.RenderStatusBar(m.theme.styles, components.StatusBarProps{
		Width:       m.UiState.Width(),
		Help:        help,
		SearchQuery: m.SearchState.Query(),
		Dragging:    dragging,
	})
}

// ============================================================================
// BOARD
// ============================================================================

func (m Model) boardLayers(v kanban.View, l layout.Layout) []*lipgloss.Layer {
	s := m.theme.styles
	var out []*lipgloss.Layer

	if len(v.Columns) == 0 {
		empty := s.Subtle.Render("No columns yet. Press " + m.Config.KeyMappings.CreateColumn + " to add one.")
		return append(out, layers.At(empty, l.Board.X+layout.IndicatorWidth, l.Board.Y+1, layers.ZBoard))
	}

	if l.ScrollLeft {
		out = append(out, layers.At(s.Indicator.Render("◀"), l.Board.X, l.Board.Y+l.Board.H/2, layers.ZBoard))
	}
	if l.ScrollRight {
		out = append(out, layers.At(s.Indicator.Render("▶"), l.Board.X+l.Board.W-1, l.Board.Y+l.Board.H/2, layers.ZBoard))
	}

	over, hasOver := m.DragState.Over, m.DragState.HasOver && v.Dragging
	selCol := m.UiState.SelectedColumn()

	for _, box := range l.Columns {
		col := v.Columns[box.Index]
		colState := components.ColumnIdle
		switch {
		case v.Dragging && v.Active.Kind == dnd.KindColumn && v.Active.Column.ID == col.ID:
			colState = components.ColumnDragging
		case hasOver && over.ColumnID == col.ID:
			colState = components.ColumnHovered
		case !v.Dragging && box.Index == selCol:
			colState = components.ColumnSelected
		}
		out = append(out, layers.At(components.RenderColumn(s, components.ColumnProps{
			Column: col,
			Count:  len(v.TasksByColumn[col.ID]),
			Width:  box.Rect.W,
			Height: box.Rect.H,
			Above:  box.Above,
			Below:  box.Below,
			State:  colState,
		}), box.Rect.X, box.Rect.Y, layers.ZBoard))

		tasks := v.TasksByColumn[col.ID]
		for _, card := range box.Cards {
			task := tasks[card.Index]
			cardState := components.CardIdle
			switch {
			case v.Dragging && v.Active.Kind == dnd.KindTask && v.Active.Task.ID == task.ID:
				cardState = components.CardDragging
			case hasOver && over.Kind == dnd.TargetTask && over.TaskID == task.ID:
				cardState = components.CardHovered
			case !v.Dragging && box.Index == selCol && card.Index == m.UiState.SelectedTask():
				cardState = components.CardSelected
			}
			out = append(out, layers.At(components.RenderTask(s, task, card.Rect.W, cardState),
				card.Rect.X, card.Rect.Y, layers.ZCards))
		}
	}
	return out
}

// renderDock renders the column chips as one bar.
func (m Model) renderDock(v kanban.View, l layout.Layout) string {
	s := m.theme.styles
	over, hasOver := m.DragState.Over, m.DragState.HasOver && v.Dragging

	chips := make([]string, 0, len(l.DockItems))
	for _, item := range l.DockItems {
		col := v.Columns[item.Index]
		st := components.DockIdle
		switch {
		case hasOver && over.Kind == dnd.TargetDock && over.ColumnID == col.ID:
			st = components.DockHovered
		case item.Index == m.UiState.SelectedColumn():
			st = components.DockActive
		}
		chips = append(chips, components.RenderDockItem(s, col, len(v.TasksByColumn[col.ID]), item.Rect.W, st))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{" "}, chips...)...)
	if v.Dragging {
		hint := components.RenderDockHint(s)
		if lipgloss.Width(bar)+lipgloss.Width(hint)+2 <= l.Dock.W {
			bar = lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", hint)
		}
	}
	return s.Background.Width(l.Dock.W).Height(l.Dock.H).Render(bar)
}

// ghostLayer renders the floating copy of the dragged element under the
// pointer, offset by where it was grabbed and kept on screen.
func (m Model) ghostLayer(v kanban.View) *lipgloss.Layer {
	s := m.theme.styles
	var ghost string
	switch v.Active.Kind {
	case dnd.KindTask:
		task, ok := m.Board.Task(v.Active.Task.ID)
		if !ok {
			task = v.Active.Task
		}
		ghost = components.RenderTask(s, task, layout.ColumnWidth-2, components.CardGhost)
	case dnd.KindColumn:
		col := v.Active.Column
		ghost = components.RenderColumnGhost(s, col, len(v.TasksByColumn[col.ID]), layout.ColumnWidth)
	default:
		return nil
	}

	p, g := m.DragState.Pointer, m.DragState.Grab
	x := min(max(p.X-g.X, 0), max(m.UiState.Width()-lipgloss.Width(ghost), 0))
	y := min(max(p.Y-g.Y, 0), max(m.UiState.Height()-lipgloss.Height(ghost), 0))
	return layers.At(ghost, x, y, layers.ZGhost)
}

// ============================================================================
// MODALS
// ============================================================================

func (m Model) modalLayer() *lipgloss.Layer {
	s := m.theme.styles
	w, h := m.UiState.Width(), m.UiState.Height()

	var content string
	switch m.UiState.Mode() {
	case state.FormMode:
		if m.FormState.Form == nil {
			return nil
		}
		box := s.CreateBox
		switch m.FormState.Kind {
		case state.FormEditTask, state.FormRenameColumn, state.FormRenameProject:
			box = s.EditBox
		}
		content = box.Width(m.formWidth()).Render(m.FormState.Form.View())
	case state.ConfirmMode:
		if m.FormState.Form == nil {
			return nil
		}
		content = s.DeleteBox.Width(m.formWidth()).Render(m.FormState.Form.View())
	case state.HelpMode:
		content = s.HelpBox.Render(components.RenderHelp(s, m.keys.helpSections(), m.formWidth()))
	case state.DetailMode:
		task, ok := m.Board.Task(m.UiState.ViewingTask())
		if !ok {
			return nil
		}
		colName := task.ColumnID
		if col, ok := m.Board.Column(task.ColumnID); ok {
			colName = col.Title
		}
		content = components.RenderTaskView(s, components.TaskViewProps{
			Task:       task,
			ColumnName: colName,
			Width:      layers.ModalWidth(w, 50, 90),
			Height:     h - 2,
		})
	}
	return layers.CreateCenteredLayer(content, w, h)
}
