package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/effects"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.confetti.Resize(msg.Width, msg.Height)
		m.clampSelection()
		return m, nil

	case confettiTickMsg:
		m.confetti.Step(effects.ConfettiFrame)
		if m.confetti.Active() {
			return m, confettiTick()
		}
		return m, nil

	case edgeScrollMsg:
		return m.handleEdgeScroll()

	case gradientTickMsg:
		m.theme.Refresh(m.clock())
		if m.theme.Preset() == themeGradient {
			return m, gradientTick()
		}
		return m, nil
	}

	// Forms need ALL messages
	if m.UiState.Mode() == state.FormMode || m.UiState.Mode() == state.ConfirmMode {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	case holdTickMsg:
		return m.handleHoldTick()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.UiState.Mode() == state.SearchMode {
		return m.updateSearchInput(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.handleQuit()
	}

	switch m.UiState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case state.DetailMode:
		return m.handleDetailMode(msg)
	}

	if m.Board.Dragging() {
		// Only Esc means anything mid-gesture.
		if key.Matches(msg, m.keys.Escape) {
			return m.cancelDrag()
		}
		return m, nil
	}
	return m.handleNormalMode(msg)
}

func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.EditTask):
		m.UiState.SetMode(state.NormalMode)
		return m.handleEditTask()
	case key.Matches(msg, m.keys.DeleteTask):
		m.UiState.SetMode(state.NormalMode)
		return m.handleDeleteTask()
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.ViewTask), key.Matches(msg, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
		m.UiState.SetViewingTask("")
	}
	return m, nil
}
