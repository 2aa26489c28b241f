package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// handleSearchMode edits the filter live. Enter keeps the filter and returns
// to the board; Esc clears it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchState.Clear()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	case "enter":
		m.SearchState.Input.Blur()
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	}
	return m.updateSearchInput(msg)
}

func (m Model) updateSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.SearchState.Input, cmd = m.SearchState.Input.Update(msg)
	m.UiState.SetSelectedTask(0)
	m.clampSelection()
	return m, cmd
}
