package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(c colors.ColorScheme, severity Severity, message string) string {
	st := severity.style(c)
	fg := lipgloss.Color(st.foreground)
	bg := lipgloss.Color(st.background)

	headerText := st.icon + " " + st.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(bg).
		Background(bg).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(c colors.ColorScheme, n state.Notification) string {
	switch n.Level {
	case state.LevelWarning:
		return Render(c, Warning, n.Message)
	case state.LevelError:
		return Render(c, Error, n.Message)
	default:
		return Render(c, Info, n.Message)
	}
}
