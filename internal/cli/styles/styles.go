// Package styles holds the lipgloss styles of the non-interactive commands.
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	ActiveStyle   lipgloss.Style // For the active project marker

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Dark())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	ActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg))
}

// Success renders a confirmation line.
func Success(s string) string {
	return SuccessStyle.Render("✓ " + s)
}

// Error renders an error label.
func Error(s string) string {
	return ErrorStyle.Render(s)
}

// Warning renders a warning label.
func Warning(s string) string {
	return WarningStyle.Render(s)
}

// Subtle renders secondary text.
func Subtle(s string) string {
	return SubtitleStyle.Render(s)
}
