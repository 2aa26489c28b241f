package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/board"
)

// HeaderProps describes the top line.
type HeaderProps struct {
	ProjectName string
	Stats       board.Stats
	ThemeLabel  string
	Width       int
}

// RenderHeader renders the title, project name, progress and counts.
func RenderHeader(s Styles, props HeaderProps) string {
	left := s.StatusAccent.Render("tablero") + " " + s.Title.Render(props.ProjectName)

	st := props.Stats
	right := fmt.Sprintf("%s %d%%  %s  ",
		RenderProgress(s, st.Percentage, 16),
		st.Percentage,
		s.Subtle.Render(fmt.Sprintf("%d todo · %d doing · %d done · %d total",
			st.Todo, st.InProgress, st.Completed, st.Total)),
	)
	if props.ThemeLabel != "" {
		right += s.Subtle.Render("[" + props.ThemeLabel + "]")
	}

	gap := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Narrow terminal: drop the counts, keep the bar.
		right = fmt.Sprintf("%s %d%%", RenderProgress(s, st.Percentage, 10), st.Percentage)
		gap = max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderProgress renders a width-cell completion bar.
func RenderProgress(s Styles, percentage, width int) string {
	percentage = max(0, min(percentage, 100))
	filled := percentage * width / 100
	return s.ProgressFilled.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
