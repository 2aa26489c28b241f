package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ColumnState selects the column frame.
type ColumnState int

const (
	ColumnIdle ColumnState = iota
	ColumnSelected
	ColumnHovered  // drop target under the pointer
	ColumnDragging // the column being dragged
)

// ColumnProps describes one column frame. Cards are drawn separately on top.
type ColumnProps struct {
	Column models.Column
	Count  int
	Width  int
	Height int
	Above  int
	Below  int
	State  ColumnState
}

// RenderColumn renders a column frame with its title and scroll indicators
//
// Layout:
//
//	╭──────────────────────╮
//	│ {Column Title} ({n}) │
//	│──────────────────────│
//	│ ▲ 2 more             │
//	│ (cards)              │
//	│ ▼ 3 more             │
//	╰──────────────────────╯
func RenderColumn(s Styles, props ColumnProps) string {
	innerW := props.Width - 2
	bg := lipgloss.Color(s.Scheme.ColumnBackground)

	count := fmt.Sprintf(" (%d)", props.Count)
	title := clip(props.Column.Title, innerW-lipgloss.Width(count)-1)
	header := s.ColumnTitle.Render(" "+title) + s.Subtle.Background(bg).Render(count)

	lines := []string{header, s.Subtle.Background(bg).Render(strings.Repeat("─", max(innerW, 0)))}

	if props.Above > 0 {
		lines = append(lines, s.Indicator.Background(bg).Render(fmt.Sprintf(" ▲ %d more", props.Above)))
	} else {
		lines = append(lines, "")
	}

	if props.Count == 0 {
		lines = append(lines, s.Subtle.Background(bg).Italic(true).Render(" No tasks"))
	}

	innerH := props.Height - 2
	if props.Below > 0 {
		for len(lines) < innerH-1 {
			lines = append(lines, "")
		}
		lines = append(lines, s.Indicator.Background(bg).Render(fmt.Sprintf(" ▼ %d more", props.Below)))
	}

	style := s.Column
	switch props.State {
	case ColumnSelected:
		style = s.ColumnSelected
	case ColumnHovered:
		style = s.ColumnHover
	case ColumnDragging:
		style = s.ColumnDragging
	}
	return framed(style, strings.Join(lines, "\n"), props.Width, props.Height, bg)
}

// RenderColumnGhost renders the floating header that follows the pointer
// while a column is dragged.
func RenderColumnGhost(s Styles, col models.Column, count, width int) string {
	label := fmt.Sprintf(" ⠿ %s (%d)", col.Title, count)
	return framed(s.CardGhost, label, width, 3, lipgloss.Color(s.Scheme.SelectedBg))
}
