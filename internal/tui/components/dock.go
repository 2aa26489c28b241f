package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// DockItemState selects the chip frame.
type DockItemState int

const (
	DockIdle DockItemState = iota
	DockHovered
	DockActive // the column currently in view
)

// RenderDockItem renders one column shortcut chip.
func RenderDockItem(s Styles, col models.Column, count, width int, state DockItemState) string {
	style := s.DockItem
	switch state {
	case DockHovered:
		style = s.DockItemHover
	case DockActive:
		style = s.DockItemActive
	}
	label := clip(col.Title, width-2-3) + " " + itoa(count)
	inner := lipgloss.NewStyle().
		Width(width-2).
		Align(lipgloss.Center).
		Background(lipgloss.Color(s.Scheme.ColumnBackground)).
		Render(clip(label, width-2))
	return style.UnsetWidth().Render(inner)
}

// RenderDockHint renders the label drawn at the dock's left edge while a
// task is dragged.
func RenderDockHint(s Styles) string {
	return s.Subtle.Italic(true).Render("drop on a column to move there")
}
