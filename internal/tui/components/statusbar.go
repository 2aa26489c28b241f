package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps describes the footer.
type StatusBarProps struct {
	Width int
	// Help is the rendered key help for the current mode.
	Help string
	// SearchQuery is shown while a filter is applied.
	SearchQuery string
	Dragging    string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(s Styles, props StatusBarProps) string {
	var left string
	switch {
	case props.Dragging != "":
		left = s.StatusAccent.Render("DRAG") + " " + s.Normal.Render(props.Dragging)
	case props.SearchQuery != "":
		left = s.StatusAccent.Render("FILTER") + " " + s.Normal.Render(props.SearchQuery)
	}
	right := props.Help

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gapWidth < 1 {
		right = clip(right, max(props.Width-lipgloss.Width(left)-1, 0))
		gapWidth = max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	}
	return left + strings.Repeat(" ", gapWidth) + right
}
