package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

// fill renders content into an exact innerW x innerH block on bg. Lines
// longer than innerW are truncated and surplus lines dropped.
func fill(content string, innerW, innerH int, bg color.Color) string {
	if innerW <= 0 || innerH <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > innerW {
			lines[i] = truncate.String(line, uint(innerW))
		}
	}
	return lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		MaxWidth(innerW).
		MaxHeight(innerH).
		Background(bg).
		Render(strings.Join(lines, "\n"))
}

// framed draws a one-cell border from style around an exact w x h box.
func framed(style lipgloss.Style, content string, w, h int, bg color.Color) string {
	inner := fill(content, w-2, h-2, bg)
	return style.UnsetWidth().UnsetHeight().UnsetPadding().Render(inner)
}

// clip shortens s to width cells, ending in an ellipsis when cut.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
