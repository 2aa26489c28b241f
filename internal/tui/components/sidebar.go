package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// SidebarProps describes the project sidebar.
type SidebarProps struct {
	Projects []models.Project
	ActiveID string
	Width    int
	Height   int
}

// RenderSidebar renders the project list
//
//	╭ Projects ────────────╮
//	│ ● My Project         │
//	│   Side quest         │
//	│                      │
//	│ + New project        │
//	╰──────────────────────╯
func RenderSidebar(s Styles, props SidebarProps) string {
	innerW := props.Width - 2
	innerH := props.Height - 2
	bg := lipgloss.Color(s.Scheme.SidebarBg)

	lines := []string{
		s.Title.Background(bg).Render(" Projects"),
		s.Subtle.Background(bg).Render(strings.Repeat("─", max(innerW, 0))),
	}
	for _, p := range props.Projects {
		if len(lines) >= innerH-2 {
			break
		}
		if p.ID == props.ActiveID {
			lines = append(lines, s.SidebarActive.Width(innerW).Render(clip(" ● "+p.Name, innerW)))
		} else {
			lines = append(lines, s.SidebarItem.Render(clip("   "+p.Name, innerW)))
		}
	}
	lines = append(lines, "", s.Subtle.Background(bg).Render(" + New project (P)"))

	return framed(s.Sidebar, strings.Join(lines, "\n"), props.Width, props.Height, bg)
}
