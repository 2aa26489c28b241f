// Package components renders the individual pieces of the board. Every
// renderer takes its Styles explicitly; there is no package-level theme.
package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/config/colors"
	"github.com/thenoetrevino/tablero/internal/models"
)

// compared to the defaults, these feel like
// they take up less space
var dockBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// Styles holds every style derived from one colour scheme.
type Styles struct {
	Scheme colors.ColorScheme

	// Screen
	Background lipgloss.Style
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Normal     lipgloss.Style
	Indicator  lipgloss.Style

	// Columns
	Column         lipgloss.Style
	ColumnSelected lipgloss.Style
	ColumnHover    lipgloss.Style
	ColumnDragging lipgloss.Style
	ColumnTitle    lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDragging lipgloss.Style
	CardHover    lipgloss.Style
	CardGhost    lipgloss.Style

	// Dock
	DockItem       lipgloss.Style
	DockItemHover  lipgloss.Style
	DockItemActive lipgloss.Style

	// Sidebar
	Sidebar       lipgloss.Style
	SidebarItem   lipgloss.Style
	SidebarActive lipgloss.Style

	// Progress
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style

	// Dialogs
	CreateBox lipgloss.Style
	EditBox   lipgloss.Style
	DeleteBox lipgloss.Style
	HelpBox   lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusAccent lipgloss.Style
}

// NewStyles builds the styles for a resolved colour scheme.
func NewStyles(c colors.ColorScheme) Styles {
	bg := lipgloss.Color(c.Background)
	colBg := lipgloss.Color(c.ColumnBackground)
	taskBg := lipgloss.Color(c.TaskBackground)

	s := Styles{Scheme: c}

	s.Background = lipgloss.NewStyle().Background(bg)
	s.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Title)).Bold(true)
	s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))
	s.Normal = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal))
	s.Indicator = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)).Bold(true)

	s.Column = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		BorderBackground(bg).
		Background(colBg)
	s.ColumnSelected = s.Column.BorderForeground(lipgloss.Color(c.SelectedBorder))
	s.ColumnHover = s.Column.BorderForeground(lipgloss.Color(c.ColumnHover)).Border(lipgloss.ThickBorder())
	s.ColumnDragging = s.Column.BorderForeground(lipgloss.Color(c.DragBorder)).Border(lipgloss.DoubleBorder())
	s.ColumnTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Title)).
		Background(colBg).
		Bold(true)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.TaskBorder)).
		BorderBackground(colBg).
		Background(taskBg).
		Foreground(lipgloss.Color(c.Normal))
	s.CardSelected = s.Card.
		BorderForeground(lipgloss.Color(c.SelectedBorder)).
		Background(lipgloss.Color(c.SelectedBg))
	// The card's own slot while it is being dragged.
	s.CardDragging = s.Card.
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(c.DragBorder)).
		Foreground(lipgloss.Color(c.Subtle)).
		Faint(true)
	s.CardHover = s.Card.BorderForeground(lipgloss.Color(c.ColumnHover))
	s.CardGhost = s.Card.
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(c.DragBorder)).
		BorderBackground(bg).
		Background(lipgloss.Color(c.SelectedBg))

	s.DockItem = lipgloss.NewStyle().
		Border(dockBorder).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Background(colBg).
		Foreground(lipgloss.Color(c.Normal)).
		Align(lipgloss.Center)
	s.DockItemHover = s.DockItem.
		BorderForeground(lipgloss.Color(c.ColumnHover)).
		Foreground(lipgloss.Color(c.Title)).
		Bold(true)
	s.DockItemActive = s.DockItem.
		BorderForeground(lipgloss.Color(c.SelectedBorder)).
		Foreground(lipgloss.Color(c.Accent))

	s.Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Background(lipgloss.Color(c.SidebarBg))
	s.SidebarItem = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal)).
		Background(lipgloss.Color(c.SidebarBg))
	s.SidebarActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Title)).
		Background(lipgloss.Color(c.SelectedBg)).
		Bold(true)

	s.ProgressFilled = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Progress))
	s.ProgressEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle))

	dialog := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Background(lipgloss.Color(c.ColumnBackground)).
		Padding(1, 2)
	s.CreateBox = dialog.BorderForeground(lipgloss.Color(c.Create))
	s.EditBox = dialog.BorderForeground(lipgloss.Color(c.Edit))
	s.DeleteBox = dialog.BorderForeground(lipgloss.Color(c.Delete))
	s.HelpBox = dialog.BorderForeground(lipgloss.Color(c.Accent))

	s.StatusBar = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Background(bg)
	s.StatusAccent = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.StatusBarText)).
		Background(lipgloss.Color(c.StatusBarBg)).
		Padding(0, 1).
		Bold(true)

	return s
}

// PriorityStyle returns the badge style for a priority.
func (s Styles) PriorityStyle(p models.Priority) lipgloss.Style {
	fg := s.Scheme.PriorityMedium
	switch p {
	case models.PriorityHigh:
		fg = s.Scheme.PriorityHigh
	case models.PriorityLow:
		fg = s.Scheme.PriorityLow
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true)
}

// taskColors maps card tags to the 200 shade used by the web version.
var taskColors = map[string]string{
	"yellow": "#FEF08A",
	"green":  "#BBF7D0",
	"blue":   "#BFDBFE",
	"pink":   "#FBCFE8",
	"orange": "#FED7AA",
	"purple": "#E9D5FF",
	"white":  "#FFFFFF",
	"red":    "#FECACA",
}

// TaskColor returns the hex for a card tag. It accepts both plain names
// ("yellow") and utility classes from web backups ("bg-yellow-200").
// Unknown tags return "".
func TaskColor(tag string) string {
	name := strings.ToLower(strings.TrimSpace(tag))
	name = strings.TrimPrefix(name, "bg-")
	if i := strings.IndexByte(name, '-'); i >= 0 {
		name = name[:i]
	}
	return taskColors[name]
}
