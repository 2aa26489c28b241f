package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/tui/components"
)

// keyMap holds the bindings built from the configured key mappings. Arrow
// keys stay bound next to the vim-style defaults.
type keyMap struct {
	AddTask       key.Binding
	EditTask      key.Binding
	DeleteTask    key.Binding
	ViewTask      key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding

	CreateColumn    key.Binding
	RenameColumn    key.Binding
	DeleteColumn    key.Binding
	MoveColumnLeft  key.Binding
	MoveColumnRight key.Binding

	CreateProject key.Binding
	RenameProject key.Binding
	DeleteProject key.Binding
	NextProject   key.Binding
	PrevProject   key.Binding

	PrevColumn  key.Binding
	NextColumn  key.Binding
	PrevTask    key.Binding
	NextTask    key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding

	Search        key.Binding
	ToggleSidebar key.Binding
	ToggleTheme   key.Binding
	Escape        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func bind(help string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		AddTask:       bind("new task", km.AddTask),
		EditTask:      bind("edit task", km.EditTask),
		DeleteTask:    bind("delete task", km.DeleteTask),
		ViewTask:      bind("view task", km.ViewTask),
		MoveTaskLeft:  bind("move task left", km.MoveTaskLeft),
		MoveTaskRight: bind("move task right", km.MoveTaskRight),
		MoveTaskUp:    bind("move task up", km.MoveTaskUp),
		MoveTaskDown:  bind("move task down", km.MoveTaskDown),

		CreateColumn:    bind("new column", km.CreateColumn),
		RenameColumn:    bind("rename column", km.RenameColumn),
		DeleteColumn:    bind("delete column", km.DeleteColumn),
		MoveColumnLeft:  bind("move column left", km.MoveColumnLeft),
		MoveColumnRight: bind("move column right", km.MoveColumnRight),

		CreateProject: bind("new project", km.CreateProject),
		RenameProject: bind("rename project", km.RenameProject),
		DeleteProject: bind("delete project", km.DeleteProject),
		NextProject:   bind("next project", km.NextProject),
		PrevProject:   bind("previous project", km.PrevProject),

		PrevColumn:  bind("previous column", km.PrevColumn, "left"),
		NextColumn:  bind("next column", km.NextColumn, "right"),
		PrevTask:    bind("previous task", km.PrevTask, "up"),
		NextTask:    bind("next task", km.NextTask, "down"),
		ScrollLeft:  bind("scroll left", km.ScrollViewportLeft),
		ScrollRight: bind("scroll right", km.ScrollViewportRight),

		Search:        bind("search", km.Search),
		ToggleSidebar: bind("toggle sidebar", km.ToggleSidebar),
		ToggleTheme:   bind("switch theme", km.ToggleTheme),
		Escape:        bind("cancel / clear", km.Escape),
		Help:          bind("help", km.ShowHelp),
		Quit:          bind("quit", km.Quit, "ctrl+c"),
	}
}

// shortHelp is the footer hint for normal mode.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.Search, k.ToggleSidebar, k.ToggleTheme, k.Help, k.Quit}
}

// helpSections is the full help screen.
func (k keyMap) helpSections() []components.HelpSection {
	return []components.HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{
			k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.ScrollLeft, k.ScrollRight,
		}},
		{Title: "Tasks", Bindings: []key.Binding{
			k.AddTask, k.EditTask, k.DeleteTask, k.ViewTask,
			k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown,
		}},
		{Title: "Columns", Bindings: []key.Binding{
			k.CreateColumn, k.RenameColumn, k.DeleteColumn, k.MoveColumnLeft, k.MoveColumnRight,
		}},
		{Title: "Projects", Bindings: []key.Binding{
			k.CreateProject, k.RenameProject, k.DeleteProject, k.PrevProject, k.NextProject,
		}},
		{Title: "View", Bindings: []key.Binding{
			k.Search, k.ToggleSidebar, k.ToggleTheme, k.Escape, k.Help, k.Quit,
		}},
		{Title: "Mouse", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("drag"), key.WithHelp("drag", "move a card or column header")),
			key.NewBinding(key.WithKeys("click"), key.WithHelp("click", "select card, column, project")),
			key.NewBinding(key.WithKeys("dock"), key.WithHelp("dock", "drop a card on a column chip")),
		}},
	}
}

// renderShortHelp joins bindings as "key desc" pairs.
func renderShortHelp(bindings []key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
