package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	DeleteTask    string `yaml:"delete_task"`
	ViewTask      string `yaml:"view_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Columns
	CreateColumn    string `yaml:"create_column"`
	RenameColumn    string `yaml:"rename_column"`
	DeleteColumn    string `yaml:"delete_column"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Projects
	CreateProject string `yaml:"create_project"`
	RenameProject string `yaml:"rename_project"`
	DeleteProject string `yaml:"delete_project"`
	NextProject   string `yaml:"next_project"`
	PrevProject   string `yaml:"prev_project"`

	// Navigation
	PrevColumn          string `yaml:"prev_column"`
	NextColumn          string `yaml:"next_column"`
	PrevTask            string `yaml:"prev_task"`
	NextTask            string `yaml:"next_task"`
	ScrollViewportLeft  string `yaml:"scroll_viewport_left"`
	ScrollViewportRight string `yaml:"scroll_viewport_right"`

	// View
	Search        string `yaml:"search"`
	ToggleSidebar string `yaml:"toggle_sidebar"`
	ToggleTheme   string `yaml:"toggle_theme"`
	Escape        string `yaml:"escape"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "n",
		EditTask:      "e",
		DeleteTask:    "d",
		ViewTask:      "enter",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		// Columns
		CreateColumn:    "C",
		RenameColumn:    "R",
		DeleteColumn:    "X",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		// Projects
		CreateProject: "P",
		RenameProject: "ctrl+r",
		DeleteProject: "ctrl+x",
		NextProject:   "}",
		PrevProject:   "{",

		// Navigation
		PrevColumn:          "h",
		NextColumn:          "l",
		PrevTask:            "k",
		NextTask:            "j",
		ScrollViewportLeft:  "[",
		ScrollViewportRight: "]",

		// View
		Search:        "/",
		ToggleSidebar: "b",
		ToggleTheme:   "t",
		Escape:        "esc",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// bindings pairs every mapping with its slot, for bulk operations.
func (k *KeyMappings) bindings() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.DeleteTask, &k.ViewTask,
		&k.MoveTaskLeft, &k.MoveTaskRight, &k.MoveTaskUp, &k.MoveTaskDown,
		&k.CreateColumn, &k.RenameColumn, &k.DeleteColumn, &k.MoveColumnLeft, &k.MoveColumnRight,
		&k.CreateProject, &k.RenameProject, &k.DeleteProject, &k.NextProject, &k.PrevProject,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask,
		&k.ScrollViewportLeft, &k.ScrollViewportRight,
		&k.Search, &k.ToggleSidebar, &k.ToggleTheme, &k.Escape,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	src := defaults.bindings()
	for i, dst := range k.bindings() {
		if *dst == "" {
			*dst = *src[i]
		}
	}
}
