package colors

// Dark returns the near-black theme with translucent-looking cards.
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: PresetDark,
		IsDark: true,

		Accent: "#8B5CF6",

		Background:       "#0F0F12",
		ColumnBackground: "#16161A",
		SidebarBg:        "#0F0F12",

		Create: "#34D399",
		Edit:   "#60A5FA",
		Delete: "#F87171",

		ColumnBorder:   "#2A2A30",
		ColumnHover:    "#8B5CF6",
		TaskBorder:     "#26262C",
		TaskBackground: "#1C1C21",
		SelectedBorder: "#A78BFA",
		SelectedBg:     "#25252B",
		DragBorder:     "#FBBF24",
		Progress:       "#34D399",

		PriorityHigh:   "#F87171",
		PriorityMedium: "#FBBF24",
		PriorityLow:    "#34D399",

		Title:  "#F3F4F6",
		Subtle: "#4B5563",
		Normal: "#9CA3AF",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",

		StatusBarBg:   "#8B5CF6",
		StatusBarText: "#F3F4F6",
	}
}
