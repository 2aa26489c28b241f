package colors

// Light returns the paper-white theme.
func Light() *ColorScheme {
	return &ColorScheme{
		Preset: PresetLight,

		Accent: "#6D28D9",

		Background:       "#F8FAFC",
		ColumnBackground: "#F1F5F9",
		SidebarBg:        "#FDFCF8",

		Create: "#059669",
		Edit:   "#2563EB",
		Delete: "#DC2626",

		ColumnBorder:   "#E2E8F0",
		ColumnHover:    "#6D28D9",
		TaskBorder:     "#E2E8F0",
		TaskBackground: "#FFFFFF",
		SelectedBorder: "#7C3AED",
		SelectedBg:     "#EDE9FE",
		DragBorder:     "#D97706",
		Progress:       "#059669",

		PriorityHigh:   "#DC2626",
		PriorityMedium: "#D97706",
		PriorityLow:    "#059669",

		Title:  "#1E293B",
		Subtle: "#94A3B8",
		Normal: "#64748B",

		InfoFg:    "#1E40AF",
		InfoBg:    "#DBEAFE",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#991B1B",
		ErrorBg:   "#FEE2E2",

		StatusBarBg:   "#6D28D9",
		StatusBarText: "#FFFFFF",
	}
}
