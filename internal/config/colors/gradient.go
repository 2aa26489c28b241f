package colors

import "time"

// TimeOfDay buckets the hour for the gradient preset.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Day     TimeOfDay = "day"
	Sunset  TimeOfDay = "sunset"
	Night   TimeOfDay = "night"
)

// TimeOfDayAt maps local wall-clock time to a bucket: morning 5-10,
// day 10-16, sunset 16-19, night otherwise.
func TimeOfDayAt(t time.Time) TimeOfDay {
	switch h := t.Hour(); {
	case h >= 5 && h < 10:
		return Morning
	case h >= 10 && h < 16:
		return Day
	case h >= 16 && h < 19:
		return Sunset
	default:
		return Night
	}
}

// Gradient returns the palette for a time of day. Terminals cannot paint
// gradients, so each bucket takes the middle stop of the web gradient as
// background and derives the rest from it.
func Gradient(tod TimeOfDay) *ColorScheme {
	switch tod {
	case Morning:
		return gradientScheme("#E9D5FF", "#C7D2FE", "#F5D0FE", "#1E293B", "#475569", false)
	case Day:
		return gradientScheme("#BFDBFE", "#A5F3FC", "#C7D2FE", "#1E293B", "#475569", false)
	case Sunset:
		return gradientScheme("#FCA5A5", "#FDBA74", "#C084FC", "#0F172A", "#334155", false)
	default:
		return gradientScheme("#581C87", "#111827", "#4C1D95", "#F3F4F6", "#9CA3AF", true)
	}
}

func gradientScheme(bg, from, to, title, normal string, dark bool) *ColorScheme {
	subtle := "#64748B"
	selectedBg := "#FFFFFF"
	if dark {
		subtle = "#6B7280"
		selectedBg = "#3B0764"
	}
	return &ColorScheme{
		Preset: PresetGradient,
		IsDark: dark,

		Accent: to,

		Background:       bg,
		ColumnBackground: from,
		SidebarBg:        from,

		Create: "#059669",
		Edit:   "#2563EB",
		Delete: "#DC2626",

		ColumnBorder:   to,
		ColumnHover:    title,
		TaskBorder:     to,
		TaskBackground: bg,
		SelectedBorder: title,
		SelectedBg:     selectedBg,
		DragBorder:     "#F59E0B",
		Progress:       "#10B981",

		PriorityHigh:   "#DC2626",
		PriorityMedium: "#D97706",
		PriorityLow:    "#059669",

		Title:  title,
		Subtle: subtle,
		Normal: normal,

		InfoFg:    "#1E40AF",
		InfoBg:    "#DBEAFE",
		WarningFg: "#92400E",
		WarningBg: "#FEF3C7",
		ErrorFg:   "#991B1B",
		ErrorBg:   "#FEE2E2",

		StatusBarBg:   to,
		StatusBarText: title,
	}
}
