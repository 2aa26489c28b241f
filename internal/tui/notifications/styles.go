package notifications

import "github.com/thenoetrevino/tablero/internal/config/colors"

type style struct {
	icon       string
	title      string
	foreground string
	background string
}

func (s Severity) style(c colors.ColorScheme) style {
	switch s {
	case Warning:
		return style{icon: "⚠", title: "Warning", foreground: c.WarningFg, background: c.WarningBg}
	case Error:
		return style{icon: "✕", title: "Error", foreground: c.ErrorFg, background: c.ErrorBg}
	default:
		return style{icon: "🔔", title: "Info", foreground: c.InfoFg, background: c.InfoBg}
	}
}
