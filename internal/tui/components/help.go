package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
)

// HelpSection is one titled group of bindings on the help screen.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// RenderHelp renders the full-screen keyboard and mouse reference.
func RenderHelp(s Styles, sections []HelpSection, width int) string {
	var b strings.Builder
	b.WriteString(s.Title.Render("tablero - Keyboard & Mouse"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(s.Title.Render(sec.Title))
		b.WriteString("\n")
		for _, kb := range sec.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			b.WriteString("  ")
			b.WriteString(s.Indicator.Render(padRight(h.Key, 10)))
			b.WriteString(s.Normal.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render("Drag cards and column headers with the mouse. Press any key to close"))
	return s.HelpBox.Width(width).Render(b.String())
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
