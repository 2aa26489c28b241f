package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// CardState selects the card frame.
type CardState int

const (
	CardIdle CardState = iota
	CardSelected
	CardHovered
	CardDragging // the dragged card's own slot
	CardGhost    // the floating copy under the pointer
)

// RenderTask renders a single task as a card
//
//	╭──────────────────────╮
//	│▌{Task Title}         │
//	│ {content preview}    │
//	│ ● High               │
//	╰──────────────────────╯
//
// This has a fixed width and height
func RenderTask(s Styles, task models.Task, width int, state CardState) string {
	style := s.Card
	bg := s.Scheme.TaskBackground
	switch state {
	case CardSelected:
		style, bg = s.CardSelected, s.Scheme.SelectedBg
	case CardHovered:
		style = s.CardHover
	case CardDragging:
		style = s.CardDragging
	case CardGhost:
		style, bg = s.CardGhost, s.Scheme.SelectedBg
	}
	bgColor := lipgloss.Color(bg)
	innerW := width - 2

	stripe := " "
	if hex := TaskColor(task.Color); hex != "" {
		stripe = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Background(bgColor).Render("▌")
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Background(bgColor).Foreground(lipgloss.Color(s.Scheme.Title))
	if state == CardDragging {
		titleStyle = titleStyle.Foreground(lipgloss.Color(s.Scheme.Subtle))
	}
	title := stripe + titleStyle.Render(clip(task.Title, innerW-1))

	preview := firstLine(task.Content)
	var previewLine string
	if preview == "" {
		previewLine = s.Subtle.Background(bgColor).Italic(true).Render(" no description")
	} else {
		previewLine = s.Normal.Background(bgColor).Render(" " + clip(preview, innerW-1))
	}

	badge := " " + s.PriorityStyle(task.Priority).Background(bgColor).Render("● "+string(task.Priority))

	return framed(style, title+"\n"+previewLine+"\n"+badge, width, CardHeightLines, bgColor)
}

// CardHeightLines is the rendered height of a card.
const CardHeightLines = 5

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(strings.TrimLeft(s, "#>-* "))
}
