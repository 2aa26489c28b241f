package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tablero/internal/models"
)

type rendererKey struct {
	width int
	dark  bool
}

// Cache Glamour renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[rendererKey]*glamour.TermRenderer

func getRenderer(width int, dark bool) (*glamour.TermRenderer, error) {
	key := rendererKey{width: width, dark: dark}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	style := "light"
	if dark {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(key, renderer)
	return renderer, nil
}

// RenderContent renders task content as markdown, falling back to plain
// wrapped text when glamour fails.
func RenderContent(s Styles, content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return s.Subtle.Italic(true).Render("No description")
	}
	if renderer, err := getRenderer(width, s.Scheme.IsDark); err == nil {
		if out, err := renderer.Render(content); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return wordwrap.String(content, width)
}

// TaskViewProps describes the detail popup.
type TaskViewProps struct {
	Task       models.Task
	ColumnName string
	Width      int
	Height     int
}

// RenderTaskView renders the read-only detail popup for a task.
func RenderTaskView(s Styles, props TaskViewProps) string {
	task := props.Task
	contentWidth := max(props.Width-8, 10)

	meta := []string{
		s.Subtle.Render("Column   ") + s.Normal.Render(props.ColumnName),
		s.Subtle.Render("Priority ") + s.PriorityStyle(task.Priority).Render(string(task.Priority)),
	}
	if hex := TaskColor(task.Color); hex != "" {
		meta = append(meta, s.Subtle.Render("Colour   ")+
			lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■ "+task.Color))
	}
	if !task.CreatedAt.IsZero() {
		meta = append(meta, s.Subtle.Render("Created  ")+s.Normal.Render(task.CreatedAt.Local().Format("2006-01-02 15:04")))
	}
	if !task.UpdatedAt.IsZero() {
		meta = append(meta, s.Subtle.Render("Updated  ")+s.Normal.Render(task.UpdatedAt.Local().Format("2006-01-02 15:04")))
	}

	parts := []string{
		s.Title.Render(wordwrap.String(task.Title, contentWidth)),
		"",
		strings.Join(meta, "\n"),
		"",
		RenderContent(s, task.Content, contentWidth),
		"",
		s.Subtle.Render("[e] edit  [d] delete  [Esc] close"),
	}

	body := strings.Join(parts, "\n")
	maxLines := max(props.Height-4, 1)
	if lines := strings.Split(body, "\n"); len(lines) > maxLines {
		body = strings.Join(lines[:maxLines], "\n")
	}

	return s.HelpBox.Width(props.Width).Render(body)
}
