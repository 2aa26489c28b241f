package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tablero/internal/models"
)

// TitleLimit caps task, column and project names.
const TitleLimit = 80

// PriorityOptions returns the priority choices in display order.
func PriorityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		opts = append(opts, huh.NewOption(string(p), string(p)))
	}
	return opts
}

// ColorOptions returns the card colour tags, plus "none".
func ColorOptions() []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("None", "")}
	for _, c := range models.TaskColors {
		opts = append(opts, huh.NewOption(strings.ToUpper(c[:1])+c[1:], c))
	}
	return opts
}

// CreateTaskForm creates a huh form for adding/editing a task.
// The form uses pointers to update values in place.
func CreateTaskForm(
	title *string,
	content *string,
	priority *string,
	color *string,
	isEdit bool,
	contentLines int,
) *huh.Form {
	heading := "New Task"
	if isEdit {
		heading = "Edit Task"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title(heading).
			Placeholder("Enter task title...").
			CharLimit(TitleLimit).
			Value(title),

		huh.NewText().
			Key("content").
			Title("Description").
			Description("markdown").
			Placeholder("Details...").
			Lines(max(contentLines, 3)).
			CharLimit(4000).
			Value(content),

		huh.NewSelect[string]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Inline(true).
			Value(priority),

		huh.NewSelect[string]().
			Key("color").
			Title("Colour").
			Options(ColorOptions()...).
			Inline(true).
			Value(color),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
