package huhforms

import "charm.land/huh/v2"

// CreateProjectForm creates a huh form for adding or renaming a project.
// A blank name is accepted and becomes "Untitled Project".
func CreateProjectForm(
	name *string,
	isEdit bool,
) *huh.Form {
	title := "Project Name"
	if isEdit {
		title = "Rename Project"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(title).
			Placeholder("Untitled Project").
			CharLimit(TitleLimit).
			Value(name),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
