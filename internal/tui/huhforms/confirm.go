package huhforms

import "charm.land/huh/v2"

// CreateConfirmForm asks a yes/no question. Declining is the default.
func CreateConfirmForm(question, detail string, confirm *bool) *huh.Form {
	field := huh.NewConfirm().
		Key("confirm").
		Title(question).
		Affirmative("Delete").
		Negative("Cancel").
		Value(confirm)
	if detail != "" {
		field = field.Description(detail)
	}
	return huh.NewForm(huh.NewGroup(field))
}
