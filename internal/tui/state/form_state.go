package state

import (
	"charm.land/huh/v2"
)

// FormKind identifies what an open form edits.
type FormKind int

const (
	FormNone FormKind = iota
	FormCreateTask
	FormEditTask
	FormCreateColumn
	FormRenameColumn
	FormCreateProject
	FormRenameProject
)

// ConfirmKind identifies what a confirmation deletes.
type ConfirmKind int

const (
	ConfirmNone ConfirmKind = iota
	ConfirmDeleteTask
	ConfirmDeleteColumn
	ConfirmDeleteProject
)

// FormState holds the open huh form and the values bound to its fields.
type FormState struct {
	Form *huh.Form
	Kind FormKind

	// TargetID is the entity being edited (task, column or project id) or,
	// for new tasks, the column receiving it.
	TargetID string

	// Bound field values
	Title    string
	Content  string
	Priority string
	Color    string
	Confirm  bool

	ConfirmKind ConfirmKind
	// ConfirmMessage is the question shown in ConfirmMode.
	ConfirmMessage string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset closes any form and clears bound values.
func (f *FormState) Reset() {
	*f = FormState{}
}
