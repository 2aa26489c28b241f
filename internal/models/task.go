package models

import (
	"strings"
	"time"
)

// Task represents a single card on the kanban board.
// Its rank within a column is its position in the project's task slice,
// filtered by ColumnID.
type Task struct {
	ID        string    `json:"id"`
	ColumnID  string    `json:"columnId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Priority  Priority  `json:"priority"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// TaskInit carries the optional initial values for a new task.
// Empty fields fall back to generated defaults.
type TaskInit struct {
	Title    string
	Content  string
	Priority Priority
	Color    string
}

// TaskPatch describes a partial update. Nil fields are left untouched.
type TaskPatch struct {
	Title    *string
	Content  *string
	Priority *Priority
	Color    *string
	ColumnID *string
}

// Matches reports whether the task's title or content contains the
// lower-cased query.
func (t Task) Matches(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return containsFold(t.Title, lowerQuery) || containsFold(t.Content, lowerQuery)
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
