package models

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done").
// A column's rank is its index in the project's ordered column slice.
type Column struct {
	ID    string `json:"id"`    // Opaque identifier, stable for the column's lifetime
	Title string `json:"title"` // Display name, user-editable, not unique
}
