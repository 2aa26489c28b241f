package models

import "time"

// Project represents a container for kanban columns and tasks.
// Each project owns an independent column sequence and task sequence.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// GetID returns the project id.
func (p Project) GetID() string {
	return p.ID
}
