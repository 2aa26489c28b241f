package models

import (
	"encoding/json"
	"time"
)

// BackupVersion is the version written into new export documents.
const BackupVersion = 1

// ExportDocument is the import/export backup format shared with the web
// version of the board.
type ExportDocument struct {
	Version         int                  `json:"version"`
	ExportedAt      time.Time            `json:"exportedAt"`
	ActiveProjectID string               `json:"activeProjectId,omitempty"`
	Projects        []Project            `json:"projects"`
	ProjectData     map[string]BoardData `json:"projectData"`

	// Legacy backups stored columns and tasks as top-level maps keyed by
	// project id. They are only read, never written.
	LegacyColumns map[string]json.RawMessage `json:"columns,omitempty"`
	LegacyTasks   map[string]json.RawMessage `json:"tasks,omitempty"`
}
