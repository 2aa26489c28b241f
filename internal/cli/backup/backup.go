// Package backup holds the cli commands that move the whole workspace in
// and out of a JSON backup file.
//
// e.g., tablero export / tablero import / tablero reset
package backup

import (
	"fmt"
	"time"
)

// FileName is the default backup name for the day t falls on.
func FileName(t time.Time) string {
	return fmt.Sprintf("kanban-backup-%s.json", t.Format(time.DateOnly))
}
