package dnd

import "github.com/thenoetrevino/tablero/internal/models"

// session is the state of one gesture, created on Start and discarded on
// release or cancel.
type session struct {
	entity Entity

	// originColumn is the task's column at grab time.
	originColumn string
	// armed is set while the task sits in the completion column after
	// having entered it during this gesture.
	armed bool
	// mutated records that a hover changed the board.
	mutated bool
	// snapshot is the pre-drag board, kept only when rollback is enabled.
	snapshot *models.BoardData
}
