package board

import (
	"math"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Stats summarises progress on the board.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Todo       int
	// Percentage is Completed/Total rounded to the nearest whole percent.
	Percentage int
}

// Stats counts tasks in the completion column, the in-progress column and the
// todo column. Tasks in user-created columns only count towards Total.
func (s *Store) Stats() Stats {
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.ColumnID {
		case s.completionColumn:
			st.Completed++
		case models.ColumnDoing:
			st.InProgress++
		case models.ColumnTodo:
			st.Todo++
		}
	}
	if st.Total > 0 {
		st.Percentage = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}

// CompletionColumn returns the id of the column counted as done.
func (s *Store) CompletionColumn() string {
	return s.completionColumn
}
