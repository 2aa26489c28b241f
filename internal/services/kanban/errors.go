package kanban

import "errors"

// Domain errors for the board service
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")

	// ErrSaveFailed wraps persistence failures after a mutation. The
	// in-memory board keeps the change; callers surface a warning.
	ErrSaveFailed = errors.New("failed to save board")
)
