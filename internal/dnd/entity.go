package dnd

import "github.com/thenoetrevino/tablero/internal/models"

// Kind tags what a drag session carries.
type Kind int

const (
	// KindNone means no drag is in progress.
	KindNone Kind = iota
	KindTask
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindColumn:
		return "column"
	default:
		return "none"
	}
}

// Entity is the dragged payload: exactly one of Task or Column is meaningful,
// selected by Kind. The payload is a snapshot taken at grab time.
type Entity struct {
	Kind   Kind
	Task   models.Task
	Column models.Column
}

// TaskEntity wraps a task snapshot.
func TaskEntity(t models.Task) Entity {
	return Entity{Kind: KindTask, Task: t}
}

// ColumnEntity wraps a column snapshot.
func ColumnEntity(c models.Column) Entity {
	return Entity{Kind: KindColumn, Column: c}
}

// ID returns the id of the dragged task or column.
func (e Entity) ID() string {
	switch e.Kind {
	case KindTask:
		return e.Task.ID
	case KindColumn:
		return e.Column.ID
	default:
		return ""
	}
}
