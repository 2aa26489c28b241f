package dnd

// TargetKind tags the drop zone under the pointer.
type TargetKind int

const (
	TargetTask TargetKind = iota + 1
	TargetColumn
	TargetDock
)

func (k TargetKind) String() string {
	switch k {
	case TargetTask:
		return "task"
	case TargetColumn:
		return "column"
	case TargetDock:
		return "dock"
	default:
		return "unknown"
	}
}

// Target is a resolved drop zone. TaskID is set only for TargetTask.
// ColumnID is the column the zone belongs to (for docks, the column the
// shortcut teleports to).
type Target struct {
	Kind     TargetKind
	TaskID   string
	ColumnID string
	// After is true when the pointer sits in the lower half of a task card,
	// meaning a drop lands after that task instead of before it.
	After bool
}

// TaskTarget is a task card zone.
func TaskTarget(taskID, columnID string) Target {
	return Target{Kind: TargetTask, TaskID: taskID, ColumnID: columnID}
}

// ColumnTarget is a column header or body zone.
func ColumnTarget(columnID string) Target {
	return Target{Kind: TargetColumn, ColumnID: columnID}
}

// DockTarget is a dock shortcut for a column.
func DockTarget(columnID string) Target {
	return Target{Kind: TargetDock, ColumnID: columnID}
}
