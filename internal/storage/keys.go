package storage

// Key layout shared with the web version of the board.
const (
	KeyPrefix        = "kanban-"
	KeyProjects      = "kanban-projects"
	KeyActiveProject = "kanban-active-project"
	KeyTheme         = "kanban-theme"

	// Pre-multi-project builds kept a single board under these keys.
	legacyColumnsKey = "kanban-columns"
	legacyTasksKey   = "kanban-tasks"
)

// ColumnsKey returns the key holding a project's columns.
func ColumnsKey(projectID string) string {
	return legacyColumnsKey + "-" + projectID
}

// TasksKey returns the key holding a project's tasks.
func TasksKey(projectID string) string {
	return legacyTasksKey + "-" + projectID
}
