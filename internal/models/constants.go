package models

// ============================================================================
// PROJECT DEFAULTS
// ============================================================================

// DefaultProjectID is the id of the project created on first launch.
const DefaultProjectID = "default"

// DefaultProjectName is the display name of the first-launch project.
const DefaultProjectName = "My Project"

// UntitledProjectName replaces blank project names.
const UntitledProjectName = "Untitled Project"

// DefaultProject returns the project seeded on first launch.
func DefaultProject() Project {
	return Project{ID: DefaultProjectID, Name: DefaultProjectName}
}

// ============================================================================
// COLUMN DEFAULTS
// ============================================================================

// Well-known column ids seeded into every new project.
const (
	ColumnTodo  = "todo"
	ColumnDoing = "doing"
	ColumnDone  = "done"
)

// DefaultCompletionColumn is the column whose entry is celebrated.
const DefaultCompletionColumn = ColumnDone

// DefaultColumns returns the columns a new project starts with.
func DefaultColumns() []Column {
	return []Column{
		{ID: ColumnTodo, Title: "Todo"},
		{ID: ColumnDoing, Title: "In Progress"},
		{ID: ColumnDone, Title: "Done"},
	}
}

// ============================================================================
// TASK COLOURS
// ============================================================================

// TaskColors are the cosmetic card tags. The names match the web version.
var TaskColors = []string{"yellow", "green", "blue", "pink", "orange", "purple", "white", "red"}

// ============================================================================
// SAMPLE DATA
// ============================================================================

// SampleTasks returns the demo tasks shown in the default project.
func SampleTasks() []Task {
	return []Task{
		{ID: "1", ColumnID: ColumnTodo, Title: "Admin APIs", Content: "List admin APIs for dashboard", Color: "yellow", Priority: PriorityHigh},
		{ID: "2", ColumnID: ColumnTodo, Title: "User Registration", Content: "Develop user registration functionality with OTP delivered on SMS after email confirmation", Color: "green", Priority: PriorityHigh},
		{ID: "3", ColumnID: ColumnDoing, Title: "Security Testing", Content: "Conduct security testing", Color: "blue", Priority: PriorityHigh},
		{ID: "4", ColumnID: ColumnDoing, Title: "Competitor Analysis", Content: "Analyze competitors", Color: "pink", Priority: PriorityMedium},
		{ID: "5", ColumnID: ColumnDone, Title: "UI Kit Docs", Content: "Create UI kit documentation", Color: "orange", Priority: PriorityLow},
	}
}

// DefaultBoard returns the initial board for a project.
// Only the default project gets the sample tasks.
func DefaultBoard(projectID string) BoardData {
	board := BoardData{Columns: DefaultColumns(), Tasks: []Task{}}
	if projectID == DefaultProjectID {
		board.Tasks = SampleTasks()
	}
	return board
}
