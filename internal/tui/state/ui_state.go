package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode  Mode = iota // Default navigation mode
	SearchMode              // Typing a filter query (/)
	FormMode                // A huh form is open
	ConfirmMode             // Confirming a deletion
	HelpMode                // Displaying help screen
	DetailMode              // Read-only task detail popup
)

func (m Mode) String() string {
	switch m {
	case SearchMode:
		return "search"
	case FormMode:
		return "form"
	case ConfirmMode:
		return "confirm"
	case HelpMode:
		return "help"
	case DetailMode:
		return "detail"
	default:
		return "normal"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// taskScrollOffsets tracks the index of the first visible card per column
	taskScrollOffsets map[string]int

	sidebarOpen bool

	// viewingTask is the task shown in DetailMode
	viewingTask string
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[string]int),
		sidebarOpen:       true,
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(index, 0)
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(index, 0)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(offset, 0)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is
// inside a window of size columns.
func (s *UIState) EnsureSelectionVisible(size int) {
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+size {
		s.viewportOffset = s.selectedColumn - size + 1
	}
}

// ResetSelection resets both column and task selection to zero.
// This is typically called when switching projects or clearing state.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	s.taskScrollOffsets = make(map[string]int)
}

// TaskScrollOffsets returns the per-column card offsets.
func (s *UIState) TaskScrollOffsets() map[string]int {
	return s.taskScrollOffsets
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(columnID string) int {
	return s.taskScrollOffsets[columnID]
}

// SetTaskScrollOffset updates the vertical scroll offset for a given column.
func (s *UIState) SetTaskScrollOffset(columnID string, offset int) {
	s.taskScrollOffsets[columnID] = max(0, offset)
}

// EnsureTaskVisible adjusts the scroll offset to ensure the selected task is visible.
func (s *UIState) EnsureTaskVisible(columnID string, selectedTaskIdx int, visibleCount int) {
	offset := s.TaskScrollOffset(columnID)

	if selectedTaskIdx < offset {
		s.taskScrollOffsets[columnID] = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[columnID] = selectedTaskIdx - visibleCount + 1
	}
}

// SidebarOpen reports whether the project sidebar is shown.
func (s *UIState) SidebarOpen() bool {
	return s.sidebarOpen
}

// ToggleSidebar flips the sidebar.
func (s *UIState) ToggleSidebar() {
	s.sidebarOpen = !s.sidebarOpen
}

// ViewingTask returns the task id shown in DetailMode.
func (s *UIState) ViewingTask() string {
	return s.viewingTask
}

// SetViewingTask sets the task id shown in DetailMode.
func (s *UIState) SetViewingTask(id string) {
	s.viewingTask = id
}
