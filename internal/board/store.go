// Package board holds the authoritative column and task ordering for the
// active project and the primitive mutations used by CRUD and drag-and-drop.
package board

import (
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Store owns the ordered column sequence and the ordered task sequence of a
// single project. A task's rank inside its column is its position in the task
// sequence filtered by ColumnID.
//
// Store is not safe for concurrent use; callers serialize access (the board
// service holds a mutex around it).
type Store struct {
	columns []models.Column
	tasks   []models.Task

	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	color  func() string

	completionColumn string
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for dangling-reference diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator overrides the id generator for new columns and tasks.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithColorPicker overrides how new tasks pick their cosmetic colour.
func WithColorPicker(pick func() string) Option {
	return func(s *Store) {
		s.color = pick
	}
}

// WithCompletionColumn sets the column counted as completed by Stats.
func WithCompletionColumn(columnID string) Option {
	return func(s *Store) {
		if columnID != "" {
			s.completionColumn = columnID
		}
	}
}

// NewStore builds a store from persisted board data. Tasks that reference a
// column missing from data are dropped so no orphan is ever observable.
func NewStore(data models.BoardData, opts ...Option) *Store {
	s := &Store{
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
		color:  randomColor,

		completionColumn: models.DefaultCompletionColumn,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(data)
	return s
}

func randomColor() string {
	return models.TaskColors[rand.IntN(len(models.TaskColors))]
}

func (s *Store) load(data models.BoardData) {
	s.columns = slices.Clone(data.Columns)
	if s.columns == nil {
		s.columns = []models.Column{}
	}
	s.tasks = make([]models.Task, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		if s.columnIndex(t.ColumnID) == -1 {
			s.logger.Warn("dropping orphan task", "task_id", t.ID, "column_id", t.ColumnID)
			continue
		}
		if !t.Priority.Valid() {
			t.Priority = models.ParsePriority(string(t.Priority))
		}
		s.tasks = append(s.tasks, t)
	}
}

// ============================================================================
// Read side
// ============================================================================

// Columns returns a copy of the ordered columns.
func (s *Store) Columns() []models.Column {
	return slices.Clone(s.columns)
}

// Tasks returns a copy of the ordered tasks of every column.
func (s *Store) Tasks() []models.Task {
	return slices.Clone(s.tasks)
}

// Column looks up a column by id.
func (s *Store) Column(id string) (models.Column, bool) {
	i := s.columnIndex(id)
	if i == -1 {
		return models.Column{}, false
	}
	return s.columns[i], true
}

// ColumnIndex returns the rank of a column, or -1.
func (s *Store) ColumnIndex(id string) int {
	return s.columnIndex(id)
}

// Task looks up a task by id.
func (s *Store) Task(id string) (models.Task, bool) {
	i := s.taskIndex(id)
	if i == -1 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// TasksInColumn returns the ordered tasks owned by a column.
func (s *Store) TasksInColumn(columnID string) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	return out
}

// TasksByColumn groups tasks per column, honoring a search query over title
// and content. Every column has an entry, possibly empty.
func (s *Store) TasksByColumn(query string) map[string][]models.Task {
	lower := strings.ToLower(strings.TrimSpace(query))
	groups := make(map[string][]models.Task, len(s.columns))
	for _, c := range s.columns {
		groups[c.ID] = []models.Task{}
	}
	for _, t := range s.tasks {
		if _, ok := groups[t.ColumnID]; !ok || !t.Matches(lower) {
			continue
		}
		groups[t.ColumnID] = append(groups[t.ColumnID], t)
	}
	return groups
}

// Snapshot returns a deep copy of the board, suitable for persisting.
func (s *Store) Snapshot() models.BoardData {
	return models.BoardData{Columns: s.Columns(), Tasks: s.Tasks()}
}

// Restore replaces the whole board with data.
func (s *Store) Restore(data models.BoardData) {
	s.load(data)
}

// ============================================================================
// Columns
// ============================================================================

// CreateColumn appends a new column. A blank title becomes "Column N".
func (s *Store) CreateColumn(title string) models.Column {
	title = strings.TrimSpace(title)
	if title == "" {
		title = fmt.Sprintf("Column %d", len(s.columns)+1)
	}
	col := models.Column{ID: s.newID(), Title: title}
	s.columns = append(s.columns, col)
	return col
}

// RenameColumn changes a column's title.
func (s *Store) RenameColumn(id, title string) bool {
	i := s.columnIndex(id)
	if i == -1 {
		s.dangling("rename column", "column_id", id)
		return false
	}
	if s.columns[i].Title == title {
		return false
	}
	s.columns[i].Title = title
	return true
}

// DeleteColumn removes a column together with every task it owns.
func (s *Store) DeleteColumn(id string) bool {
	i := s.columnIndex(id)
	if i == -1 {
		s.dangling("delete column", "column_id", id)
		return false
	}
	s.columns = slices.Delete(s.columns, i, i+1)
	s.tasks = slices.DeleteFunc(s.tasks, func(t models.Task) bool {
		return t.ColumnID == id
	})
	return true
}

// MoveColumn relocates a column to toIndex in the column sequence. toIndex is
// clamped into range. Tasks are not touched.
func (s *Store) MoveColumn(id string, toIndex int) bool {
	from := s.columnIndex(id)
	if from == -1 {
		s.dangling("move column", "column_id", id)
		return false
	}
	to := clamp(toIndex, 0, len(s.columns)-1)
	if from == to {
		return false
	}
	s.columns = arrayMove(s.columns, from, to)
	return true
}

// ============================================================================
// Tasks
// ============================================================================

// CreateTask appends a task to a column. It reports false, creating nothing,
// when the column does not exist.
func (s *Store) CreateTask(columnID string, init models.TaskInit) (models.Task, bool) {
	if s.columnIndex(columnID) == -1 {
		s.dangling("create task", "column_id", columnID)
		return models.Task{}, false
	}

	title := strings.TrimSpace(init.Title)
	if title == "" {
		title = fmt.Sprintf("Task %d", len(s.tasks)+1)
	}
	priority := init.Priority
	if !priority.Valid() {
		priority = models.PriorityMedium
	}
	color := init.Color
	if color == "" {
		color = s.color()
	}

	task := models.Task{
		ID:        s.newID(),
		ColumnID:  columnID,
		Title:     title,
		Content:   init.Content,
		Priority:  priority,
		Color:     color,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, task)
	return task, true
}

// UpdateTask applies a partial update. A patch naming a column that does not
// exist is rejected entirely.
func (s *Store) UpdateTask(id string, patch models.TaskPatch) bool {
	i := s.taskIndex(id)
	if i == -1 {
		s.dangling("update task", "task_id", id)
		return false
	}
	if patch.ColumnID != nil && s.columnIndex(*patch.ColumnID) == -1 {
		s.dangling("update task column", "task_id", id, "column_id", *patch.ColumnID)
		return false
	}

	t := s.tasks[i]
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.Priority != nil {
		t.Priority = models.ParsePriority(string(*patch.Priority))
	}
	if patch.Color != nil {
		t.Color = *patch.Color
	}
	if patch.ColumnID != nil {
		t.ColumnID = *patch.ColumnID
	}
	t.UpdatedAt = s.now()
	s.tasks[i] = t
	return true
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string) bool {
	i := s.taskIndex(id)
	if i == -1 {
		s.dangling("delete task", "task_id", id)
		return false
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return true
}

// ReassignTask changes the owning column of a task without moving it in the
// overall task sequence.
func (s *Store) ReassignTask(taskID, columnID string) bool {
	i := s.taskIndex(taskID)
	if i == -1 {
		s.dangling("reassign task", "task_id", taskID)
		return false
	}
	if s.columnIndex(columnID) == -1 {
		s.dangling("reassign task", "column_id", columnID)
		return false
	}
	if s.tasks[i].ColumnID == columnID {
		return false
	}
	s.tasks[i].ColumnID = columnID
	return true
}

// MoveTask assigns a task to targetColumnID and places it immediately before
// beforeTaskID within that column, or at the end of the column when
// beforeTaskID is empty. This is the single mutation used both for live
// drag-over previews and for drag-end commits.
//
// beforeTaskID must name a different task that already lives in the target
// column; anything else is a dangling reference and nothing changes.
func (s *Store) MoveTask(taskID, targetColumnID, beforeTaskID string) bool {
	from := s.taskIndex(taskID)
	if from == -1 {
		s.dangling("move task", "task_id", taskID)
		return false
	}
	if s.columnIndex(targetColumnID) == -1 {
		s.dangling("move task", "column_id", targetColumnID)
		return false
	}
	if beforeTaskID != "" {
		b := s.taskIndex(beforeTaskID)
		if b == -1 || beforeTaskID == taskID || s.tasks[b].ColumnID != targetColumnID {
			s.dangling("move task", "before_task_id", beforeTaskID)
			return false
		}
	}

	moved := s.tasks[from]
	moved.ColumnID = targetColumnID
	rest := slices.Delete(slices.Clone(s.tasks), from, from+1)

	insertAt := len(rest)
	if beforeTaskID != "" {
		insertAt = indexOfTask(rest, beforeTaskID)
	} else if last := lastIndexInColumn(rest, targetColumnID); last != -1 {
		insertAt = last + 1
	}
	next := slices.Insert(rest, insertAt, moved)

	if sameOrder(s.tasks, next) {
		return false
	}
	s.tasks = next
	return true
}

// NextInColumn returns the id of the task that follows taskID inside its
// column, or "" when taskID is last (or unknown).
func (s *Store) NextInColumn(taskID string) string {
	i := s.taskIndex(taskID)
	if i == -1 {
		return ""
	}
	col := s.tasks[i].ColumnID
	for _, t := range s.tasks[i+1:] {
		if t.ColumnID == col {
			return t.ID
		}
	}
	return ""
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Store) columnIndex(id string) int {
	return slices.IndexFunc(s.columns, func(c models.Column) bool { return c.ID == id })
}

func (s *Store) taskIndex(id string) int {
	return indexOfTask(s.tasks, id)
}

func (s *Store) dangling(op string, args ...any) {
	s.logger.Debug("ignoring dangling reference", append([]any{"op", op}, args...)...)
}

func indexOfTask(tasks []models.Task, id string) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
}

func lastIndexInColumn(tasks []models.Task, columnID string) int {
	for i := len(tasks) - 1; i >= 0; i-- {
		if tasks[i].ColumnID == columnID {
			return i
		}
	}
	return -1
}

// sameOrder reports whether a and b give every column the same ordered
// subsequence. Interleaving across columns is not observable.
func sameOrder(a, b []models.Task) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.EqualFunc(groupIDs(a), groupIDs(b), slices.Equal[[]string])
}

func groupIDs(tasks []models.Task) map[string][]string {
	out := make(map[string][]string)
	for _, t := range tasks {
		out[t.ColumnID] = append(out[t.ColumnID], t.ID)
	}
	return out
}

// arrayMove returns a copy of items with the element at from moved to to.
func arrayMove[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
