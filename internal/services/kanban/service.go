// Package kanban owns the active project's board and drag session, and
// persists the board after every committed change.
package kanban

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/thenoetrevino/tablero/internal/board"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
)

// repository defines the persistence methods needed by the board service
// This interface is private to the service layer
type repository interface {
	LoadBoard(ctx context.Context, projectID string) (models.BoardData, error)
	SaveBoard(ctx context.Context, projectID string, data models.BoardData) error
}

// View is everything the presentation layer needs for one render.
type View struct {
	ProjectID     string
	Columns       []models.Column
	TasksByColumn map[string][]models.Task
	Stats         board.Stats
	Active        dnd.Entity
	Dragging      bool
}

// Service serializes all board mutations behind one mutex.
type Service struct {
	mu sync.Mutex

	repo      repository
	logger    *slog.Logger
	projectID string
	store     *board.Store
	ctrl      *dnd.Controller

	feedback         dnd.Feedback
	completionColumn string
	rollback         bool
	storeOpts        []board.Option
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFeedback sets the drag feedback sink.
func WithFeedback(f dnd.Feedback) Option {
	return func(s *Service) {
		s.feedback = f
	}
}

// WithCompletionColumn sets the column whose entry is celebrated.
func WithCompletionColumn(columnID string) Option {
	return func(s *Service) {
		if columnID != "" {
			s.completionColumn = columnID
		}
	}
}

// WithRollbackOnInvalidRelease makes invalid drops restore the pre-drag board.
func WithRollbackOnInvalidRelease(enabled bool) Option {
	return func(s *Service) {
		s.rollback = enabled
	}
}

// WithStoreOptions passes options through to every board store created.
func WithStoreOptions(opts ...board.Option) Option {
	return func(s *Service) {
		s.storeOpts = append(s.storeOpts, opts...)
	}
}

// NewService loads projectID's board. When loading fails the service still
// starts on the project's default board and the error is returned alongside.
func NewService(ctx context.Context, repo repository, projectID string, opts ...Option) (*Service, error) {
	s := &Service{
		repo:             repo,
		logger:           slog.Default(),
		feedback:         dnd.NopFeedback{},
		completionColumn: models.DefaultCompletionColumn,
	}
	for _, opt := range opts {
		opt(s)
	}
	err := s.load(ctx, projectID)
	return s, err
}

// SwitchProject drops any drag in progress and loads another project.
func (s *Service) SwitchProject(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, projectID)
}

// Reload rereads the current project from storage.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, s.projectID)
}

func (s *Service) load(ctx context.Context, projectID string) error {
	data, err := s.repo.LoadBoard(ctx, projectID)
	if err != nil {
		s.logger.Error("failed to load board, using defaults", "project_id", projectID, "error", err)
		data = models.DefaultBoard(projectID)
		err = fmt.Errorf("failed to load board %s: %w", projectID, err)
	}

	opts := append([]board.Option{
		board.WithLogger(s.logger),
		board.WithCompletionColumn(s.completionColumn),
	}, s.storeOpts...)

	s.projectID = projectID
	s.store = board.NewStore(data, opts...)
	s.ctrl = dnd.NewController(s.store,
		dnd.WithFeedback(s.feedback),
		dnd.WithCompletionColumn(s.completionColumn),
		dnd.WithRollbackOnInvalidRelease(s.rollback),
		dnd.WithControllerLogger(s.logger),
	)
	return err
}

// persist saves the board. Callers hold the mutex.
func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.SaveBoard(ctx, s.projectID, s.store.Snapshot()); err != nil {
		s.logger.Error("failed to save board", "project_id", s.projectID, "error", err)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	return nil
}

// ============================================================================
// READ
// ============================================================================

// ProjectID returns the loaded project.
func (s *Service) ProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectID
}

// View returns a render snapshot, with tasks filtered by query.
func (s *Service) View(query string) View {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, dragging := s.ctrl.Active()
	return View{
		ProjectID:     s.projectID,
		Columns:       s.store.Columns(),
		TasksByColumn: s.store.TasksByColumn(query),
		Stats:         s.store.Stats(),
		Active:        active,
		Dragging:      dragging,
	}
}

// Snapshot returns a copy of the board.
func (s *Service) Snapshot() models.BoardData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Task looks up a task.
func (s *Service) Task(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Task(id)
}

// Column looks up a column.
func (s *Service) Column(id string) (models.Column, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Column(id)
}

// ============================================================================
// COLUMNS
// ============================================================================

// CreateColumn appends a column.
func (s *Service) CreateColumn(ctx context.Context, title string) (models.Column, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.store.CreateColumn(title)
	return col, s.persist(ctx)
}

// RenameColumn retitles a column. A blank title is ignored.
func (s *Service) RenameColumn(ctx context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Column(id); !ok {
		return ErrColumnNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" || !s.store.RenameColumn(id, title) {
		return nil
	}
	return s.persist(ctx)
}

// DeleteColumn removes a column and its tasks.
func (s *Service) DeleteColumn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteColumn(id) {
		return ErrColumnNotFound
	}
	return s.persist(ctx)
}

// MoveColumn relocates a column by index.
func (s *Service) MoveColumn(ctx context.Context, id string, toIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Column(id); !ok {
		return ErrColumnNotFound
	}
	if !s.store.MoveColumn(id, toIndex) {
		return nil
	}
	return s.persist(ctx)
}

// ============================================================================
// TASKS
// ============================================================================

// CreateTask appends a task to a column.
func (s *Service) CreateTask(ctx context.Context, columnID string, init models.TaskInit) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.CreateTask(columnID, init)
	if !ok {
		return models.Task{}, ErrColumnNotFound
	}
	return task, s.persist(ctx)
}

// UpdateTask applies a partial update.
func (s *Service) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Task(id); !ok {
		return ErrTaskNotFound
	}
	if patch.ColumnID != nil {
		if _, ok := s.store.Column(*patch.ColumnID); !ok {
			return ErrColumnNotFound
		}
	}
	if !s.store.UpdateTask(id, patch) {
		return nil
	}
	return s.persist(ctx)
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.DeleteTask(id) {
		return ErrTaskNotFound
	}
	return s.persist(ctx)
}

// MoveTask places a task before beforeTaskID in columnID ("" = end).
func (s *Service) MoveTask(ctx context.Context, id, columnID, beforeTaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Task(id); !ok {
		return ErrTaskNotFound
	}
	if !s.store.MoveTask(id, columnID, beforeTaskID) {
		return nil
	}
	return s.persist(ctx)
}

// ShiftTask moves a task to the end of the column delta steps away,
// clamped to the first/last column. It reports whether a celebration is due
// (the task entered the completion column).
func (s *Service) ShiftTask(ctx context.Context, id string, delta int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.Task(id)
	if !ok {
		return false, ErrTaskNotFound
	}
	cols := s.store.Columns()
	from := s.store.ColumnIndex(task.ColumnID)
	to := max(0, min(from+delta, len(cols)-1))
	if to == from {
		return false, nil
	}

	target := cols[to].ID
	if !s.store.MoveTask(id, target, "") {
		return false, nil
	}
	celebrate := target == s.completionColumn && task.ColumnID != s.completionColumn
	return celebrate, s.persist(ctx)
}

// ReorderTask moves a task one step up (delta<0) or down inside its column.
func (s *Service) ReorderTask(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.Task(id)
	if !ok {
		return ErrTaskNotFound
	}
	peers := s.store.TasksInColumn(task.ColumnID)
	idx := -1
	for i, p := range peers {
		if p.ID == id {
			idx = i
		}
	}
	to := max(0, min(idx+delta, len(peers)-1))
	if to == idx {
		return nil
	}

	before := ""
	if delta < 0 {
		before = peers[to].ID
	} else if to+1 < len(peers) {
		before = peers[to+1].ID
	}
	if !s.store.MoveTask(id, task.ColumnID, before) {
		return nil
	}
	return s.persist(ctx)
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

// Dragging reports whether a gesture is active.
func (s *Service) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Dragging()
}

// StartDrag begins a gesture.
func (s *Service) StartDrag(e dnd.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Start(e)
}

// Hover feeds a pointer-move tick. Hover changes are not persisted until the
// gesture ends.
func (s *Service) Hover(t dnd.Target, ok bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Hover(t, ok)
}

// Release ends the gesture and persists the result when it changed the board.
func (s *Service) Release(ctx context.Context, t dnd.Target, ok bool) (dnd.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(ctx, s.ctrl.Release(t, ok))
}

// CancelDrag ends the gesture as an invalid release.
func (s *Service) CancelDrag(ctx context.Context) (dnd.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(ctx, s.ctrl.Cancel())
}

func (s *Service) finish(ctx context.Context, res dnd.Result) (dnd.Result, error) {
	if !res.Changed {
		return res, nil
	}
	return res, s.persist(ctx)
}

// IsSaveError reports whether err is a non-fatal persistence failure.
func IsSaveError(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}
