package kanban

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/storage"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// fakeRepo keeps boards in memory and counts saves.
type fakeRepo struct {
	mu      sync.Mutex
	boards  map[string]models.BoardData
	saves   int
	loadErr error
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{boards: map[string]models.BoardData{}}
}

func (f *fakeRepo) LoadBoard(_ context.Context, projectID string) (models.BoardData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return models.BoardData{}, f.loadErr
	}
	if data, ok := f.boards[projectID]; ok {
		return data.Clone(), nil
	}
	return models.DefaultBoard(projectID), nil
}

func (f *fakeRepo) SaveBoard(_ context.Context, projectID string, data models.BoardData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.boards[projectID] = data.Clone()
	return nil
}

func (f *fakeRepo) saved(projectID string) models.BoardData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.boards[projectID]
}

func setupTestService(t *testing.T, opts ...Option) (*Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc, err := NewService(context.Background(), repo, models.DefaultProjectID, opts...)
	require.NoError(t, err)
	return svc, repo
}

func taskIDs(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

// ============================================================================
// LOADING
// ============================================================================

func TestNewService_LoadsDefaultBoard(t *testing.T) {
	svc, repo := setupTestService(t)

	view := svc.View("")
	assert.Equal(t, models.DefaultProjectID, view.ProjectID)
	assert.Len(t, view.Columns, 3)
	assert.Equal(t, []string{"1", "2"}, taskIDs(view.TasksByColumn[models.ColumnTodo]))
	assert.False(t, view.Dragging)
	assert.Zero(t, repo.saves, "loading does not save")
}

func TestNewService_LoadErrorFallsBack(t *testing.T) {
	repo := newFakeRepo()
	repo.loadErr = errors.New("locked")

	svc, err := NewService(context.Background(), repo, "p2")
	require.Error(t, err)
	require.NotNil(t, svc)

	view := svc.View("")
	assert.Equal(t, models.DefaultColumns(), view.Columns)
}

func TestSwitchProject_DropsDrag(t *testing.T) {
	svc, _ := setupTestService(t)
	task, _ := svc.Task("1")
	require.True(t, svc.StartDrag(dnd.TaskEntity(task)))

	require.NoError(t, svc.SwitchProject(context.Background(), "p2"))
	assert.False(t, svc.Dragging())
	assert.Equal(t, "p2", svc.ProjectID())
	assert.Empty(t, svc.View("").TasksByColumn[models.ColumnTodo])
}

// ============================================================================
// CRUD PERSISTS
// ============================================================================

func TestCRUD_PersistsEachCommit(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()

	col, err := svc.CreateColumn(ctx, "Review")
	require.NoError(t, err)
	task, err := svc.CreateTask(ctx, col.ID, models.TaskInit{Title: "Check"})
	require.NoError(t, err)
	title := "Check twice"
	require.NoError(t, svc.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title}))
	require.NoError(t, svc.RenameColumn(ctx, col.ID, "QA"))
	require.NoError(t, svc.MoveColumn(ctx, col.ID, 0))
	require.NoError(t, svc.DeleteTask(ctx, "1"))

	assert.Equal(t, 6, repo.saves)
	saved := repo.saved(models.DefaultProjectID)
	assert.Equal(t, "QA", saved.Columns[0].Title)
	assert.Len(t, saved.Tasks, 5)
}

func TestCRUD_NotFound(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	missing := "nope"

	_, err := svc.CreateTask(ctx, "nope", models.TaskInit{})
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.ErrorIs(t, svc.DeleteColumn(ctx, "nope"), ErrColumnNotFound)
	assert.ErrorIs(t, svc.RenameColumn(ctx, "nope", "x"), ErrColumnNotFound)
	assert.ErrorIs(t, svc.MoveColumn(ctx, "nope", 0), ErrColumnNotFound)
	assert.ErrorIs(t, svc.DeleteTask(ctx, "nope"), ErrTaskNotFound)
	assert.ErrorIs(t, svc.UpdateTask(ctx, "nope", models.TaskPatch{}), ErrTaskNotFound)
	assert.ErrorIs(t, svc.UpdateTask(ctx, "1", models.TaskPatch{ColumnID: &missing}), ErrColumnNotFound)
	assert.Zero(t, repo.saves)
}

func TestRenameColumn_BlankIgnored(t *testing.T) {
	svc, repo := setupTestService(t)

	require.NoError(t, svc.RenameColumn(context.Background(), models.ColumnTodo, "   "))
	col, _ := svc.Column(models.ColumnTodo)
	assert.Equal(t, "Todo", col.Title)
	assert.Zero(t, repo.saves)
}

// Deleting "doing" with two tasks removes exactly those two.
func TestDeleteColumn_Cascade(t *testing.T) {
	svc, repo := setupTestService(t)

	require.NoError(t, svc.DeleteColumn(context.Background(), models.ColumnDoing))

	view := svc.View("")
	assert.Equal(t, []string{"1", "2"}, taskIDs(view.TasksByColumn[models.ColumnTodo]))
	assert.Equal(t, []string{"5"}, taskIDs(view.TasksByColumn[models.ColumnDone]))
	assert.NotContains(t, view.TasksByColumn, models.ColumnDoing)
	assert.Len(t, repo.saved(models.DefaultProjectID).Tasks, 3)
}

func TestSaveFailureIsNonFatal(t *testing.T) {
	svc, repo := setupTestService(t)
	repo.saveErr = errors.New("quota exceeded")

	_, err := svc.CreateColumn(context.Background(), "Review")
	require.Error(t, err)
	assert.True(t, IsSaveError(err))
	assert.Len(t, svc.View("").Columns, 4, "in-memory state keeps the change")
}

// ============================================================================
// KEYBOARD MOVES
// ============================================================================

func TestShiftTask(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	celebrate, err := svc.ShiftTask(ctx, "3", 1)
	require.NoError(t, err)
	assert.True(t, celebrate)
	task, _ := svc.Task("3")
	assert.Equal(t, models.ColumnDone, task.ColumnID)

	celebrate, err = svc.ShiftTask(ctx, "3", 1)
	require.NoError(t, err)
	assert.False(t, celebrate, "already in the last column")

	celebrate, err = svc.ShiftTask(ctx, "3", -5)
	require.NoError(t, err)
	assert.False(t, celebrate)
	task, _ = svc.Task("3")
	assert.Equal(t, models.ColumnTodo, task.ColumnID)
}

func TestReorderTask(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ReorderTask(ctx, "2", -1))
	assert.Equal(t, []string{"2", "1"}, taskIDs(svc.View("").TasksByColumn[models.ColumnTodo]))

	require.NoError(t, svc.ReorderTask(ctx, "2", 1))
	assert.Equal(t, []string{"1", "2"}, taskIDs(svc.View("").TasksByColumn[models.ColumnTodo]))

	require.NoError(t, svc.ReorderTask(ctx, "2", 1), "already last")
	assert.Equal(t, []string{"1", "2"}, taskIDs(svc.View("").TasksByColumn[models.ColumnTodo]))
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

func TestDrag_HoverNotPersistedUntilRelease(t *testing.T) {
	svc, repo := setupTestService(t)
	ctx := context.Background()
	task, _ := svc.Task("1")

	require.True(t, svc.StartDrag(dnd.TaskEntity(task)))
	assert.True(t, svc.View("").Dragging)
	require.True(t, svc.Hover(dnd.TaskTarget("5", models.ColumnDone), true))
	assert.Zero(t, repo.saves)

	res, err := svc.Release(ctx, dnd.TaskTarget("5", models.ColumnDone), true)
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.Celebrated)
	assert.Equal(t, 1, repo.saves)

	saved := repo.saved(models.DefaultProjectID)
	var doneIDs []string
	for _, tk := range saved.Tasks {
		if tk.ColumnID == models.ColumnDone {
			doneIDs = append(doneIDs, tk.ID)
		}
	}
	assert.Equal(t, []string{"1", "5"}, doneIDs)
}

func TestDrag_NoChangeNoSave(t *testing.T) {
	svc, repo := setupTestService(t)
	task, _ := svc.Task("1")

	require.True(t, svc.StartDrag(dnd.TaskEntity(task)))
	res, err := svc.CancelDrag(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Zero(t, repo.saves)
}

func TestDrag_StickyCancelPersists(t *testing.T) {
	svc, repo := setupTestService(t)
	task, _ := svc.Task("1")

	require.True(t, svc.StartDrag(dnd.TaskEntity(task)))
	svc.Hover(dnd.ColumnTarget(models.ColumnDoing), true)
	res, err := svc.CancelDrag(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 1, repo.saves)
}

func TestDrag_RollbackOption(t *testing.T) {
	svc, repo := setupTestService(t, WithRollbackOnInvalidRelease(true))
	task, _ := svc.Task("1")

	require.True(t, svc.StartDrag(dnd.TaskEntity(task)))
	svc.Hover(dnd.ColumnTarget(models.ColumnDoing), true)
	res, err := svc.Release(context.Background(), dnd.Target{}, false)
	require.NoError(t, err)
	assert.True(t, res.RolledBack)

	got, _ := svc.Task("1")
	assert.Equal(t, models.ColumnTodo, got.ColumnID)
	assert.Equal(t, 1, repo.saves)
}

func TestDrag_ColumnReorder(t *testing.T) {
	svc, _ := setupTestService(t)
	col, _ := svc.Column(models.ColumnDone)

	require.True(t, svc.StartDrag(dnd.ColumnEntity(col)))
	_, err := svc.Release(context.Background(), dnd.ColumnTarget(models.ColumnTodo), true)
	require.NoError(t, err)

	var ids []string
	for _, c := range svc.View("").Columns {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"done", "todo", "doing"}, ids)
}

// Concurrent callers serialize on the service mutex.
func TestService_ConcurrentMutations(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.CreateTask(ctx, models.ColumnTodo, models.TaskInit{Title: "x"})
		}()
	}
	wg.Wait()

	assert.Len(t, svc.Snapshot().Tasks, 25)
}

// End to end against the SQLite-backed bridge.
func TestService_WithStorageBridge(t *testing.T) {
	ctx := context.Background()
	db, err := database.InitDB(ctx, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	bridge := storage.New(database.NewKVRepository(db), nil)

	svc, err := NewService(ctx, bridge, models.DefaultProjectID)
	require.NoError(t, err)
	require.NoError(t, svc.MoveTask(ctx, "2", models.ColumnTodo, "1"))

	reloaded, err := NewService(ctx, bridge, models.DefaultProjectID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, taskIDs(reloaded.View("").TasksByColumn[models.ColumnTodo]))
}
