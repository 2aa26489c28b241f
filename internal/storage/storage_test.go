package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupTestBridge(t *testing.T) (*Bridge, *database.KVRepository) {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := database.NewKVRepository(db)
	return New(repo, nil), repo
}

// failingStore fails any write to failKey, inside or outside a batch.
type failingStore struct {
	*database.KVRepository
	failKey string
}

type failingTx struct {
	database.KVStore
	failKey string
}

func (f failingTx) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errors.New("disk full")
	}
	return f.KVStore.Set(ctx, key, value)
}

func (f failingStore) Batch(ctx context.Context, fn func(tx database.KVStore) error) error {
	return f.KVRepository.Batch(ctx, func(tx database.KVStore) error {
		return fn(failingTx{KVStore: tx, failKey: f.failKey})
	})
}

func twoProjectFixture(t *testing.T, b *Bridge) {
	t.Helper()
	ctx := context.Background()
	projects := []models.Project{models.DefaultProject(), {ID: "p2", Name: "Side"}}
	require.NoError(t, b.SaveProjects(ctx, projects))
	require.NoError(t, b.SetActiveProject(ctx, "p2"))

	board := models.DefaultBoard("p2")
	board.Tasks = []models.Task{{ID: "t1", ColumnID: models.ColumnDoing, Title: "Write", Priority: models.PriorityHigh, Color: "red"}}
	require.NoError(t, b.SaveBoard(ctx, "p2", board))

	def := models.DefaultBoard(models.DefaultProjectID)
	def.Columns = append(def.Columns, models.Column{ID: "review", Title: "Review"})
	require.NoError(t, b.SaveBoard(ctx, models.DefaultProjectID, def))
}

// ============================================================================
// LOAD / SAVE
// ============================================================================

func TestLoadBoard_Defaults(t *testing.T) {
	b, _ := setupTestBridge(t)
	ctx := context.Background()

	def, err := b.LoadBoard(ctx, models.DefaultProjectID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), def.Columns)
	assert.Len(t, def.Tasks, len(models.SampleTasks()))

	other, err := b.LoadBoard(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), other.Columns)
	assert.Empty(t, other.Tasks)
	assert.NotNil(t, other.Tasks)
}

func TestLoadBoard_MalformedFallsBack(t *testing.T) {
	b, repo := setupTestBridge(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, ColumnsKey("p2"), "{not json"))
	require.NoError(t, repo.Set(ctx, TasksKey("p2"), `{"id":"not-an-array"}`))

	data, err := b.LoadBoard(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), data.Columns)
	assert.Empty(t, data.Tasks)
}

func TestLoadBoard_NullFallsBack(t *testing.T) {
	b, repo := setupTestBridge(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, ColumnsKey("p2"), "null"))

	data, err := b.LoadBoard(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), data.Columns)
}

func TestLoadBoard_LegacyKeysForDefaultProject(t *testing.T) {
	b, repo := setupTestBridge(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "kanban-columns", `[{"id":"x","title":"Legacy"}]`))
	require.NoError(t, repo.Set(ctx, "kanban-tasks", `[{"id":"1","columnId":"x","title":"Old","content":"","priority":"Low"}]`))

	data, err := b.LoadBoard(ctx, models.DefaultProjectID)
	require.NoError(t, err)
	assert.Equal(t, []models.Column{{ID: "x", Title: "Legacy"}}, data.Columns)
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, "Old", data.Tasks[0].Title)

	other, err := b.LoadBoard(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), other.Columns, "legacy keys only serve the default project")
}

func TestSaveBoard_RoundTrip(t *testing.T) {
	b, _ := setupTestBridge(t)
	ctx := context.Background()

	data := models.BoardData{
		Columns: []models.Column{{ID: "c1", Title: "One"}},
		Tasks:   []models.Task{{ID: "t1", ColumnID: "c1", Title: "T", Priority: models.PriorityLow}},
	}
	require.NoError(t, b.SaveBoard(ctx, "p9", data))

	got, err := b.LoadBoard(ctx, "p9")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, b.DeleteProjectData(ctx, "p9"))
	got, err = b.LoadBoard(ctx, "p9")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultColumns(), got.Columns)
}

func TestSaveBoard_FailureLeavesBothKeys(t *testing.T) {
	_, repo := setupTestBridge(t)
	ctx := context.Background()
	b := New(failingStore{KVRepository: repo, failKey: TasksKey("p2")}, nil)

	err := b.SaveBoard(ctx, "p2", models.DefaultBoard("p2"))
	require.Error(t, err)

	_, ok, err := repo.Get(ctx, ColumnsKey("p2"))
	require.NoError(t, err)
	assert.False(t, ok, "columns write rolled back with the tasks write")
}

// ============================================================================
// PROJECTS / THEME
// ============================================================================

func TestProjects_Defaults(t *testing.T) {
	b, _ := setupTestBridge(t)
	ctx := context.Background()

	projects, err := b.Projects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Project{models.DefaultProject()}, projects)

	active, err := b.ActiveProject(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProjectID, active)
}

func TestTheme(t *testing.T) {
	b, _ := setupTestBridge(t)
	ctx := context.Background()

	_, ok, err := b.Theme(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.SetTheme(ctx, "gradient"))
	theme, ok, err := b.Theme(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "gradient", theme)
}

// ============================================================================
// EXPORT / IMPORT
// ============================================================================

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src, _ := setupTestBridge(t)
	twoProjectFixture(t, src)

	doc, err := src.Export(ctx, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, models.BackupVersion, doc.Version)
	assert.Equal(t, "p2", doc.ActiveProjectID)

	var buf bytes.Buffer
	require.NoError(t, WriteExport(&buf, doc))
	parsed, err := ParseExport(&buf)
	require.NoError(t, err)

	dst, _ := setupTestBridge(t)
	require.NoError(t, dst.Import(ctx, parsed))

	for _, p := range doc.Projects {
		want, err := src.LoadBoard(ctx, p.ID)
		require.NoError(t, err)
		got, err := dst.LoadBoard(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got, "board %s", p.ID)
	}

	srcProjects, _ := src.Projects(ctx)
	dstProjects, _ := dst.Projects(ctx)
	assert.Equal(t, srcProjects, dstProjects)

	active, _ := dst.ActiveProject(ctx)
	assert.Equal(t, "p2", active)
}

func TestImport_MissingProjectsLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	b, repo := setupTestBridge(t)
	twoProjectFixture(t, b)
	before, err := repo.Keys(ctx, "")
	require.NoError(t, err)

	_, err = ParseExport(strings.NewReader(`{"version":1,"projectData":{}}`))
	assert.ErrorIs(t, err, ErrInvalidBackup)

	err = b.Import(ctx, models.ExportDocument{Version: 1})
	assert.ErrorIs(t, err, ErrInvalidBackup)

	after, err := repo.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	projects, _ := b.Projects(ctx)
	assert.Len(t, projects, 2)
}

func TestImport_FailureMidwayRollsBack(t *testing.T) {
	ctx := context.Background()
	good, repo := setupTestBridge(t)
	twoProjectFixture(t, good)
	wantBoard, _ := good.LoadBoard(ctx, "p2")

	b := New(failingStore{KVRepository: repo, failKey: TasksKey("new")}, nil)
	doc := models.ExportDocument{
		Version:  1,
		Projects: []models.Project{{ID: "new", Name: "New"}},
		ProjectData: map[string]models.BoardData{
			"new": models.DefaultBoard("new"),
		},
	}
	require.Error(t, b.Import(ctx, doc))

	projects, _ := good.Projects(ctx)
	assert.Len(t, projects, 2)
	gotBoard, _ := good.LoadBoard(ctx, "p2")
	assert.Equal(t, wantBoard, gotBoard)
}

func TestImport_ReplacesProjectsAndKeepsTheme(t *testing.T) {
	ctx := context.Background()
	b, _ := setupTestBridge(t)
	twoProjectFixture(t, b)
	require.NoError(t, b.SetTheme(ctx, "light"))

	doc := models.ExportDocument{Projects: []models.Project{{ID: "solo", Name: "Solo"}}}
	require.NoError(t, b.Import(ctx, doc))

	projects, _ := b.Projects(ctx)
	assert.Equal(t, []models.Project{{ID: "solo", Name: "Solo"}}, projects)
	active, _ := b.ActiveProject(ctx)
	assert.Equal(t, "solo", active, "defaults to the first project")

	p2, _ := b.LoadBoard(ctx, "p2")
	assert.Empty(t, p2.Tasks, "old project data was removed")

	theme, ok, _ := b.Theme(ctx)
	assert.True(t, ok)
	assert.Equal(t, "light", theme)
}

func TestImport_LegacyMaps(t *testing.T) {
	ctx := context.Background()
	b, _ := setupTestBridge(t)

	doc, err := ParseExport(strings.NewReader(`{
		"projects": [{"id": "old", "name": "Old"}],
		"columns": {"old": [{"id": "c", "title": "C"}]},
		"tasks": {"old": [{"id": "t", "columnId": "c", "title": "T", "content": "", "priority": "High"}]}
	}`))
	require.NoError(t, err)
	require.NoError(t, b.Import(ctx, doc))

	data, err := b.LoadBoard(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, []models.Column{{ID: "c", Title: "C"}}, data.Columns)
	require.Len(t, data.Tasks, 1)
	assert.Equal(t, models.PriorityHigh, data.Tasks[0].Priority)
}

func TestParseExport_RejectsBadShapes(t *testing.T) {
	for _, input := range []string{
		``,
		`[]`,
		`{"projects": null}`,
		`{"projects": {}}`,
		`{"projects": "nope"}`,
		`{"projects": [], "projectData": []}`,
	} {
		_, err := ParseExport(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrInvalidBackup, "input %q", input)
	}
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	b, repo := setupTestBridge(t)
	twoProjectFixture(t, b)
	require.NoError(t, repo.Set(ctx, "unrelated", "1"))

	n, err := b.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	keys, err := repo.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, keys)
}

func TestTheme_AcceptsQuotedValue(t *testing.T) {
	b, repo := setupTestBridge(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, KeyTheme, `"light"`))

	theme, ok, err := b.Theme(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", theme)

	require.NoError(t, b.SetTheme(ctx, "dark"))
	raw, _, err := repo.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", raw, "stored bare like the web board")
}
