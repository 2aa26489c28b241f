package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ============================================================================
// KV REPOSITORY
// ============================================================================

func TestKV_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(setupTestDB(t))

	_, ok, err := repo.Get(ctx, "kanban-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "kanban-theme", `"dark"`))
	require.NoError(t, repo.Set(ctx, "kanban-theme", `"light"`))

	value, ok, err := repo.Get(ctx, "kanban-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"light"`, value)
}

func TestKV_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(setupTestDB(t))

	require.NoError(t, repo.Set(ctx, "a", "1"))
	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "missing"), "deleting a missing key is fine")

	_, ok, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_PrefixOperations(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(setupTestDB(t))

	for _, key := range []string{"kanban-projects", "kanban-tasks-p1", "kanban_other", "other"} {
		require.NoError(t, repo.Set(ctx, key, "x"))
	}

	keys, err := repo.Keys(ctx, "kanban-")
	require.NoError(t, err)
	assert.Equal(t, []string{"kanban-projects", "kanban-tasks-p1"}, keys)

	n, err := repo.DeleteByPrefix(ctx, "kanban-")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	keys, err = repo.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"kanban_other", "other"}, keys)
}

func TestKV_BatchRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(setupTestDB(t))
	require.NoError(t, repo.Set(ctx, "keep", "old"))

	boom := errors.New("boom")
	err := repo.Batch(ctx, func(tx KVStore) error {
		if err := tx.Set(ctx, "keep", "new"); err != nil {
			return err
		}
		if _, err := tx.DeleteByPrefix(ctx, ""); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	value, ok, err := repo.Get(ctx, "keep")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "old", value)
}

func TestKV_BatchCommits(t *testing.T) {
	ctx := context.Background()
	repo := NewKVRepository(setupTestDB(t))

	err := repo.Batch(ctx, func(tx KVStore) error {
		if err := tx.Set(ctx, "a", "1"); err != nil {
			return err
		}
		value, ok, err := tx.Get(ctx, "a")
		require.NoError(t, err)
		assert.True(t, ok, "writes are visible inside the batch")
		assert.Equal(t, "1", value)
		return tx.Set(ctx, "b", "2")
	})
	require.NoError(t, err)

	keys, err := repo.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

// ============================================================================
// INIT
// ============================================================================

func TestInitDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tablero.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewKVRepository(db).Set(ctx, "kanban-active-project", `"p1"`))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := NewKVRepository(db).Get(ctx, "kanban-active-project")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"p1"`, value)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(ctx, db))

	var version int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, len(migrations), version)
}
