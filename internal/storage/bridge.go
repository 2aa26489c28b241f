// Package storage persists projects and boards as JSON values in the
// key-value store, using the same keys and shapes as the web board so that
// backups move between the two.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Bridge reads and writes board state. Malformed stored values fall back to
// defaults with a warning; only store failures are returned as errors.
type Bridge struct {
	kv     database.DataStore
	logger *slog.Logger
}

// New creates a bridge over kv.
func New(kv database.DataStore, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{kv: kv, logger: logger}
}

// ============================================================================
// BOARDS
// ============================================================================

// LoadBoard returns a project's columns and tasks. Missing keys yield the
// project's default board; the default project also falls back to the
// single-board keys of older builds.
func (b *Bridge) LoadBoard(ctx context.Context, projectID string) (models.BoardData, error) {
	return loadBoard(ctx, b.kv, b.logger, projectID)
}

func loadBoard(ctx context.Context, kv database.KVReader, logger *slog.Logger, projectID string) (models.BoardData, error) {
	defaults := models.DefaultBoard(projectID)

	columns, err := readProjectValue(ctx, kv, logger, projectID, ColumnsKey(projectID), legacyColumnsKey, defaults.Columns)
	if err != nil {
		return models.BoardData{}, err
	}
	tasks, err := readProjectValue(ctx, kv, logger, projectID, TasksKey(projectID), legacyTasksKey, defaults.Tasks)
	if err != nil {
		return models.BoardData{}, err
	}
	return models.BoardData{Columns: columns, Tasks: tasks}, nil
}

func readProjectValue[T any](ctx context.Context, kv database.KVReader, logger *slog.Logger, projectID, key, legacyKey string, fallback []T) ([]T, error) {
	found, err := readJSON(ctx, kv, logger, key, &[]T{})
	if err != nil {
		return nil, err
	}
	if found != nil && *found != nil {
		return *found, nil
	}
	if projectID == models.DefaultProjectID {
		legacy, err := readJSON(ctx, kv, logger, legacyKey, &[]T{})
		if err != nil {
			return nil, err
		}
		if legacy != nil && *legacy != nil {
			logger.Info("using legacy board key", "key", legacyKey)
			return *legacy, nil
		}
	}
	return fallback, nil
}

// SaveBoard writes a project's columns and tasks in one transaction.
func (b *Bridge) SaveBoard(ctx context.Context, projectID string, data models.BoardData) error {
	columns := data.Columns
	if columns == nil {
		columns = []models.Column{}
	}
	tasks := data.Tasks
	if tasks == nil {
		tasks = []models.Task{}
	}
	return b.kv.Batch(ctx, func(tx database.KVStore) error {
		if err := writeJSON(ctx, tx, ColumnsKey(projectID), columns); err != nil {
			return err
		}
		return writeJSON(ctx, tx, TasksKey(projectID), tasks)
	})
}

// DeleteProjectData removes a project's columns and tasks.
func (b *Bridge) DeleteProjectData(ctx context.Context, projectID string) error {
	return b.kv.Batch(ctx, func(tx database.KVStore) error {
		if err := tx.Delete(ctx, ColumnsKey(projectID)); err != nil {
			return err
		}
		return tx.Delete(ctx, TasksKey(projectID))
	})
}

// ============================================================================
// PROJECTS
// ============================================================================

// Projects returns the stored project list, or the default project when
// nothing valid is stored.
func (b *Bridge) Projects(ctx context.Context) ([]models.Project, error) {
	found, err := readJSON(ctx, b.kv, b.logger, KeyProjects, &[]models.Project{})
	if err != nil {
		return nil, err
	}
	if found == nil || *found == nil {
		return []models.Project{models.DefaultProject()}, nil
	}
	return *found, nil
}

// SaveProjects writes the project list.
func (b *Bridge) SaveProjects(ctx context.Context, projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}
	return writeJSON(ctx, b.kv, KeyProjects, projects)
}

// ActiveProject returns the stored active project id, defaulting to the
// default project. The id is not validated against the project list.
func (b *Bridge) ActiveProject(ctx context.Context) (string, error) {
	var id string
	found, err := readJSON(ctx, b.kv, b.logger, KeyActiveProject, &id)
	if err != nil {
		return "", err
	}
	if found == nil {
		return models.DefaultProjectID, nil
	}
	return *found, nil
}

// SetActiveProject stores the active project id.
func (b *Bridge) SetActiveProject(ctx context.Context, projectID string) error {
	return writeJSON(ctx, b.kv, KeyActiveProject, projectID)
}

// ============================================================================
// THEME
// ============================================================================

// Theme returns the persisted theme name, if any. The web board stores the
// bare name rather than a JSON string; both forms are accepted.
func (b *Bridge) Theme(ctx context.Context) (string, bool, error) {
	raw, ok, err := b.kv.Get(ctx, KeyTheme)
	if err != nil || !ok {
		return "", false, err
	}
	var quoted string
	if json.Unmarshal([]byte(raw), &quoted) == nil {
		raw = quoted
	}
	return raw, raw != "", nil
}

// SetTheme persists the theme name.
func (b *Bridge) SetTheme(ctx context.Context, theme string) error {
	return b.kv.Set(ctx, KeyTheme, theme)
}

// ============================================================================
// JSON HELPERS
// ============================================================================

// readJSON decodes key into dst. It returns nil, nil when the key is missing
// or its value is malformed (logged).
func readJSON[T any](ctx context.Context, kv database.KVReader, logger *slog.Logger, key string, dst *T) (*T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("failed to parse stored value, using default", "key", key, "error", err)
		return nil, nil
	}
	return dst, nil
}

func writeJSON(ctx context.Context, kv database.KVWriter, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return kv.Set(ctx, key, string(data))
}
