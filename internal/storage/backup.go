package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/models"
)

// Export gathers every known project and its board into a backup document.
// Boards that were never saved are exported with their defaults, so an
// import reproduces exactly what the user saw.
func (b *Bridge) Export(ctx context.Context, now time.Time) (models.ExportDocument, error) {
	projects, err := b.Projects(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read projects: %w", err)
	}
	active, err := b.ActiveProject(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read active project: %w", err)
	}

	doc := models.ExportDocument{
		Version:         models.BackupVersion,
		ExportedAt:      now.UTC(),
		ActiveProjectID: active,
		Projects:        projects,
		ProjectData:     make(map[string]models.BoardData, len(projects)),
	}
	for _, p := range projects {
		data, err := b.LoadBoard(ctx, p.ID)
		if err != nil {
			return models.ExportDocument{}, fmt.Errorf("failed to read board %s: %w", p.ID, err)
		}
		doc.ProjectData[p.ID] = data
	}
	return doc, nil
}

// WriteExport encodes doc as indented JSON.
func WriteExport(w io.Writer, doc models.ExportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ParseExport decodes a backup document and applies the shape checks: the
// top level must be an object with a "projects" array.
func ParseExport(r io.Reader) (models.ExportDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("failed to read backup: %w", err)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return models.ExportDocument{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	var projects []json.RawMessage
	if raw, ok := shape["projects"]; !ok || json.Unmarshal(raw, &projects) != nil || projects == nil {
		return models.ExportDocument{}, ErrInvalidBackup
	}

	var doc models.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.ExportDocument{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return doc, nil
}

// Import replaces every project and board with the contents of doc. The
// whole import runs in one transaction; on any failure nothing changes.
// The persisted theme is kept.
func (b *Bridge) Import(ctx context.Context, doc models.ExportDocument) error {
	if doc.Projects == nil {
		return ErrInvalidBackup
	}

	err := b.kv.Batch(ctx, func(tx database.KVStore) error {
		for _, prefix := range []string{KeyProjects, KeyActiveProject, legacyColumnsKey, legacyTasksKey} {
			if _, err := tx.DeleteByPrefix(ctx, prefix); err != nil {
				return err
			}
		}

		if err := writeJSON(ctx, tx, KeyProjects, doc.Projects); err != nil {
			return err
		}

		active := doc.ActiveProjectID
		if active == "" && len(doc.Projects) > 0 {
			active = doc.Projects[0].ID
		}
		if active != "" {
			if err := writeJSON(ctx, tx, KeyActiveProject, active); err != nil {
				return err
			}
		}

		for _, id := range slices.Sorted(maps.Keys(doc.ProjectData)) {
			data := doc.ProjectData[id]
			if data.Columns != nil {
				if err := writeJSON(ctx, tx, ColumnsKey(id), data.Columns); err != nil {
					return err
				}
			}
			if data.Tasks != nil {
				if err := writeJSON(ctx, tx, TasksKey(id), data.Tasks); err != nil {
					return err
				}
			}
		}

		if err := writeLegacy(ctx, tx, doc.LegacyColumns, ColumnsKey); err != nil {
			return err
		}
		return writeLegacy(ctx, tx, doc.LegacyTasks, TasksKey)
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	b.logger.Info("imported backup", "projects", len(doc.Projects))
	return nil
}

func writeLegacy(ctx context.Context, tx database.KVStore, values map[string]json.RawMessage, key func(string) string) error {
	for _, id := range slices.Sorted(maps.Keys(values)) {
		if err := tx.Set(ctx, key(id), string(values[id])); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes every board key, including the theme.
func (b *Bridge) ClearAll(ctx context.Context) (int64, error) {
	n, err := b.kv.DeleteByPrefix(ctx, KeyPrefix)
	if err != nil {
		return 0, fmt.Errorf("failed to clear data: %w", err)
	}
	b.logger.Info("cleared board data", "keys", n)
	return n, nil
}
