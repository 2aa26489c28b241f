package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVRepository implements DataStore on the kv table.
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository wraps an initialized database.
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	return kv{r.db}.Get(ctx, key)
}

func (r *KVRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	return kv{r.db}.Keys(ctx, prefix)
}

func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	return kv{r.db}.Set(ctx, key, value)
}

func (r *KVRepository) Delete(ctx context.Context, key string) error {
	return kv{r.db}.Delete(ctx, key)
}

func (r *KVRepository) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	return kv{r.db}.DeleteByPrefix(ctx, prefix)
}

// Batch runs fn inside a transaction.
func (r *KVRepository) Batch(ctx context.Context, fn func(tx KVStore) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(kv{tx})
	})
}

var _ DataStore = (*KVRepository)(nil)

// kv runs the kv queries against either the pool or a transaction.
type kv struct {
	q querier
}

func (k kv) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := k.q.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (k kv) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := k.q.QueryContext(ctx,
		"SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key",
		len(prefix), prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (k kv) Set(ctx context.Context, key, value string) error {
	_, err := k.q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (k kv) Delete(ctx context.Context, key string) error {
	if _, err := k.q.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (k kv) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	res, err := k.q.ExecContext(ctx,
		"DELETE FROM kv WHERE substr(key, 1, ?) = ?",
		len(prefix), prefix,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete keys with prefix %q: %w", prefix, err)
	}
	return res.RowsAffected()
}
