package database

import "context"

// KVReader reads string values by key.
type KVReader interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// KVWriter mutates string values by key.
type KVWriter interface {
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
}

// DataStore is the key-value store the persistence bridge is built on.
// Batch runs fn atomically: either every write inside it lands or none does.
type DataStore interface {
	KVReader
	KVWriter
	Batch(ctx context.Context, fn func(tx KVStore) error) error
}

// KVStore is the read/write view handed to a Batch callback.
type KVStore interface {
	KVReader
	KVWriter
}
