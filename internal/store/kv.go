package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Execer is the subset of *sql.DB the kv repository needs. It lets tests
// substitute a sqlmock connection.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// KV is a key/value repository over the kv table.
type KV struct {
	db Execer
}

// NewKV returns a repository backed by db.
func NewKV(db Execer) *KV {
	return &KV{db: db}
}

// KV returns the key/value repository for this database.
func (db *DB) KV() *KV {
	return NewKV(db.DB)
}

// Get returns the stored value for key, or nil if absent.
func (r *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get kv[%s]: %w", key, err)
	}
	return value, nil
}

// Set inserts or replaces the value for key.
func (r *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("set kv[%s]: %w", key, err)
	}
	return nil
}
