package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by the SQLite key-value store.
// *sql.DB satisfies it; tests may substitute their own.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// KV is the injected persistence surface: a durable mapping from a
// storage key to a JSON document. It is opened once at process start and
// closed at shutdown.
type KV interface {
	// Get returns the stored value, with found=false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set writes the value, replacing any previous one.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key.
	Keys(ctx context.Context) ([]string, error)
	// Close flushes and releases the underlying storage.
	Close() error
}

// SQLiteKV implements KV over a single kv table in SQLite.
type SQLiteKV struct {
	db     SQLDB
	closer func() error
}

// Compile-time check that *SQLiteKV satisfies KV.
var _ KV = (*SQLiteKV)(nil)

// NewSQLiteKV wraps an initialized database.
// PRE: InitDB has been run against db
func NewSQLiteKV(db SQLDB, closer func() error) *SQLiteKV {
	return &SQLiteKV{db: db, closer: closer}
}

// Get retrieves the value stored under key.
// POST: found is false when the key is absent; err is nil in that case
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return value, true, nil
}

// Set writes the value under key, replacing any previous one.
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key.
// POST: absent keys are a no-op
func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in lexical order.
func (s *SQLiteKV) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key FROM kv ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("kv keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close releases the underlying database.
func (s *SQLiteKV) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
