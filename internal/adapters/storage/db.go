package storage

import (
	"database/sql"
	"fmt"
)

// Open opens the SQLite database backing the key-value store and
// initializes its schema.
// PRE: the modernc.org/sqlite driver is registered by the caller's import
// POST: returns a ready KV; Close releases the connection
func Open(path string) (*SQLiteKV, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQLiteKV(db, db.Close), nil
}

// InitDB creates the key-value schema. One row per storage key; the value
// column holds the JSON-encoded record array for that entity type.
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
