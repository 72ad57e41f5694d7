package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"safelens/internal/domain"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteKV keeps every key as one row of a single SQLite table.
type SQLiteKV struct {
	db   *sql.DB
	path string
}

// NewSQLiteKV opens (or creates) the database at path.
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps :memory: databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteKV{db: db, path: path}, nil
}

// Load returns the stored document for key, or nil when unset.
func (s *SQLiteKV) Load(key domain.StoreKey) ([]byte, error) {
	var v []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key.String()).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Key: key, Op: "load", Err: err}
	}
	return v, nil
}

// Save replaces the document for key.
func (s *SQLiteKV) Save(key domain.StoreKey, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key.String(), value,
	)
	if err != nil {
		return &domain.StorageError{Key: key, Op: "save", Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteKV) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *SQLiteKV) Path() string { return s.path }

// Compile-time assertion that SQLiteKV implements domain.KVStore.
var _ domain.KVStore = (*SQLiteKV)(nil)
