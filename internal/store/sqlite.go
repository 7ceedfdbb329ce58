package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/glebarez/sqlite"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Counter is a cached integer together with the time it was fetched
type Counter struct {
	Key       string
	Value     int64
	UpdatedAt time.Time
}

// Open opens the SQLite database and creates tables if needed
func Open(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache db: %w", err)
	}

	// WAL lets the statusline and the panel read while the other writes
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	db := &DB{DB: sqlDB}
	if err := db.createTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary database tables
func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS counters (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`

	_, err := db.Exec(query)
	return err
}

// PutCounter saves or replaces a counter
func (db *DB) PutCounter(key string, value int64, at time.Time) error {
	query := `
	INSERT INTO counters (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at
	`

	_, err := db.Exec(query, key, value, at.Unix())
	return err
}

// GetCounter retrieves a counter. A missing key yields nil, nil.
func (db *DB) GetCounter(key string) (*Counter, error) {
	query := `
	SELECT key, value, updated_at
	FROM counters
	WHERE key = ?
	`

	var c Counter
	var ts int64
	err := db.QueryRow(query, key).Scan(&c.Key, &c.Value, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.UpdatedAt = time.Unix(ts, 0)
	return &c, nil
}

// DeleteCounter deletes a counter
func (db *DB) DeleteCounter(key string) error {
	_, err := db.Exec("DELETE FROM counters WHERE key = ?", key)
	return err
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
