// internal/store/sqlite.go
//
// SQLite-backed implementation of the Blob interface.
// Stores each blob as a row in the dictionary_blobs table (see sql/0001_init.sql);
// the *sql.DB is opened and migrated by the caller (db.go in package main).

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// sqlite persists blobs in a dictionary_blobs table.
type sqlite struct {
	db *sql.DB
}

// NewSQLite wraps an already-opened (and migrated) database handle.
func NewSQLite(db *sql.DB) Blob {
	return &sqlite{db: db}
}

// Get reads the value stored under key.
func (s *sqlite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM dictionary_blobs WHERE key=?`, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set upserts the value under key, stamping updated_at.
func (s *sqlite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO dictionary_blobs (key, value, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
