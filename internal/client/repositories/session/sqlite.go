package session

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cmdcable/portal/internal/common"
	"github.com/cmdcable/portal/internal/logging"
)

// SQLiteRepository keeps the credential in a single key-value row of a
// local sqlite database.
type SQLiteRepository struct {
	db  *sql.DB
	log logging.Logger
}

// Open opens (or creates) the sqlite database at dsn and ensures the
// session table exists.
func Open(ctx context.Context, dsn string, log logging.Logger) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db, log: log}, nil
}

// NewSQLiteRepository wraps an already-open database handle.
func NewSQLiteRepository(db *sql.DB, log logging.Logger) *SQLiteRepository {
	return &SQLiteRepository{db: db, log: log}
}

// Get returns the stored credential, or "" when absent. Storage errors are
// absorbed and reported as absent.
func (r *SQLiteRepository) Get(ctx context.Context) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, common.CredentialStorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.log.Warn(ctx, "session storage read failed", "error", err)
		return "", nil
	}
	return value, nil
}

// Save stores the credential, replacing any previous one. Best-effort.
func (r *SQLiteRepository) Save(ctx context.Context, credential string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.CredentialStorageKey, credential)
	if err != nil {
		r.log.Warn(ctx, "session storage write failed", "error", err)
	}
	return nil
}

// Clear removes the stored credential. Best-effort.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session WHERE key = ?`, common.CredentialStorageKey)
	if err != nil {
		r.log.Warn(ctx, "session storage clear failed", "error", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
