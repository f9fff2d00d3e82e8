package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/pkordes/trip-journal/internal/domain"
)

// MemoryDSN opens a private in-memory SQLite database.
const MemoryDSN = ":memory:"

// sqlKVRepo is the database/sql implementation of KVRepo used with SQLite.
type sqlKVRepo struct {
	db *sql.DB
}

// NewSQLKVRepo constructs a KVRepo backed by a SQLite *sql.DB whose schema
// has already been migrated (see OpenSQLite).
func NewSQLKVRepo(db *sql.DB) KVRepo {
	return &sqlKVRepo{db: db}
}

// OpenSQLite opens the SQLite database at path, creating parent directories as
// needed, and applies all migrations. Pass MemoryDSN for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("repo.OpenSQLite: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}
	// One connection: SQLite serialises writers anyway, and an in-memory
	// database exists only on the connection that created it.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: busy_timeout: %w", err)
	}

	if err := Migrate(ctx, db, goose.DialectSQLite3); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: %w", err)
	}
	return db, nil
}

// Get reads the value stored under key.
func (r *sqlKVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM records WHERE record_key = ?", key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("repo.SQLKVRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.SQLKVRepo.Get: %w", err)
	}
	return []byte(value), nil
}

// Put upserts the value stored under key.
func (r *sqlKVRepo) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (record_key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (record_key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), nowMillis(),
	)
	if err != nil {
		return fmt.Errorf("repo.SQLKVRepo.Put: %w", err)
	}
	return nil
}
