package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/pkordes/trip-journal/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgKVRepo is the Postgres implementation of KVRepo.
type pgKVRepo struct {
	db db
}

// NewPGKVRepo constructs a KVRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPGKVRepo(db db) KVRepo {
	return &pgKVRepo{db: db}
}

// Get reads the value stored under key.
func (r *pgKVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM records WHERE record_key = @key`

	var value string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repo.PGKVRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.PGKVRepo.Get: %w", err)
	}
	return []byte(value), nil
}

// Put upserts the value stored under key.
func (r *pgKVRepo) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO records (record_key, value, updated_at)
		VALUES (@key, @value, @updated_at)
		ON CONFLICT (record_key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at`

	args := pgx.NamedArgs{
		"key":        key,
		"value":      string(value),
		"updated_at": nowMillis(),
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.PGKVRepo.Put: %w", err)
	}
	return nil
}

// OpenPostgres connects a pool to dsn, verifies it is reachable, and applies
// pending migrations. The caller closes the pool.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	// pgxpool.New does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.OpenPostgres: ping: %w", err)
	}

	// goose drives database/sql, so migrations run on a short-lived
	// connection through the pgx stdlib driver.
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.OpenPostgres: open migration db: %w", err)
	}
	defer sqlDB.Close()
	if err := Migrate(ctx, sqlDB, goose.DialectPostgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("repo.OpenPostgres: %w", err)
	}
	return pool, nil
}
