// Package migrations embeds the SQL migration files so they can be applied by
// the goose programmatic API at startup and in tests.
//
// The statements are portable between Postgres and SQLite; the same files
// back both record store drivers.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
