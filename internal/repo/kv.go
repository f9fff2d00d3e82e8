// Package repo contains all database access logic for the trip journal.
// The journal persists as a single document under a fixed key, so every
// backend implements the same small key-value interface.
// No business logic lives here, only SQL and byte shuffling.
package repo

import (
	"context"
	"time"
)

// KVRepo stores opaque values under string keys.
// The store layer depends on this interface, not on a concrete backend, which
// lets tests run against the in-memory implementation.
type KVRepo interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if nothing is stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// nowMillis is the updated_at stamp written alongside each value.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}
