package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/trip-journal/internal/domain"
)

// MemoryKVRepo is an in-process KVRepo. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type MemoryKVRepo struct {
	mu   sync.RWMutex
	data map[string][]byte

	// PutErr, when set, is returned by every Put without storing anything.
	// Tests use it to simulate a full or unavailable disk.
	PutErr error
	// GetErr, when set, is returned by every Get.
	GetErr error
}

// NewMemoryKVRepo returns an empty MemoryKVRepo.
func NewMemoryKVRepo() *MemoryKVRepo {
	return &MemoryKVRepo{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (r *MemoryKVRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.GetErr != nil {
		return nil, fmt.Errorf("repo.MemoryKVRepo.Get: %w", r.GetErr)
	}
	v, ok := r.data[key]
	if !ok {
		return nil, fmt.Errorf("repo.MemoryKVRepo.Get: %w", domain.ErrNotFound)
	}
	return slices.Clone(v), nil
}

// Put stores a copy of value under key.
func (r *MemoryKVRepo) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.PutErr != nil {
		return fmt.Errorf("repo.MemoryKVRepo.Put: %w", r.PutErr)
	}
	r.data[key] = slices.Clone(value)
	return nil
}
