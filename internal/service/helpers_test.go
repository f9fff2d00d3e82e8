package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/service"
)

// fakeStore is a hand-written test double for service.DocumentStore.
// It records every saved document so tests can inspect write-through.
type fakeStore struct {
	mu     sync.Mutex
	loaded domain.AppUserData
	saves  []domain.AppUserData
}

func (f *fakeStore) Load(_ context.Context) (domain.AppUserData, bool) {
	if f.loaded == nil {
		return domain.AppUserData{}, false
	}
	return f.loaded.Clone(), true
}

func (f *fakeStore) Save(_ context.Context, doc domain.AppUserData) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, doc.Clone())
}

func (f *fakeStore) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func (f *fakeStore) last() domain.AppUserData {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.saves) == 0 {
		return nil
	}
	return f.saves[len(f.saves)-1]
}

// compile-time check: fakeStore must satisfy service.DocumentStore.
var _ service.DocumentStore = (*fakeStore)(nil)

// fixedNow is the clock every test repository uses.
var fixedNow = time.Date(2026, 2, 27, 18, 5, 0, 0, time.UTC)

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newService wires a JournalService over a fresh fakeStore.
func newService(t *testing.T, opts ...service.ServiceOption) (*service.JournalService, *service.TripDataRepo, *fakeStore) {
	t.Helper()
	fs := &fakeStore{}
	repo := service.OpenTripDataRepo(context.Background(), fs, service.WithClock(func() time.Time { return fixedNow }))
	opts = append([]service.ServiceOption{service.WithIDGenerator(sequentialIDs())}, opts...)
	return service.NewJournalService(repo, opts...), repo, fs
}
