// Package service contains the business logic for the trip journal.
// TripDataRepo owns the in-memory document; JournalService expresses every
// user action as a pure transformation applied through TripDataRepo.Update.
// No SQL or JSON lives here; persistence goes through the DocumentStore interface.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
)

// DocumentStore is the persistence collaborator of TripDataRepo.
// *store.RecordStore satisfies it; tests may substitute an in-memory fake.
// Neither method reports errors: failures are the store's to log.
type DocumentStore interface {
	Load(ctx context.Context) (domain.AppUserData, bool)
	Save(ctx context.Context, doc domain.AppUserData)
}

// TripDataRepo holds the whole journal document in memory, serves per-trip
// views of it, and writes the full document through to the store after every
// update.
type TripDataRepo struct {
	mu    sync.Mutex
	doc   domain.AppUserData
	store DocumentStore
	now   func() time.Time
}

// RepoOption configures a TripDataRepo.
type RepoOption func(*TripDataRepo)

// WithClock overrides time.Now for timestamps.
func WithClock(now func() time.Time) RepoOption {
	return func(r *TripDataRepo) { r.now = now }
}

// OpenTripDataRepo loads the document from s once. When nothing is stored
// (or it cannot be read) the repository starts with an empty document.
func OpenTripDataRepo(ctx context.Context, s DocumentStore, opts ...RepoOption) *TripDataRepo {
	r := &TripDataRepo{store: s, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}

	doc, ok := s.Load(ctx)
	if !ok || doc == nil {
		doc = domain.AppUserData{}
	}
	r.doc = doc
	return r
}

// NowMillis returns the repository clock in epoch milliseconds.
func (r *TripDataRepo) NowMillis() int64 {
	return r.now().UnixMilli()
}

// Get returns a copy of the data stored for trip, with every mapping present.
// A trip with no data yields the structural default. Get never writes.
func (r *TripDataRepo) Get(trip domain.TripID) domain.UserTripData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(trip)
}

func (r *TripDataRepo) get(trip domain.TripID) domain.UserTripData {
	data, ok := r.doc[trip]
	if !ok {
		return domain.NewUserTripData(r.NowMillis())
	}
	return data.Clone().Normalize()
}

// Update replaces trip's data with f(Get(trip)) and saves the full document.
// Other trips' entries are untouched. f must be a pure transformation of its
// argument. Updates are serialised; the store write happens before Update
// returns, and a failed write leaves the in-memory update in place.
//
// The returned value is a copy of the new data.
func (r *TripDataRepo) Update(ctx context.Context, trip domain.TripID, f func(domain.UserTripData) domain.UserTripData) domain.UserTripData {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := f(r.get(trip))
	r.doc[trip] = next
	r.store.Save(ctx, r.doc)
	return next.Clone()
}

// Snapshot returns a deep copy of the whole document.
func (r *TripDataRepo) Snapshot() domain.AppUserData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doc.Clone()
}
