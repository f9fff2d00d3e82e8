// Package store persists the whole journal document as one JSON value under a
// fixed key. It is the only component that talks to durable storage.
//
// Failures never reach the caller: a failed load yields "no data" and a failed
// save leaves the in-memory document as the source of truth. Both are logged.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/metrics"
	"github.com/pkordes/trip-journal/internal/repo"
)

// DefaultKey is the storage key used by the browser build of the journal, so
// exported browser data can be imported unchanged.
const DefaultKey = "travel-itinerary-data-v1"

// RecordStore reads and writes the journal document through a repo.KVRepo.
type RecordStore struct {
	kv      repo.KVRepo
	key     string
	log     *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a RecordStore.
type Option func(*RecordStore)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *RecordStore) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *RecordStore) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics counts swallowed failures on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *RecordStore) { s.metrics = m }
}

// New constructs a RecordStore over kv.
func New(kv repo.KVRepo, opts ...Option) *RecordStore {
	s := &RecordStore{kv: kv, key: DefaultKey, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key the document lives under.
func (s *RecordStore) Key() string {
	return s.key
}

// Load reads and decodes the stored document. The boolean is false when
// nothing is stored or the stored value cannot be read or decoded at all; in
// that case the returned document is empty and non-nil.
//
// A trip mapping that fails to decode is logged and reset to empty while the
// rest of that trip and the rest of the document load. Only a trip entry that
// is not an object at all is dropped.
func (s *RecordStore) Load(ctx context.Context) (domain.AppUserData, bool) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "failed to load journal document", "key", s.key, "error", err)
			s.metrics.StoreFailure(metrics.OpLoad)
		}
		return domain.AppUserData{}, false
	}

	doc, err := s.decode(ctx, raw)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to decode journal document", "key", s.key, "error", err)
		s.metrics.StoreFailure(metrics.OpDecode)
		return domain.AppUserData{}, false
	}
	return doc, true
}

// Save replaces the stored document with doc.
func (s *RecordStore) Save(ctx context.Context, doc domain.AppUserData) {
	if doc == nil {
		doc = domain.AppUserData{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode journal document", "key", s.key, "error", err)
		s.metrics.StoreFailure(metrics.OpSave)
		return
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		s.log.ErrorContext(ctx, "failed to save journal document", "key", s.key, "error", err)
		s.metrics.StoreFailure(metrics.OpSave)
	}
}

// Export returns the stored document bytes, or "{}" when nothing is stored.
// Unlike Load, read errors are returned.
func (s *RecordStore) Export(ctx context.Context) ([]byte, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("store.RecordStore.Export: %w", err)
	}
	return raw, nil
}

// Import validates raw as a complete document and writes it, replacing the
// stored one. Every trip entry must decode; nothing is written otherwise.
func (s *RecordStore) Import(ctx context.Context, raw []byte) error {
	var doc domain.AppUserData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("store.RecordStore.Import: %w: %v", domain.ErrValidation, err)
	}
	if doc == nil {
		doc = domain.AppUserData{}
	}
	canonical, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store.RecordStore.Import: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, canonical); err != nil {
		return fmt.Errorf("store.RecordStore.Import: %w", err)
	}
	return nil
}

// decode parses the top-level trip map, then each trip independently.
func (s *RecordStore) decode(ctx context.Context, raw []byte) (domain.AppUserData, error) {
	var trips map[string]json.RawMessage
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, err
	}
	if trips == nil {
		return nil, errors.New("document is null")
	}

	doc := make(domain.AppUserData, len(trips))
	for id, entry := range trips {
		data, ok := s.decodeTrip(ctx, id, entry)
		if !ok {
			continue
		}
		doc[domain.TripID(id)] = data
	}
	return doc, nil
}

// decodeTrip decodes one trip entry mapping by mapping. A mapping that fails
// to decode is logged and left empty; the others are kept. The entry itself
// is dropped only when it is not a JSON object.
func (s *RecordStore) decodeTrip(ctx context.Context, id string, entry json.RawMessage) (domain.UserTripData, bool) {
	var data domain.UserTripData

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(entry, &fields); err != nil {
		s.log.WarnContext(ctx, "dropping undecodable trip entry", "key", s.key, "trip", id, "error", err)
		s.metrics.StoreFailure(metrics.OpDecode)
		return data, false
	}

	mappings := []struct {
		name   string
		decode func(json.RawMessage) error
	}{
		{"expenses", func(v json.RawMessage) error { return decodeInto(v, &data.Expenses) }},
		{"journals", func(v json.RawMessage) error { return decodeInto(v, &data.Journals) }},
		{"photos", func(v json.RawMessage) error { return decodeInto(v, &data.Photos) }},
		{"visited", func(v json.RawMessage) error { return decodeInto(v, &data.Visited) }},
		{"packingList", func(v json.RawMessage) error { return decodeInto(v, &data.PackingList) }},
		{"weather", func(v json.RawMessage) error { return decodeInto(v, &data.Weather) }},
	}
	for _, m := range mappings {
		v, ok := fields[m.name]
		if !ok {
			continue
		}
		if err := m.decode(v); err != nil {
			s.log.WarnContext(ctx, "resetting undecodable trip mapping", "key", s.key, "trip", id, "mapping", m.name, "error", err)
			s.metrics.StoreFailure(metrics.OpDecode)
		}
	}
	return data, true
}

// decodeInto assigns the decoded value to dest only when raw decodes fully,
// so a failed mapping stays at its zero value.
func decodeInto[T any](raw json.RawMessage, dest *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dest = v
	return nil
}
