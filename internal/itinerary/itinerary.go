// Package itinerary serves the static trip catalog: the predefined trips and
// their authored day lists. The catalog is embedded at build time and never
// changes at runtime.
package itinerary

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-journal/internal/domain"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the read-only set of predefined trips.
type Catalog struct {
	trips []domain.Trip
	byID  map[domain.TripID]int
}

type catalogFile struct {
	Trips []domain.Trip `yaml:"trips"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document and validates it. Every trip id must be a
// predefined one and appear once, and each trip's day numbers must run 1..n
// in order.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("itinerary.Parse: %w", err)
	}

	c := &Catalog{byID: make(map[domain.TripID]int, len(f.Trips))}
	for i, t := range f.Trips {
		if !t.ID.Valid() {
			return nil, fmt.Errorf("itinerary.Parse: unknown trip %q", t.ID)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("itinerary.Parse: duplicate trip %q", t.ID)
		}
		for j, d := range t.Days {
			if d.Number != j+1 {
				return nil, fmt.Errorf("itinerary.Parse: trip %q: day at position %d is numbered %d", t.ID, j+1, d.Number)
			}
		}
		if t.Days == nil {
			t.Days = []domain.Day{}
		}
		c.byID[t.ID] = i
		c.trips = append(c.trips, t)
	}
	return c, nil
}

// Trips returns every trip in catalog order.
func (c *Catalog) Trips() []domain.Trip {
	out := make([]domain.Trip, len(c.trips))
	copy(out, c.trips)
	return out
}

// Trip returns the trip with id. Returns domain.ErrNotFound when the catalog
// has no such trip.
func (c *Catalog) Trip(id domain.TripID) (domain.Trip, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("itinerary.Catalog.Trip: %w: trip %q", domain.ErrNotFound, id)
	}
	return c.trips[i], nil
}

// Day returns day n of trip id.
// Returns domain.ErrNotFound when either the trip or the day does not exist.
func (c *Catalog) Day(id domain.TripID, n int) (domain.Day, error) {
	t, err := c.Trip(id)
	if err != nil {
		return domain.Day{}, err
	}
	if n < 1 || n > len(t.Days) {
		return domain.Day{}, fmt.Errorf("itinerary.Catalog.Day: %w: %s day %d", domain.ErrNotFound, id, n)
	}
	return t.Days[n-1], nil
}

// HasDay reports whether n addresses a day of trip id. A trip whose day list
// has not been authored accepts any positive day number.
func (c *Catalog) HasDay(id domain.TripID, n int) bool {
	t, err := c.Trip(id)
	if err != nil || n < 1 {
		return false
	}
	return len(t.Days) == 0 || n <= len(t.Days)
}
