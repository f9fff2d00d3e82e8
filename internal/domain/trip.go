// Package domain contains the core data types for the trip journal.
// This package has no dependencies beyond the standard library and is imported
// by every other internal package (repo, store, service, handler).
package domain

import (
	"fmt"
	"strings"
)

// TripID identifies one of the predefined trips.
type TripID string

const (
	TripThailand TripID = "thailand"
	TripCroatia  TripID = "croatia"
	TripChina    TripID = "china"
)

// TripIDs lists every known trip in display order.
var TripIDs = []TripID{TripThailand, TripCroatia, TripChina}

// Valid reports whether t is one of the predefined trips.
func (t TripID) Valid() bool {
	switch t {
	case TripThailand, TripCroatia, TripChina:
		return true
	}
	return false
}

// ParseTripID normalises s and returns the matching TripID.
// Returns ErrNotFound when s does not name a predefined trip.
func ParseTripID(s string) (TripID, error) {
	t := TripID(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: trip %q", ErrNotFound, s)
	}
	return t, nil
}

// Bilingual is a text value in English and Chinese.
type Bilingual struct {
	En string `json:"en" yaml:"en"`
	Zh string `json:"zh" yaml:"zh"`
}

// BilingualList is a list of strings in English and Chinese.
// The two lists are index-aligned.
type BilingualList struct {
	En []string `json:"en" yaml:"en"`
	Zh []string `json:"zh" yaml:"zh"`
}

// Day is one statically authored day of a trip's itinerary.
// Number is unique within its trip, 1-based, and sequential; it is the
// addressing key for all per-day user data.
type Day struct {
	Number        int           `json:"day" yaml:"day"`
	Date          Bilingual     `json:"date" yaml:"date"`
	Title         Bilingual     `json:"title" yaml:"title"`
	Region        string        `json:"region" yaml:"region"`
	RegionLabel   Bilingual     `json:"regionLabel" yaml:"regionLabel"`
	MapQuery      string        `json:"mapQuery" yaml:"mapQuery"`
	Accommodation *Bilingual    `json:"accommodation" yaml:"accommodation"`
	Activities    BilingualList `json:"activities" yaml:"activities"`
}

// Trip is a predefined journey with its ordered, immutable day list.
// User data for the trip lives separately in UserTripData.
type Trip struct {
	ID   TripID    `json:"id" yaml:"id"`
	Name Bilingual `json:"name" yaml:"name"`
	Days []Day     `json:"days" yaml:"days"`
}
