package handler

import (
	"errors"
	"net/http"

	"github.com/pkordes/trip-journal/internal/domain"
)

// TripSummary is one entry of GET /trips.
type TripSummary struct {
	ID       domain.TripID    `json:"id"`
	Name     domain.Bilingual `json:"name"`
	DayCount int              `json:"dayCount"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, _ *http.Request) {
	trips := s.catalog.Trips()
	data := make([]TripSummary, len(trips))
	for i, t := range trips {
		data[i] = TripSummary{ID: t.ID, Name: t.Name, DayCount: len(t.Days)}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.catalog.Trip(tripFrom(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// GetTripData handles GET /trips/{tripId}/data.
// A trip with nothing recorded yields the structural default.
func (s *Server) GetTripData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.TripData(tripFrom(r)))
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, internalBody())
}
