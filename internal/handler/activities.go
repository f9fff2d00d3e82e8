package handler

import (
	"net/http"

	"github.com/pkordes/trip-journal/internal/domain"
)

// ToggleActivityResponse reports an activity's visited flag after a toggle.
type ToggleActivityResponse struct {
	Index   int  `json:"activityIndex"`
	Visited bool `json:"visited"`
}

// PutWeatherRequest is the body of PUT .../weather. A null weather clears it.
type PutWeatherRequest struct {
	Weather *domain.Weather `json:"weather"`
}

// ToggleActivity handles POST /trips/{tripId}/days/{day}/activities/{index}/toggle.
// When the day is authored in the catalog, index must address one of its activities.
func (s *Server) ToggleActivity(w http.ResponseWriter, r *http.Request) {
	var index int
	if err := bindPath(r, "index", &index); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	trip, day := tripFrom(r), dayFrom(r)
	if index < 0 || !s.hasActivity(trip, day, index) {
		writeJSON(w, http.StatusNotFound, notFoundBody("activity not found"))
		return
	}

	visited := s.journal.ToggleActivityVisited(r.Context(), trip, day, index)
	writeJSON(w, http.StatusOK, ToggleActivityResponse{Index: index, Visited: visited})
}

// hasActivity reports whether index is within day's authored activity list.
// Days the catalog does not describe accept any index.
func (s *Server) hasActivity(trip domain.TripID, day, index int) bool {
	t, err := s.catalog.Trip(trip)
	if err != nil || day > len(t.Days) {
		return true
	}
	return index < len(t.Days[day-1].Activities.En)
}

// PutWeather handles PUT /trips/{tripId}/days/{day}/weather.
func (s *Server) PutWeather(w http.ResponseWriter, r *http.Request) {
	var body PutWeatherRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	stored := s.journal.SetWeather(r.Context(), tripFrom(r), dayFrom(r), body.Weather)
	writeJSON(w, http.StatusOK, stored)
}
