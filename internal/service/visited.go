package service

import (
	"context"
	"maps"

	"github.com/pkordes/trip-journal/internal/domain"
)

// ToggleActivityVisited flips the visited flag of one activity of day, treating
// a missing flag as false, and returns the new value.
func (s *JournalService) ToggleActivityVisited(ctx context.Context, trip domain.TripID, day, index int) bool {
	var visited bool
	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		activities := maps.Clone(d.Visited[day].Activities)
		if activities == nil {
			activities = map[int]bool{}
		}
		visited = !activities[index]
		activities[index] = visited
		d.Visited[day] = domain.DayVisited{Activities: activities}
		return d
	})
	s.metrics.Mutation(opToggleVisited)
	return visited
}
