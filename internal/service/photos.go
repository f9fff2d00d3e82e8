package service

import (
	"context"

	"github.com/pkordes/trip-journal/internal/domain"
)

// AddPhoto appends a photo to day and returns it. imageData is stored as given.
func (s *JournalService) AddPhoto(ctx context.Context, trip domain.TripID, day int, imageData, caption string) domain.PhotoMemory {
	photo := domain.PhotoMemory{
		ID:        s.newID(),
		ImageData: imageData,
		Caption:   caption,
		CreatedAt: s.data.NowMillis(),
	}

	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		d.Photos[day] = domain.DayPhotos{Photos: append(d.DayPhotos(day), photo)}
		return d
	})
	s.metrics.Mutation(opAddPhoto)
	return photo
}

// DeletePhoto removes the photo with id from day.
// Unknown days and ids are ignored.
func (s *JournalService) DeletePhoto(ctx context.Context, trip domain.TripID, day int, id string) {
	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		cur, ok := d.Photos[day]
		if !ok {
			return d
		}
		d.Photos[day] = domain.DayPhotos{Photos: without(cur.Photos, func(p domain.PhotoMemory) bool { return p.ID == id })}
		return d
	})
	s.metrics.Mutation(opDeletePhoto)
}
