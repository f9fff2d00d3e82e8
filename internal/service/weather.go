package service

import (
	"context"

	"github.com/pkordes/trip-journal/internal/domain"
)

// SetWeather stores caller-supplied weather for day, stamped with the current
// time. A nil w records "no weather". Nothing is ever fetched.
func (s *JournalService) SetWeather(ctx context.Context, trip domain.TripID, day int, w *domain.Weather) domain.DayWeather {
	dw := domain.DayWeather{LastUpdated: s.data.NowMillis()}
	if w != nil {
		cp := *w
		dw.Weather = &cp
	}

	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		stored := dw
		if dw.Weather != nil {
			cp := *dw.Weather
			stored.Weather = &cp
		}
		d.Weather[day] = stored
		return d
	})
	s.metrics.Mutation(opSetWeather)
	return dw
}
