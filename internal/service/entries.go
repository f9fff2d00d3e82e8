package service

import (
	"context"

	"github.com/pkordes/trip-journal/internal/domain"
)

// AddJournalEntry appends a journal entry to day and returns it.
func (s *JournalService) AddJournalEntry(ctx context.Context, trip domain.TripID, day int, content string, typ domain.JournalType) domain.JournalEntry {
	entry := domain.JournalEntry{
		ID:        s.newID(),
		Content:   content,
		Type:      typ,
		CreatedAt: s.data.NowMillis(),
	}

	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		d.Journals[day] = domain.DayJournal{Entries: append(d.DayJournal(day), entry)}
		return d
	})
	s.metrics.Mutation(opAddJournalEntry)
	return entry
}

// DeleteJournalEntry removes the entry with id from day.
// Unknown days and ids are ignored.
func (s *JournalService) DeleteJournalEntry(ctx context.Context, trip domain.TripID, day int, id string) {
	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		cur, ok := d.Journals[day]
		if !ok {
			return d
		}
		d.Journals[day] = domain.DayJournal{Entries: without(cur.Entries, func(e domain.JournalEntry) bool { return e.ID == id })}
		return d
	})
	s.metrics.Mutation(opDeleteJournalEntry)
}
