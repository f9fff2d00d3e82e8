package service

import (
	"context"
	"slices"

	"github.com/pkordes/trip-journal/internal/domain"
)

// InitPackingList replaces trip's packing list with items and a fresh
// timestamp. It is not guarded: calling it again overwrites the list.
func (s *JournalService) InitPackingList(ctx context.Context, trip domain.TripID, items []domain.PackingItem) domain.PackingList {
	list := domain.PackingList{Items: slices.Clone(items), LastModified: s.data.NowMillis(), Seeded: true}
	if list.Items == nil {
		list.Items = []domain.PackingItem{}
	}

	next := s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		d.PackingList = domain.PackingList{Items: slices.Clone(list.Items), LastModified: list.LastModified, Seeded: true}
		return d
	})
	s.metrics.Mutation(opInitPacking)
	return next.PackingList
}

// EnsurePackingList seeds trip's packing list from domain.DefaultPackingTemplate
// if it has never been materialized, and returns the resulting list. A list
// that has items, or that is marked Seeded, is returned unchanged and nothing
// is written.
func (s *JournalService) EnsurePackingList(ctx context.Context, trip domain.TripID) domain.PackingList {
	if cur := s.data.Get(trip).PackingList; !needsSeed(cur) {
		return cur
	}

	seeded := false
	next := s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		// Re-check under the update: another caller may have seeded meanwhile.
		if !needsSeed(d.PackingList) {
			return d
		}
		d.PackingList = domain.PackingList{Items: s.templateItems(), LastModified: s.data.NowMillis(), Seeded: true}
		seeded = true
		return d
	})
	if seeded {
		s.metrics.Mutation(opInitPacking)
	}
	return next.PackingList
}

// needsSeed reports whether l has never been materialized. An empty list from
// a browser document carries no Seeded flag and is seeded.
func needsSeed(l domain.PackingList) bool {
	return !l.Seeded && len(l.Items) == 0
}

// templateItems materialises the default template with fresh ids.
func (s *JournalService) templateItems() []domain.PackingItem {
	items := make([]domain.PackingItem, len(domain.DefaultPackingTemplate))
	for i, t := range domain.DefaultPackingTemplate {
		items[i] = domain.PackingItem{
			ID:             s.newID(),
			Name:           t.Name,
			Category:       t.Category,
			WeatherRelated: t.WeatherRelated,
		}
	}
	return items
}

// TogglePackingItem flips the checked flag of the item with id and stamps the
// list. An unknown id leaves the list, timestamp included, untouched.
func (s *JournalService) TogglePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList {
	next := s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		i := slices.IndexFunc(d.PackingList.Items, func(it domain.PackingItem) bool { return it.ID == id })
		if i < 0 {
			return d
		}
		d.PackingList.Items[i].Checked = !d.PackingList.Items[i].Checked
		d.PackingList.LastModified = s.data.NowMillis()
		d.PackingList.Seeded = true
		return d
	})
	s.metrics.Mutation(opTogglePacking)
	return next.PackingList
}

// AddPackingItem appends an unchecked item and returns it.
func (s *JournalService) AddPackingItem(ctx context.Context, trip domain.TripID, name domain.Bilingual, category domain.PackingCategory) domain.PackingItem {
	item := domain.PackingItem{ID: s.newID(), Name: name, Category: category}

	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		d.PackingList.Items = append(d.PackingList.Items, item)
		d.PackingList.LastModified = s.data.NowMillis()
		d.PackingList.Seeded = true
		return d
	})
	s.metrics.Mutation(opAddPacking)
	return item
}

// DeletePackingItem removes the item with id and stamps the list.
// An unknown id leaves the list, timestamp included, untouched.
func (s *JournalService) DeletePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList {
	next := s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		if !slices.ContainsFunc(d.PackingList.Items, func(it domain.PackingItem) bool { return it.ID == id }) {
			return d
		}
		d.PackingList.Items = without(d.PackingList.Items, func(it domain.PackingItem) bool { return it.ID == id })
		d.PackingList.LastModified = s.data.NowMillis()
		d.PackingList.Seeded = true
		return d
	})
	s.metrics.Mutation(opDeletePacking)
	return next.PackingList
}
