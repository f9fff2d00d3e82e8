package domain

import (
	"maps"
	"slices"
)

// Clone returns a deep copy of d. Mutations build on a clone so the document
// held by the repository is never modified in place.
func (d UserTripData) Clone() UserTripData {
	out := UserTripData{
		PackingList: PackingList{
			Items:        slices.Clone(d.PackingList.Items),
			LastModified: d.PackingList.LastModified,
			Seeded:       d.PackingList.Seeded,
		},
	}
	if d.Expenses != nil {
		out.Expenses = make(map[int]DayExpenses, len(d.Expenses))
		for day, e := range d.Expenses {
			out.Expenses[day] = DayExpenses{Expenses: slices.Clone(e.Expenses)}
		}
	}
	if d.Journals != nil {
		out.Journals = make(map[int]DayJournal, len(d.Journals))
		for day, j := range d.Journals {
			out.Journals[day] = DayJournal{Entries: slices.Clone(j.Entries)}
		}
	}
	if d.Photos != nil {
		out.Photos = make(map[int]DayPhotos, len(d.Photos))
		for day, p := range d.Photos {
			out.Photos[day] = DayPhotos{Photos: slices.Clone(p.Photos)}
		}
	}
	if d.Visited != nil {
		out.Visited = make(map[int]DayVisited, len(d.Visited))
		for day, v := range d.Visited {
			out.Visited[day] = DayVisited{Activities: maps.Clone(v.Activities)}
		}
	}
	if d.Weather != nil {
		out.Weather = make(map[int]DayWeather, len(d.Weather))
		for day, w := range d.Weather {
			if w.Weather != nil {
				cp := *w.Weather
				w.Weather = &cp
			}
			out.Weather[day] = w
		}
	}
	return out
}

// Clone returns a deep copy of the whole document.
func (a AppUserData) Clone() AppUserData {
	if a == nil {
		return nil
	}
	out := make(AppUserData, len(a))
	for id, d := range a {
		out[id] = d.Clone()
	}
	return out
}
