package domain

import "slices"

// ExpenseCategory classifies an Expense.
type ExpenseCategory string

const (
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOther         ExpenseCategory = "other"
)

// ExpenseCategories lists every category in display order.
var ExpenseCategories = []ExpenseCategory{
	ExpenseAccommodation, ExpenseFood, ExpenseTransport,
	ExpenseActivities, ExpenseShopping, ExpenseOther,
}

// Valid reports whether c is a known expense category.
func (c ExpenseCategory) Valid() bool {
	for _, k := range ExpenseCategories {
		if c == k {
			return true
		}
	}
	return false
}

// JournalType classifies a JournalEntry.
type JournalType string

const (
	JournalGeneral    JournalType = "general"
	JournalRestaurant JournalType = "restaurant"
	JournalWarning    JournalType = "warning"
	JournalGem        JournalType = "gem"
)

// Valid reports whether t is a known journal entry type.
func (t JournalType) Valid() bool {
	switch t {
	case JournalGeneral, JournalRestaurant, JournalWarning, JournalGem:
		return true
	}
	return false
}

// PackingCategory classifies a PackingItem.
type PackingCategory string

const (
	PackingClothing    PackingCategory = "clothing"
	PackingToiletries  PackingCategory = "toiletries"
	PackingElectronics PackingCategory = "electronics"
	PackingDocuments   PackingCategory = "documents"
	PackingMedical     PackingCategory = "medical"
	PackingMisc        PackingCategory = "misc"
)

// Valid reports whether c is a known packing category.
func (c PackingCategory) Valid() bool {
	switch c {
	case PackingClothing, PackingToiletries, PackingElectronics,
		PackingDocuments, PackingMedical, PackingMisc:
		return true
	}
	return false
}

// Expense is a single amount spent on a trip day.
// CreatedAt is epoch milliseconds and serialises as "timestamp".
type Expense struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Currency    string          `json:"currency"`
	Category    ExpenseCategory `json:"category"`
	Description string          `json:"description"`
	CreatedAt   int64           `json:"timestamp"`
}

// JournalEntry is a free-text note attached to a trip day.
type JournalEntry struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Type      JournalType `json:"type"`
	CreatedAt int64       `json:"timestamp"`
}

// PhotoMemory is an inline-encoded image attached to a trip day.
// ImageData is stored exactly as supplied (typically a data: URL).
type PhotoMemory struct {
	ID        string `json:"id"`
	ImageData string `json:"dataUrl"`
	Caption   string `json:"caption"`
	CreatedAt int64  `json:"timestamp"`
}

// PackingItem is one line of a trip's packing checklist.
type PackingItem struct {
	ID             string          `json:"id"`
	Name           Bilingual       `json:"name"`
	Category       PackingCategory `json:"category"`
	Checked        bool            `json:"checked"`
	WeatherRelated bool            `json:"weatherRelated,omitempty"`
}

// PackingList is the trip-scoped checklist. LastModified is epoch milliseconds.
//
// Seeded is set once the list has been materialized from the template or
// written by the user. From then on the list is never reseeded, even if the
// user removes every item. Documents written by the browser client omit it.
type PackingList struct {
	Items        []PackingItem `json:"items"`
	LastModified int64         `json:"lastModified"`
	Seeded       bool          `json:"seeded,omitempty"`
}

// Weather is a caller-supplied forecast for one day. It is never fetched.
type Weather struct {
	Date          string   `json:"date"`
	TempHigh      float64  `json:"tempHigh"`
	TempLow       float64  `json:"tempLow"`
	Condition     string   `json:"condition"`
	Icon          string   `json:"icon"`
	Humidity      *float64 `json:"humidity,omitempty"`
	Precipitation *float64 `json:"precipitation,omitempty"`
}

// DayExpenses wraps one day's expenses, matching the persisted layout.
type DayExpenses struct {
	Expenses []Expense `json:"expenses"`
}

// DayJournal wraps one day's journal entries.
type DayJournal struct {
	Entries []JournalEntry `json:"entries"`
}

// DayPhotos wraps one day's photos.
type DayPhotos struct {
	Photos []PhotoMemory `json:"photos"`
}

// DayVisited maps an activity index to its checked-off flag.
// A missing index means "not visited".
type DayVisited struct {
	Activities map[int]bool `json:"activities"`
}

// DayWeather holds the weather stored for one day.
type DayWeather struct {
	Weather     *Weather `json:"weather"`
	LastUpdated int64    `json:"lastUpdated"`
}

// UserTripData is everything the user has recorded for one trip.
// Every per-day mapping is keyed by day number.
type UserTripData struct {
	Expenses    map[int]DayExpenses `json:"expenses"`
	Journals    map[int]DayJournal  `json:"journals"`
	Photos      map[int]DayPhotos   `json:"photos"`
	Visited     map[int]DayVisited  `json:"visited"`
	PackingList PackingList         `json:"packingList"`
	Weather     map[int]DayWeather  `json:"weather"`
}

// AppUserData is the whole persisted document: one UserTripData per trip.
type AppUserData map[TripID]UserTripData

// NewUserTripData returns the structural default for a trip with no data:
// every mapping present and empty, and an empty packing list stamped with now
// (epoch milliseconds).
func NewUserTripData(now int64) UserTripData {
	return UserTripData{
		Expenses:    map[int]DayExpenses{},
		Journals:    map[int]DayJournal{},
		Photos:      map[int]DayPhotos{},
		Visited:     map[int]DayVisited{},
		PackingList: PackingList{Items: []PackingItem{}, LastModified: now},
		Weather:     map[int]DayWeather{},
	}
}

// Normalize fills any absent mapping with an empty one so that readers never
// have to distinguish "absent" from "empty". It returns the receiver's data
// with the gaps filled; existing entries are kept as-is.
func (d UserTripData) Normalize() UserTripData {
	if d.Expenses == nil {
		d.Expenses = map[int]DayExpenses{}
	}
	if d.Journals == nil {
		d.Journals = map[int]DayJournal{}
	}
	if d.Photos == nil {
		d.Photos = map[int]DayPhotos{}
	}
	if d.Visited == nil {
		d.Visited = map[int]DayVisited{}
	}
	if d.Weather == nil {
		d.Weather = map[int]DayWeather{}
	}
	if d.PackingList.Items == nil {
		d.PackingList.Items = []PackingItem{}
	}
	return d
}

// DayExpenses returns the expenses recorded for day, or an empty slice.
func (d UserTripData) DayExpenses(day int) []Expense {
	if e, ok := d.Expenses[day]; ok && e.Expenses != nil {
		return e.Expenses
	}
	return []Expense{}
}

// DayJournal returns the journal entries recorded for day, or an empty slice.
func (d UserTripData) DayJournal(day int) []JournalEntry {
	if j, ok := d.Journals[day]; ok && j.Entries != nil {
		return j.Entries
	}
	return []JournalEntry{}
}

// DayPhotos returns the photos recorded for day, or an empty slice.
func (d UserTripData) DayPhotos(day int) []PhotoMemory {
	if p, ok := d.Photos[day]; ok && p.Photos != nil {
		return p.Photos
	}
	return []PhotoMemory{}
}

// IsVisited reports whether activity index of day has been checked off.
func (d UserTripData) IsVisited(day, index int) bool {
	return d.Visited[day].Activities[index]
}

// AllExpenses returns every expense of the trip ordered by day, then by
// insertion order within the day.
func (d UserTripData) AllExpenses() []Expense {
	days := make([]int, 0, len(d.Expenses))
	for day := range d.Expenses {
		days = append(days, day)
	}
	slices.Sort(days)

	var out []Expense
	for _, day := range days {
		out = append(out, d.Expenses[day].Expenses...)
	}
	return out
}
