package service

import (
	"github.com/google/uuid"

	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/metrics"
)

// Mutation operation names, used as metric labels.
const (
	opAddExpense         = "add_expense"
	opDeleteExpense      = "delete_expense"
	opAddJournalEntry    = "add_journal_entry"
	opDeleteJournalEntry = "delete_journal_entry"
	opAddPhoto           = "add_photo"
	opDeletePhoto        = "delete_photo"
	opToggleVisited      = "toggle_visited"
	opInitPacking        = "init_packing_list"
	opTogglePacking      = "toggle_packing_item"
	opAddPacking         = "add_packing_item"
	opDeletePacking      = "delete_packing_item"
	opSetWeather         = "set_weather"
)

// JournalService implements the catalogue of journal mutations and the read
// helpers built on them.
//
// It performs no input validation: amounts, categories, and day numbers are
// trusted. Referencing an id that does not exist is a silent no-op.
type JournalService struct {
	data    *TripDataRepo
	rates   currency.Rates
	newID   func() string
	metrics *metrics.Metrics
}

// ServiceOption configures a JournalService.
type ServiceOption func(*JournalService)

// WithRates overrides currency.DefaultRates.
func WithRates(r currency.Rates) ServiceOption {
	return func(s *JournalService) { s.rates = r }
}

// WithIDGenerator overrides the record id generator (random UUIDs by default).
func WithIDGenerator(f func() string) ServiceOption {
	return func(s *JournalService) { s.newID = f }
}

// WithMetrics counts applied mutations on m.
func WithMetrics(m *metrics.Metrics) ServiceOption {
	return func(s *JournalService) { s.metrics = m }
}

// NewJournalService constructs a JournalService over data.
func NewJournalService(data *TripDataRepo, opts ...ServiceOption) *JournalService {
	s := &JournalService{
		data:  data,
		rates: currency.DefaultRates,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rates returns the rate table used for totals.
func (s *JournalService) Rates() currency.Rates {
	return s.rates
}

// TripData returns the defaulted user data for trip.
func (s *JournalService) TripData(trip domain.TripID) domain.UserTripData {
	return s.data.Get(trip)
}

// DayExpenses returns the expenses recorded for one day, never nil.
func (s *JournalService) DayExpenses(trip domain.TripID, day int) []domain.Expense {
	return s.data.Get(trip).DayExpenses(day)
}

// DayTotal sums one day's expenses in the target currency.
func (s *JournalService) DayTotal(trip domain.TripID, day int, target string) float64 {
	return s.rates.Total(s.DayExpenses(trip, day), target)
}

// TripTotal sums every expense of the trip in the target currency.
func (s *JournalService) TripTotal(trip domain.TripID, target string) float64 {
	return s.rates.Total(s.data.Get(trip).AllExpenses(), target)
}

// TripTotalsByCategory breaks the trip total down by expense category.
func (s *JournalService) TripTotalsByCategory(trip domain.TripID, target string) []currency.CategoryTotal {
	return s.rates.TotalByCategory(s.data.Get(trip).AllExpenses(), target)
}
