// Package handler implements the HTTP surface of the trip journal.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, expenses.go, etc.) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/service"
)

// JournalServicer defines the journal operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type JournalServicer interface {
	Rates() currency.Rates
	TripData(trip domain.TripID) domain.UserTripData
	DayExpenses(trip domain.TripID, day int) []domain.Expense
	DayTotal(trip domain.TripID, day int, target string) float64
	TripTotal(trip domain.TripID, target string) float64
	TripTotalsByCategory(trip domain.TripID, target string) []currency.CategoryTotal

	AddExpense(ctx context.Context, trip domain.TripID, day int, in service.NewExpense) domain.Expense
	DeleteExpense(ctx context.Context, trip domain.TripID, day int, id string)
	AddJournalEntry(ctx context.Context, trip domain.TripID, day int, content string, typ domain.JournalType) domain.JournalEntry
	DeleteJournalEntry(ctx context.Context, trip domain.TripID, day int, id string)
	AddPhoto(ctx context.Context, trip domain.TripID, day int, imageData, caption string) domain.PhotoMemory
	DeletePhoto(ctx context.Context, trip domain.TripID, day int, id string)
	ToggleActivityVisited(ctx context.Context, trip domain.TripID, day, index int) bool
	SetWeather(ctx context.Context, trip domain.TripID, day int, w *domain.Weather) domain.DayWeather

	EnsurePackingList(ctx context.Context, trip domain.TripID) domain.PackingList
	InitPackingList(ctx context.Context, trip domain.TripID, items []domain.PackingItem) domain.PackingList
	TogglePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList
	AddPackingItem(ctx context.Context, trip domain.TripID, name domain.Bilingual, category domain.PackingCategory) domain.PackingItem
	DeletePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList
}

// Catalog is the static trip catalog. *itinerary.Catalog satisfies it.
type Catalog interface {
	Trips() []domain.Trip
	Trip(id domain.TripID) (domain.Trip, error)
	HasDay(id domain.TripID, n int) bool
}

// ExportServicer returns the stored journal document as raw JSON.
// *store.RecordStore satisfies it.
type ExportServicer interface {
	Export(ctx context.Context) ([]byte, error)
}

// Server holds the dependencies shared by every handler.
// Wire it in main.go via Server.Routes or Server.Handler.
type Server struct {
	journal         JournalServicer
	catalog         Catalog
	export          ExportServicer
	defaultCurrency string
	log             *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithDefaultCurrency sets the total currency used when a request names none.
func WithDefaultCurrency(code string) Option {
	return func(s *Server) {
		if code != "" {
			s.defaultCurrency = strings.ToUpper(code)
		}
	}
}

// WithLogger sets the logger used for unexpected errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// NewServer constructs the Server with all its dependencies.
func NewServer(journal JournalServicer, catalog Catalog, export ExportServicer, opts ...Option) *Server {
	s := &Server{
		journal:         journal,
		catalog:         catalog,
		export:          export,
		defaultCurrency: currency.Reference,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns a chi router serving every API route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// Routes registers every API route on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/export", s.GetExport)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)

		r.Route("/{tripId}", func(r chi.Router) {
			r.Use(s.tripCtx)
			r.Get("/", s.GetTrip)
			r.Get("/data", s.GetTripData)
			r.Get("/expenses/summary", s.GetExpenseSummary)

			r.Route("/days/{day}", func(r chi.Router) {
				r.Use(s.dayCtx)
				r.Get("/expenses", s.ListExpenses)
				r.Post("/expenses", s.CreateExpense)
				r.Delete("/expenses/{id}", s.DeleteExpense)
				r.Post("/journal", s.CreateJournalEntry)
				r.Delete("/journal/{id}", s.DeleteJournalEntry)
				r.Post("/photos", s.CreatePhoto)
				r.Delete("/photos/{id}", s.DeletePhoto)
				r.Post("/activities/{index}/toggle", s.ToggleActivity)
				r.Put("/weather", s.PutWeather)
			})

			r.Route("/packing", func(r chi.Router) {
				r.Get("/", s.GetPackingList)
				r.Put("/", s.PutPackingList)
				r.Post("/items", s.CreatePackingItem)
				r.Post("/items/{id}/toggle", s.TogglePackingItem)
				r.Delete("/items/{id}", s.DeletePackingItem)
			})
		})
	})
}
