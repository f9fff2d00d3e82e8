package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/handler"
	"github.com/pkordes/trip-journal/internal/itinerary"
	"github.com/pkordes/trip-journal/internal/repo"
	"github.com/pkordes/trip-journal/internal/service"
	"github.com/pkordes/trip-journal/internal/store"
)

// mockJournal is a test double for handler.JournalServicer.
// Set only the method fields your test needs; calling an unset method panics,
// which fails the test and proves the handler rejected the request earlier.
type mockJournal struct {
	rates                currency.Rates
	tripData             func(trip domain.TripID) domain.UserTripData
	dayExpenses          func(trip domain.TripID, day int) []domain.Expense
	dayTotal             func(trip domain.TripID, day int, target string) float64
	tripTotal            func(trip domain.TripID, target string) float64
	tripTotalsByCategory func(trip domain.TripID, target string) []currency.CategoryTotal

	addExpense         func(ctx context.Context, trip domain.TripID, day int, in service.NewExpense) domain.Expense
	deleteExpense      func(ctx context.Context, trip domain.TripID, day int, id string)
	addJournalEntry    func(ctx context.Context, trip domain.TripID, day int, content string, typ domain.JournalType) domain.JournalEntry
	deleteJournalEntry func(ctx context.Context, trip domain.TripID, day int, id string)
	addPhoto           func(ctx context.Context, trip domain.TripID, day int, imageData, caption string) domain.PhotoMemory
	deletePhoto        func(ctx context.Context, trip domain.TripID, day int, id string)
	toggleVisited      func(ctx context.Context, trip domain.TripID, day, index int) bool
	setWeather         func(ctx context.Context, trip domain.TripID, day int, w *domain.Weather) domain.DayWeather

	ensurePackingList func(ctx context.Context, trip domain.TripID) domain.PackingList
	initPackingList   func(ctx context.Context, trip domain.TripID, items []domain.PackingItem) domain.PackingList
	togglePackingItem func(ctx context.Context, trip domain.TripID, id string) domain.PackingList
	addPackingItem    func(ctx context.Context, trip domain.TripID, name domain.Bilingual, category domain.PackingCategory) domain.PackingItem
	deletePackingItem func(ctx context.Context, trip domain.TripID, id string) domain.PackingList
}

func (m *mockJournal) Rates() currency.Rates { return m.rates }
func (m *mockJournal) TripData(trip domain.TripID) domain.UserTripData {
	return m.tripData(trip)
}
func (m *mockJournal) DayExpenses(trip domain.TripID, day int) []domain.Expense {
	return m.dayExpenses(trip, day)
}
func (m *mockJournal) DayTotal(trip domain.TripID, day int, target string) float64 {
	return m.dayTotal(trip, day, target)
}
func (m *mockJournal) TripTotal(trip domain.TripID, target string) float64 {
	return m.tripTotal(trip, target)
}
func (m *mockJournal) TripTotalsByCategory(trip domain.TripID, target string) []currency.CategoryTotal {
	return m.tripTotalsByCategory(trip, target)
}
func (m *mockJournal) AddExpense(ctx context.Context, trip domain.TripID, day int, in service.NewExpense) domain.Expense {
	return m.addExpense(ctx, trip, day, in)
}
func (m *mockJournal) DeleteExpense(ctx context.Context, trip domain.TripID, day int, id string) {
	m.deleteExpense(ctx, trip, day, id)
}
func (m *mockJournal) AddJournalEntry(ctx context.Context, trip domain.TripID, day int, content string, typ domain.JournalType) domain.JournalEntry {
	return m.addJournalEntry(ctx, trip, day, content, typ)
}
func (m *mockJournal) DeleteJournalEntry(ctx context.Context, trip domain.TripID, day int, id string) {
	m.deleteJournalEntry(ctx, trip, day, id)
}
func (m *mockJournal) AddPhoto(ctx context.Context, trip domain.TripID, day int, imageData, caption string) domain.PhotoMemory {
	return m.addPhoto(ctx, trip, day, imageData, caption)
}
func (m *mockJournal) DeletePhoto(ctx context.Context, trip domain.TripID, day int, id string) {
	m.deletePhoto(ctx, trip, day, id)
}
func (m *mockJournal) ToggleActivityVisited(ctx context.Context, trip domain.TripID, day, index int) bool {
	return m.toggleVisited(ctx, trip, day, index)
}
func (m *mockJournal) SetWeather(ctx context.Context, trip domain.TripID, day int, w *domain.Weather) domain.DayWeather {
	return m.setWeather(ctx, trip, day, w)
}
func (m *mockJournal) EnsurePackingList(ctx context.Context, trip domain.TripID) domain.PackingList {
	return m.ensurePackingList(ctx, trip)
}
func (m *mockJournal) InitPackingList(ctx context.Context, trip domain.TripID, items []domain.PackingItem) domain.PackingList {
	return m.initPackingList(ctx, trip, items)
}
func (m *mockJournal) TogglePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList {
	return m.togglePackingItem(ctx, trip, id)
}
func (m *mockJournal) AddPackingItem(ctx context.Context, trip domain.TripID, name domain.Bilingual, category domain.PackingCategory) domain.PackingItem {
	return m.addPackingItem(ctx, trip, name, category)
}
func (m *mockJournal) DeletePackingItem(ctx context.Context, trip domain.TripID, id string) domain.PackingList {
	return m.deletePackingItem(ctx, trip, id)
}

// compile-time check: mockJournal must satisfy handler.JournalServicer.
var _ handler.JournalServicer = (*mockJournal)(nil)

// mockExporter is a test double for handler.ExportServicer.
type mockExporter struct {
	export func(ctx context.Context) ([]byte, error)
}

func (m *mockExporter) Export(ctx context.Context) ([]byte, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExporter)(nil)

// ---- helpers ---------------------------------------------------------------

// catalogYAML describes a small catalog: Thailand has two authored days, the
// other trips have none.
const catalogYAML = `
trips:
- id: thailand
  name: {en: Thailand, zh: 泰国}
  days:
  - day: 1
    title: {en: Arrival, zh: 抵达}
    region: krabi
    activities:
      en: [Land, Check in, Dinner]
      zh: [抵达, 入住, 晚餐]
  - day: 2
    title: {en: Railay, zh: 莱利}
    region: krabi
    activities:
      en: [Longtail boat]
      zh: [长尾船]
- id: croatia
  name: {en: Croatia, zh: 克罗地亚}
- id: china
  name: {en: China, zh: 中国}
`

func testCatalog(t *testing.T) *itinerary.Catalog {
	t.Helper()
	c, err := itinerary.Parse([]byte(catalogYAML))
	require.NoError(t, err)
	return c
}

// newHTTPHandler wires a Server with the given mocks into its chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(t *testing.T, journal handler.JournalServicer, export handler.ExportServicer) http.Handler {
	t.Helper()
	return handler.NewServer(journal, testCatalog(t), export).Handler()
}

// newRealHandler wires the real service over an in-memory record store.
func newRealHandler(t *testing.T) http.Handler {
	t.Helper()
	rs := store.New(repo.NewMemoryKVRepo())
	svc := service.NewJournalService(service.OpenTripDataRepo(context.Background(), rs))
	return handler.NewServer(svc, testCatalog(t), rs).Handler()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends a request through h and returns the recorder.
func do(h http.Handler, method, path string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
