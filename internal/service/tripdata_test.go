package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/service"
)

func TestTripDataRepo_Get_Default(t *testing.T) {
	_, repo, fs := newService(t)

	got := repo.Get(domain.TripCroatia)

	assert.NotNil(t, got.Expenses)
	assert.NotNil(t, got.Journals)
	assert.NotNil(t, got.Photos)
	assert.NotNil(t, got.Visited)
	assert.NotNil(t, got.Weather)
	assert.Empty(t, got.Expenses)
	assert.NotNil(t, got.PackingList.Items)
	assert.Empty(t, got.PackingList.Items)
	assert.Equal(t, fixedNow.UnixMilli(), got.PackingList.LastModified)
	assert.Zero(t, fs.saveCount(), "Get must not write")
	assert.Empty(t, repo.Snapshot(), "Get must not add the trip to the document")
}

func TestTripDataRepo_Get_FillsAbsentMappings(t *testing.T) {
	fs := &fakeStore{loaded: domain.AppUserData{
		domain.TripThailand: {Expenses: map[int]domain.DayExpenses{1: {Expenses: []domain.Expense{{ID: "e1"}}}}},
	}}
	repo := service.OpenTripDataRepo(context.Background(), fs)

	got := repo.Get(domain.TripThailand)

	assert.Len(t, got.Expenses[1].Expenses, 1)
	assert.NotNil(t, got.Journals)
	assert.NotNil(t, got.Visited)
	assert.NotNil(t, got.PackingList.Items)
}

func TestTripDataRepo_Get_ReturnsCopy(t *testing.T) {
	svc, repo, _ := newService(t)
	svc.AddExpense(context.Background(), domain.TripThailand, 1, service.NewExpense{Amount: 1, Currency: "USD"})

	got := repo.Get(domain.TripThailand)
	got.Expenses[1].Expenses[0].Amount = 999
	got.Expenses[2] = domain.DayExpenses{}

	again := repo.Get(domain.TripThailand)
	assert.Equal(t, 1.0, again.Expenses[1].Expenses[0].Amount)
	assert.NotContains(t, again.Expenses, 2)
}

func TestTripDataRepo_Update_WritesFullDocument(t *testing.T) {
	fs := &fakeStore{loaded: domain.AppUserData{
		domain.TripChina: domain.NewUserTripData(1),
	}}
	repo := service.OpenTripDataRepo(context.Background(), fs)

	repo.Update(context.Background(), domain.TripThailand, func(d domain.UserTripData) domain.UserTripData {
		d.Visited[1] = domain.DayVisited{Activities: map[int]bool{0: true}}
		return d
	})

	require.Equal(t, 1, fs.saveCount())
	saved := fs.last()
	assert.Contains(t, saved, domain.TripChina, "other trips are written too")
	assert.True(t, saved[domain.TripThailand].Visited[1].Activities[0])
}

func TestTripDataRepo_Update_CrossTripIsolation(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()
	svc.AddExpense(ctx, domain.TripChina, 1, service.NewExpense{Amount: 5, Currency: "CNY"})
	before := repo.Get(domain.TripChina)

	svc.AddExpense(ctx, domain.TripThailand, 1, service.NewExpense{Amount: 7, Currency: "THB"})
	svc.ToggleActivityVisited(ctx, domain.TripThailand, 1, 0)
	svc.EnsurePackingList(ctx, domain.TripThailand)

	if diff := cmp.Diff(before, repo.Get(domain.TripChina)); diff != "" {
		t.Errorf("trip china changed (-before +after):\n%s", diff)
	}
}

func TestTripDataRepo_Update_SaveFailureKeepsMemoryState(t *testing.T) {
	// A store that drops every write behaves like a full disk: the session
	// continues on the in-memory document.
	repo := service.OpenTripDataRepo(context.Background(), droppingStore{})
	svc := service.NewJournalService(repo)

	e := svc.AddExpense(context.Background(), domain.TripThailand, 3, service.NewExpense{Amount: 12, Currency: "USD"})

	got := repo.Get(domain.TripThailand).DayExpenses(3)
	require.Len(t, got, 1)
	assert.Equal(t, e.ID, got[0].ID)
}

func TestTripDataRepo_Snapshot_IsIndependent(t *testing.T) {
	svc, repo, _ := newService(t)
	svc.AddJournalEntry(context.Background(), domain.TripThailand, 1, "hello", domain.JournalGeneral)

	snap := repo.Snapshot()
	delete(snap, domain.TripThailand)

	assert.Contains(t, repo.Snapshot(), domain.TripThailand)
}

func TestTripDataRepo_Open_UsesClock(t *testing.T) {
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := service.OpenTripDataRepo(context.Background(), &fakeStore{}, service.WithClock(func() time.Time { return at }))

	assert.Equal(t, at.UnixMilli(), repo.NowMillis())
	assert.Equal(t, at.UnixMilli(), repo.Get(domain.TripChina).PackingList.LastModified)
}

type droppingStore struct{}

func (droppingStore) Load(context.Context) (domain.AppUserData, bool) { return nil, false }
func (droppingStore) Save(context.Context, domain.AppUserData)        {}
