package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/internal/domain"
)

func TestGetPackingList_Seeds(t *testing.T) {
	h := newRealHandler(t)

	rec := do(h, http.MethodGet, "/trips/thailand/packing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var first domain.PackingList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&first))
	require.Len(t, first.Items, len(domain.DefaultPackingTemplate))

	rec = do(h, http.MethodGet, "/trips/thailand/packing", nil)
	var second domain.PackingList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&second))
	assert.Equal(t, first, second, "a second read does not reseed")
}

func TestGetPackingList_EmptiedListIsNotReseeded(t *testing.T) {
	h := newRealHandler(t)

	rec := do(h, http.MethodGet, "/trips/thailand/packing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var seeded domain.PackingList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&seeded))

	for _, it := range seeded.Items {
		rec = do(h, http.MethodDelete, "/trips/thailand/packing/items/"+it.ID, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec = do(h, http.MethodGet, "/trips/thailand/packing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var after domain.PackingList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&after))
	assert.Empty(t, after.Items)
}

func TestPutPackingList_200(t *testing.T) {
	items := []domain.PackingItem{{ID: "a", Name: domain.Bilingual{En: "Kindle"}, Category: domain.PackingElectronics}}
	svc := &mockJournal{
		initPackingList: func(_ context.Context, _ domain.TripID, got []domain.PackingItem) domain.PackingList {
			assert.Equal(t, items, got)
			return domain.PackingList{Items: got, LastModified: 5}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodPut, "/trips/thailand/packing", jsonBody(t, map[string]any{"items": items}))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPutPackingList_422(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.PackingItem
	}{
		{"missing id", []domain.PackingItem{{Category: domain.PackingMisc}}},
		{"duplicate id", []domain.PackingItem{{ID: "a", Category: domain.PackingMisc}, {ID: "a", Category: domain.PackingMisc}}},
		{"unknown category", []domain.PackingItem{{ID: "a", Category: "snacks"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(newHTTPHandler(t, &mockJournal{}, nil), http.MethodPut, "/trips/thailand/packing",
				jsonBody(t, map[string]any{"items": tc.items}))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestCreatePackingItem_201(t *testing.T) {
	svc := &mockJournal{
		addPackingItem: func(_ context.Context, _ domain.TripID, name domain.Bilingual, category domain.PackingCategory) domain.PackingItem {
			assert.Equal(t, domain.Bilingual{En: "Snorkel", Zh: "浮潜面罩"}, name)
			assert.Equal(t, domain.PackingMisc, category)
			return domain.PackingItem{ID: "p1", Name: name, Category: category}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodPost, "/trips/thailand/packing/items",
		jsonBody(t, map[string]any{"name": map[string]string{"en": "Snorkel ", "zh": "浮潜面罩"}}))

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreatePackingItem_422(t *testing.T) {
	h := newHTTPHandler(t, &mockJournal{}, nil)

	rec := do(h, http.MethodPost, "/trips/thailand/packing/items", jsonBody(t, map[string]any{"name": map[string]string{"en": " "}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(h, http.MethodPost, "/trips/thailand/packing/items",
		jsonBody(t, map[string]any{"name": map[string]string{"en": "Tent"}, "category": "camping"}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTogglePackingItem(t *testing.T) {
	svc := &mockJournal{
		togglePackingItem: func(_ context.Context, _ domain.TripID, id string) domain.PackingList {
			return domain.PackingList{Items: []domain.PackingItem{{ID: "a", Checked: true, Category: domain.PackingMisc}}}
		},
	}
	h := newHTTPHandler(t, svc, nil)

	rec := do(h, http.MethodPost, "/trips/thailand/packing/items/a/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var item domain.PackingItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.True(t, item.Checked)

	rec = do(h, http.MethodPost, "/trips/thailand/packing/items/zzz/toggle", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeletePackingItem_204(t *testing.T) {
	svc := &mockJournal{
		deletePackingItem: func(_ context.Context, trip domain.TripID, id string) domain.PackingList {
			assert.Equal(t, domain.TripChina, trip)
			assert.Equal(t, "a", id)
			return domain.PackingList{Items: []domain.PackingItem{}}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodDelete, "/trips/china/packing/items/a", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
