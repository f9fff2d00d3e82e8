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

// ---- journal entries -------------------------------------------------------

func TestCreateJournalEntry_201(t *testing.T) {
	svc := &mockJournal{
		addJournalEntry: func(_ context.Context, trip domain.TripID, day int, content string, typ domain.JournalType) domain.JournalEntry {
			assert.Equal(t, domain.TripCroatia, trip)
			assert.Equal(t, 4, day)
			return domain.JournalEntry{ID: "j1", Content: content, Type: typ, CreatedAt: 7}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodPost, "/trips/croatia/days/4/journal",
		jsonBody(t, map[string]any{"content": " Konoba near the walls ", "type": "restaurant"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp domain.JournalEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Konoba near the walls", resp.Content)
	assert.Equal(t, domain.JournalRestaurant, resp.Type)
}

func TestCreateJournalEntry_DefaultsToGeneral(t *testing.T) {
	svc := &mockJournal{
		addJournalEntry: func(_ context.Context, _ domain.TripID, _ int, content string, typ domain.JournalType) domain.JournalEntry {
			assert.Equal(t, domain.JournalGeneral, typ)
			return domain.JournalEntry{ID: "j1"}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodPost, "/trips/thailand/days/1/journal",
		jsonBody(t, map[string]any{"content": "Sunset"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateJournalEntry_422(t *testing.T) {
	h := newHTTPHandler(t, &mockJournal{}, nil)

	rec := do(h, http.MethodPost, "/trips/thailand/days/1/journal", jsonBody(t, map[string]any{"content": "   "}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "content is required", decodeError(t, rec).Error.Message)

	rec = do(h, http.MethodPost, "/trips/thailand/days/1/journal", jsonBody(t, map[string]any{"content": "x", "type": "rant"}))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `unknown entry type "rant"`, decodeError(t, rec).Error.Message)
}

func TestDeleteJournalEntry_204(t *testing.T) {
	called := false
	svc := &mockJournal{
		deleteJournalEntry: func(_ context.Context, _ domain.TripID, _ int, id string) {
			called = true
			assert.Equal(t, "j9", id)
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodDelete, "/trips/thailand/days/1/journal/j9", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

// ---- photos ----------------------------------------------------------------

func TestCreatePhoto_201(t *testing.T) {
	const img = "data:image/png;base64,iVBORw0KGgo="
	svc := &mockJournal{
		addPhoto: func(_ context.Context, _ domain.TripID, _ int, imageData, caption string) domain.PhotoMemory {
			assert.Equal(t, img, imageData)
			return domain.PhotoMemory{ID: "p1", ImageData: imageData, Caption: caption}
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodPost, "/trips/thailand/days/2/photos",
		jsonBody(t, map[string]any{"dataUrl": img, "caption": "Railay "}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp domain.PhotoMemory
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Railay", resp.Caption)
	assert.Equal(t, img, resp.ImageData)
}

func TestCreatePhoto_422_NotAnImage(t *testing.T) {
	rec := do(newHTTPHandler(t, &mockJournal{}, nil), http.MethodPost, "/trips/thailand/days/2/photos",
		jsonBody(t, map[string]any{"dataUrl": "https://example.com/cat.jpg"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeletePhoto_204(t *testing.T) {
	svc := &mockJournal{
		deletePhoto: func(_ context.Context, _ domain.TripID, day int, id string) {
			assert.Equal(t, 2, day)
			assert.Equal(t, "p1", id)
		},
	}

	rec := do(newHTTPHandler(t, svc, nil), http.MethodDelete, "/trips/thailand/days/2/photos/p1", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
