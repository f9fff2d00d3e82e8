package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkordes/trip-journal/internal/domain"
)

// CreateJournalEntryRequest is the body of POST .../journal.
type CreateJournalEntryRequest struct {
	Content string             `json:"content"`
	Type    domain.JournalType `json:"type"`
}

// CreatePhotoRequest is the body of POST .../photos.
// DataURL is the already-encoded image, e.g. "data:image/jpeg;base64,...".
type CreatePhotoRequest struct {
	DataURL string `json:"dataUrl"`
	Caption string `json:"caption"`
}

// CreateJournalEntry handles POST /trips/{tripId}/days/{day}/journal.
// An omitted type defaults to "general".
func (s *Server) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	var body CreateJournalEntryRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	content := strings.TrimSpace(body.Content)
	typ := body.Type
	if typ == "" {
		typ = domain.JournalGeneral
	}
	switch {
	case content == "":
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(fmt.Errorf("%w: content is required", domain.ErrValidation)))
		return
	case !typ.Valid():
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(fmt.Errorf("%w: unknown entry type %q", domain.ErrValidation, body.Type)))
		return
	}

	created := s.journal.AddJournalEntry(r.Context(), tripFrom(r), dayFrom(r), content, typ)
	writeJSON(w, http.StatusCreated, created)
}

// DeleteJournalEntry handles DELETE /trips/{tripId}/days/{day}/journal/{id}.
func (s *Server) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath(r, "id", &id); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	s.journal.DeleteJournalEntry(r.Context(), tripFrom(r), dayFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

// CreatePhoto handles POST /trips/{tripId}/days/{day}/photos.
func (s *Server) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	var body CreatePhotoRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if !strings.HasPrefix(body.DataURL, "data:image/") {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(fmt.Errorf("%w: dataUrl must be an image data URL", domain.ErrValidation)))
		return
	}

	created := s.journal.AddPhoto(r.Context(), tripFrom(r), dayFrom(r), body.DataURL, strings.TrimSpace(body.Caption))
	writeJSON(w, http.StatusCreated, created)
}

// DeletePhoto handles DELETE /trips/{tripId}/days/{day}/photos/{id}.
func (s *Server) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath(r, "id", &id); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	s.journal.DeletePhoto(r.Context(), tripFrom(r), dayFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}
