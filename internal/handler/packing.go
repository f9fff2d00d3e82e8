package handler

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/pkordes/trip-journal/internal/domain"
)

// PutPackingListRequest is the body of PUT /trips/{tripId}/packing.
type PutPackingListRequest struct {
	Items []domain.PackingItem `json:"items"`
}

// CreatePackingItemRequest is the body of POST /trips/{tripId}/packing/items.
type CreatePackingItemRequest struct {
	Name     domain.Bilingual       `json:"name"`
	Category domain.PackingCategory `json:"category"`
}

// GetPackingList handles GET /trips/{tripId}/packing.
// A trip without items is seeded from the default template first.
func (s *Server) GetPackingList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.journal.EnsurePackingList(r.Context(), tripFrom(r)))
}

// PutPackingList handles PUT /trips/{tripId}/packing, replacing the list.
func (s *Server) PutPackingList(w http.ResponseWriter, r *http.Request) {
	var body PutPackingListRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	if err := validatePackingItems(body.Items); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	writeJSON(w, http.StatusOK, s.journal.InitPackingList(r.Context(), tripFrom(r), body.Items))
}

// CreatePackingItem handles POST /trips/{tripId}/packing/items.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	var body CreatePackingItemRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	body.Name.En = strings.TrimSpace(body.Name.En)
	body.Name.Zh = strings.TrimSpace(body.Name.Zh)
	if body.Category == "" {
		body.Category = domain.PackingMisc
	}
	switch {
	case body.Name.En == "" && body.Name.Zh == "":
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(fmt.Errorf("%w: name is required", domain.ErrValidation)))
		return
	case !body.Category.Valid():
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(fmt.Errorf("%w: unknown category %q", domain.ErrValidation, body.Category)))
		return
	}

	created := s.journal.AddPackingItem(r.Context(), tripFrom(r), body.Name, body.Category)
	writeJSON(w, http.StatusCreated, created)
}

// TogglePackingItem handles POST /trips/{tripId}/packing/items/{id}/toggle.
// Responds with the toggled item, or 204 when no item has that id.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath(r, "id", &id); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	list := s.journal.TogglePackingItem(r.Context(), tripFrom(r), id)
	i := slices.IndexFunc(list.Items, func(it domain.PackingItem) bool { return it.ID == id })
	if i < 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, list.Items[i])
}

// DeletePackingItem handles DELETE /trips/{tripId}/packing/items/{id}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath(r, "id", &id); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	s.journal.DeletePackingItem(r.Context(), tripFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

// validatePackingItems checks a replacement list: ids present and unique,
// categories known.
func validatePackingItems(items []domain.PackingItem) error {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		switch {
		case it.ID == "":
			return fmt.Errorf("%w: item %d has no id", domain.ErrValidation, i)
		case seen[it.ID]:
			return fmt.Errorf("%w: duplicate item id %q", domain.ErrValidation, it.ID)
		case !it.Category.Valid():
			return fmt.Errorf("%w: item %q has unknown category %q", domain.ErrValidation, it.ID, it.Category)
		}
		seen[it.ID] = true
	}
	return nil
}
