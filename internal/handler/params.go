package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/trip-journal/internal/domain"
)

type ctxKey int

const (
	tripKey ctxKey = iota
	dayKey
)

// bindPath binds the chi path parameter name into dest using the OpenAPI
// "simple" style.
func bindPath(r *http.Request, name string, dest any) error {
	return runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
}

// bindQuery binds the optional query parameter name into dest.
func bindQuery(r *http.Request, name string, dest any) error {
	return runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest)
}

// tripCtx resolves {tripId} and rejects unknown trips with 404.
func (s *Server) tripCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw string
		if err := bindPath(r, "tripId", &raw); err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
			return
		}
		trip, err := domain.ParseTripID(raw)
		if err != nil {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), tripKey, trip)))
	})
}

// dayCtx resolves {day} and rejects days the catalog does not have with 404.
func (s *Server) dayCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var day int
		if err := bindPath(r, "day", &day); err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
			return
		}
		if !s.catalog.HasDay(tripFrom(r), day) {
			writeJSON(w, http.StatusNotFound, notFoundBody("day not found"))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), dayKey, day)))
	})
}

func tripFrom(r *http.Request) domain.TripID {
	trip, _ := r.Context().Value(tripKey).(domain.TripID)
	return trip
}

func dayFrom(r *http.Request) int {
	day, _ := r.Context().Value(dayKey).(int)
	return day
}

// targetCurrency returns the ?currency= query value, upper-cased, or the
// server default.
func (s *Server) targetCurrency(r *http.Request) (string, error) {
	var cur *string
	if err := bindQuery(r, "currency", &cur); err != nil {
		return "", err
	}
	if cur == nil || strings.TrimSpace(*cur) == "" {
		return s.defaultCurrency, nil
	}
	return strings.ToUpper(strings.TrimSpace(*cur)), nil
}

// errBodyTooLarge is returned by decodeJSON when the body exceeds the
// configured limit.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON decodes the request body into v. An empty body is an error.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &tooLarge):
		return errBodyTooLarge
	case errors.Is(err, io.EOF):
		return errors.New("request body is required")
	default:
		return fmt.Errorf("malformed request body: %w", err)
	}
}

// writeDecodeError maps a decodeJSON failure to its response.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{Code: "too_large", Message: err.Error()}})
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
}
