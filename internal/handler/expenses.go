package handler

import (
	"fmt"
	"math"
	"net/http"
	"slices"
	"strings"

	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/service"
)

// CreateExpenseRequest is the body of POST .../expenses.
type CreateExpenseRequest struct {
	Amount      float64                `json:"amount"`
	Currency    string                 `json:"currency"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
}

// DayExpensesResponse lists one day's expenses with their total.
type DayExpensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
	Total    float64          `json:"total"`
	Currency string           `json:"currency"`
	Symbol   string           `json:"symbol"`
}

// DayTotal is one row of the per-day breakdown in ExpenseSummaryResponse.
type DayTotal struct {
	Day   int     `json:"day"`
	Total float64 `json:"total"`
}

// ExpenseSummaryResponse is the body of GET /trips/{tripId}/expenses/summary.
type ExpenseSummaryResponse struct {
	Currency   string                   `json:"currency"`
	Symbol     string                   `json:"symbol"`
	Total      float64                  `json:"total"`
	ByCategory []currency.CategoryTotal `json:"byCategory"`
	ByDay      []DayTotal               `json:"byDay"`
}

// ListExpenses handles GET /trips/{tripId}/days/{day}/expenses.
// Supports ?currency= for the total (default: the server's default currency).
func (s *Server) ListExpenses(w http.ResponseWriter, r *http.Request) {
	target, err := s.targetCurrency(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	trip, day := tripFrom(r), dayFrom(r)
	writeJSON(w, http.StatusOK, DayExpensesResponse{
		Expenses: s.journal.DayExpenses(trip, day),
		Total:    s.journal.DayTotal(trip, day, target),
		Currency: target,
		Symbol:   currency.Symbol(target),
	})
}

// CreateExpense handles POST /trips/{tripId}/days/{day}/expenses.
func (s *Server) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var body CreateExpenseRequest
	if err := decodeJSON(r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}
	in, err := requestToExpense(body)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
		return
	}

	created := s.journal.AddExpense(r.Context(), tripFrom(r), dayFrom(r), in)
	writeJSON(w, http.StatusCreated, created)
}

// DeleteExpense handles DELETE /trips/{tripId}/days/{day}/expenses/{id}.
// Unknown ids are not an error.
func (s *Server) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	var id string
	if err := bindPath(r, "id", &id); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	s.journal.DeleteExpense(r.Context(), tripFrom(r), dayFrom(r), id)
	w.WriteHeader(http.StatusNoContent)
}

// GetExpenseSummary handles GET /trips/{tripId}/expenses/summary.
func (s *Server) GetExpenseSummary(w http.ResponseWriter, r *http.Request) {
	target, err := s.targetCurrency(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}
	trip := tripFrom(r)

	days := make([]int, 0)
	for day, e := range s.journal.TripData(trip).Expenses {
		if len(e.Expenses) > 0 {
			days = append(days, day)
		}
	}
	slices.Sort(days)

	byDay := make([]DayTotal, len(days))
	for i, day := range days {
		byDay[i] = DayTotal{Day: day, Total: s.journal.DayTotal(trip, day, target)}
	}

	writeJSON(w, http.StatusOK, ExpenseSummaryResponse{
		Currency:   target,
		Symbol:     currency.Symbol(target),
		Total:      s.journal.TripTotal(trip, target),
		ByCategory: s.journal.TripTotalsByCategory(trip, target),
		ByDay:      byDay,
	})
}

// requestToExpense validates a CreateExpenseRequest.
// An omitted category defaults to "other".
func requestToExpense(body CreateExpenseRequest) (service.NewExpense, error) {
	if math.IsNaN(body.Amount) || math.IsInf(body.Amount, 0) || body.Amount <= 0 {
		return service.NewExpense{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	code := strings.ToUpper(strings.TrimSpace(body.Currency))
	if code == "" {
		return service.NewExpense{}, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}
	category := body.Category
	if category == "" {
		category = domain.ExpenseOther
	}
	if !category.Valid() {
		return service.NewExpense{}, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, body.Category)
	}
	return service.NewExpense{
		Amount:      body.Amount,
		Currency:    code,
		Category:    category,
		Description: strings.TrimSpace(body.Description),
	}, nil
}
