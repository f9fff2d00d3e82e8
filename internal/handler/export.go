package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
)

// csvHeaders defines the column names written as the first row of a CSV export.
// The last column holds the amount converted to the requested currency.
var csvHeaders = []string{
	"trip_id", "day", "expense_id", "timestamp",
	"category", "amount", "currency", "description", "converted_amount",
}

// GetExport implements GET /export.
// By default it returns the stored journal document exactly as persisted.
// With ?format=csv it returns one row per expense across every trip, with
// amounts also converted to ?currency= (default: the server's default currency).
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := bindQuery(r, "format", &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
		return
	}

	if format != nil && *format == "csv" {
		target, err := s.targetCurrency(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody(err.Error()))
			return
		}
		s.writeCSVExport(w, target)
		return
	}

	raw, err := s.export.Export(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-journal.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// writeCSVExport encodes every expense of every catalog trip as CSV, ordered
// by trip, then day, then insertion order.
func (s *Server) writeCSVExport(w http.ResponseWriter, target string) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	rates := s.journal.Rates()
	_ = cw.Write(csvHeaders)
	for _, t := range s.catalog.Trips() {
		data := s.journal.TripData(t.ID)
		days := make([]int, 0, len(data.Expenses))
		for day := range data.Expenses {
			days = append(days, day)
		}
		slices.Sort(days)
		for _, day := range days {
			for _, e := range data.DayExpenses(day) {
				_ = cw.Write(expenseToCSVRecord(t.ID, day, e, rates.Convert(e.Amount, e.Currency, target)))
			}
		}
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-expenses.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// expenseToCSVRecord encodes one expense as a flat string slice.
// The timestamp is written as RFC3339 in UTC.
func expenseToCSVRecord(trip domain.TripID, day int, e domain.Expense, converted float64) []string {
	return []string{
		string(trip),
		strconv.Itoa(day),
		e.ID,
		time.UnixMilli(e.CreatedAt).UTC().Format(time.RFC3339),
		string(e.Category),
		formatAmount(e.Amount),
		e.Currency,
		e.Description,
		formatAmount(converted),
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
