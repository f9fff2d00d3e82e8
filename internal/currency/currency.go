// Package currency converts and sums expense amounts across currencies using
// a static rate table. Every function here is pure.
package currency

import (
	"strings"

	"github.com/pkordes/trip-journal/internal/domain"
)

// Reference is the currency every rate is expressed in.
const Reference = "USD"

// Rates maps an upper-case currency code to the value of one unit in the
// reference currency (e.g. THB: 0.029 means 1 THB = 0.029 USD). Lookups are
// case-insensitive.
type Rates map[string]float64

// DefaultRates is the built-in rate table.
var DefaultRates = Rates{
	"THB": 0.029,
	"EUR": 1.08,
	"USD": 1,
	"MYR": 0.22,
	"HRK": 0.14,
	"CNY": 0.14,
}

var symbols = map[string]string{
	"THB": "฿",
	"EUR": "€",
	"USD": "$",
	"MYR": "RM",
	"HRK": "kn",
	"CNY": "¥",
}

// normalize maps a caller-supplied code onto the table's key form.
func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Symbol returns the display symbol for code, or the code itself when none is known.
func Symbol(code string) string {
	if s, ok := symbols[normalize(code)]; ok {
		return s
	}
	return code
}

// Known reports whether code has an entry in the table.
func (r Rates) Known(code string) bool {
	_, ok := r[normalize(code)]
	return ok
}

// Rate returns the reference rate for code. Codes missing from the table are
// treated as already being in the reference unit and get rate 1.
func (r Rates) Rate(code string) float64 {
	if rate, ok := r[normalize(code)]; ok && rate != 0 {
		return rate
	}
	return 1
}

// Convert converts amount from one currency to another.
func (r Rates) Convert(amount float64, from, to string) float64 {
	return amount * r.Rate(from) / r.Rate(to)
}

// Total sums expenses in the target currency. It returns 0 for an empty list
// and applies no rounding.
func (r Rates) Total(expenses []domain.Expense, target string) float64 {
	if len(expenses) == 0 {
		return 0
	}
	var sum float64
	for _, e := range expenses {
		sum += e.Amount * r.Rate(e.Currency)
	}
	return sum / r.Rate(target)
}

// CategoryTotal is the amount spent in one expense category.
type CategoryTotal struct {
	Category domain.ExpenseCategory `json:"category"`
	Amount   float64                `json:"amount"`
}

// TotalByCategory sums expenses per category in the target currency.
// The result follows domain.ExpenseCategories order and omits categories with
// no expenses. Expenses with an unrecognised category are reported under
// domain.ExpenseOther.
func (r Rates) TotalByCategory(expenses []domain.Expense, target string) []CategoryTotal {
	sums := make(map[domain.ExpenseCategory]float64)
	for _, e := range expenses {
		c := e.Category
		if !c.Valid() {
			c = domain.ExpenseOther
		}
		sums[c] += e.Amount * r.Rate(e.Currency)
	}

	out := []CategoryTotal{}
	targetRate := r.Rate(target)
	for _, c := range domain.ExpenseCategories {
		if v, ok := sums[c]; ok {
			out = append(out, CategoryTotal{Category: c, Amount: v / targetRate})
		}
	}
	return out
}

// Total sums expenses in the target currency using DefaultRates.
func Total(expenses []domain.Expense, target string) float64 {
	return DefaultRates.Total(expenses, target)
}
