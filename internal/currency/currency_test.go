package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-journal/internal/currency"
	"github.com/pkordes/trip-journal/internal/domain"
)

var testRates = currency.Rates{"THB": 0.029, "EUR": 1.08, "USD": 1}

func expenses(pairs ...any) []domain.Expense {
	var out []domain.Expense
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.Expense{Amount: pairs[i].(float64), Currency: pairs[i+1].(string)})
	}
	return out
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		expenses []domain.Expense
		target   string
		want     float64
	}{
		{"mixed to USD", expenses(100.0, "THB", 10.0, "EUR"), "USD", 13.7},
		{"mixed to EUR", expenses(100.0, "THB", 10.0, "EUR"), "EUR", 13.7 / 1.08},
		{"unknown source currency is rate 1", expenses(50.0, "XYZ"), "USD", 50},
		{"unknown target currency is rate 1", expenses(10.0, "EUR"), "XYZ", 10.8},
		{"empty list", nil, "USD", 0},
		{"empty list unknown target", []domain.Expense{}, "XYZ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testRates.Total(tt.expenses, tt.target)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTotal_EURScenario(t *testing.T) {
	got := testRates.Total(expenses(100.0, "THB", 10.0, "EUR"), "EUR")
	assert.InDelta(t, 12.685, got, 0.001)
}

func TestTotal_NoRounding(t *testing.T) {
	got := testRates.Total(expenses(1.0, "THB"), "USD")
	assert.InDelta(t, 0.029, got, 1e-12)
}

func TestPackageTotal_UsesDefaultRates(t *testing.T) {
	got := currency.Total(expenses(100.0, "MYR"), "USD")
	assert.InDelta(t, 22.0, got, 1e-9)
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 1.08, testRates.Convert(1, "EUR", "USD"), 1e-12)
	assert.InDelta(t, 1.0, testRates.Convert(1.08, "USD", "EUR"), 1e-12)
	assert.InDelta(t, 7.0, testRates.Convert(7, "XYZ", "ABC"), 1e-12)
}

func TestRate_And_Known(t *testing.T) {
	assert.True(t, testRates.Known("THB"))
	assert.False(t, testRates.Known("XYZ"))
	assert.Equal(t, 1.0, testRates.Rate("XYZ"))
	assert.Equal(t, 0.029, testRates.Rate("THB"))
}

// TestCodesAreCaseInsensitive checks that Symbol, Known and Rate agree on a
// lower-case or padded code.
func TestCodesAreCaseInsensitive(t *testing.T) {
	for _, code := range []string{"thb", "Thb", " THB "} {
		t.Run(code, func(t *testing.T) {
			assert.Equal(t, "฿", currency.Symbol(code))
			assert.True(t, testRates.Known(code))
			assert.Equal(t, 0.029, testRates.Rate(code))
		})
	}
	assert.InDelta(t, 13.7, testRates.Total(expenses(100.0, "thb", 10.0, "eur"), "usd"), 1e-9)
}

func TestTotalByCategory(t *testing.T) {
	in := []domain.Expense{
		{Amount: 100, Currency: "THB", Category: domain.ExpenseFood},
		{Amount: 10, Currency: "EUR", Category: domain.ExpenseTransport},
		{Amount: 200, Currency: "THB", Category: domain.ExpenseFood},
		{Amount: 5, Currency: "USD", Category: "souvenirs"},
	}

	got := testRates.TotalByCategory(in, "USD")

	if assert.Len(t, got, 3) {
		assert.Equal(t, domain.ExpenseFood, got[0].Category)
		assert.InDelta(t, 8.7, got[0].Amount, 1e-9)
		assert.Equal(t, domain.ExpenseTransport, got[1].Category)
		assert.InDelta(t, 10.8, got[1].Amount, 1e-9)
		assert.Equal(t, domain.ExpenseOther, got[2].Category)
		assert.InDelta(t, 5.0, got[2].Amount, 1e-9)
	}
}

func TestTotalByCategory_Empty(t *testing.T) {
	got := testRates.TotalByCategory(nil, "USD")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "฿", currency.Symbol("THB"))
	assert.Equal(t, "€", currency.Symbol("eur"))
	assert.Equal(t, "XYZ", currency.Symbol("XYZ"))
}
