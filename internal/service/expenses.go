package service

import (
	"context"

	"github.com/pkordes/trip-journal/internal/domain"
)

// NewExpense carries the caller-supplied fields of an expense.
// The caller must have checked that Amount is positive.
type NewExpense struct {
	Amount      float64
	Currency    string
	Category    domain.ExpenseCategory
	Description string
}

// AddExpense appends an expense to day's list and returns it with its id and
// timestamp assigned.
func (s *JournalService) AddExpense(ctx context.Context, trip domain.TripID, day int, in NewExpense) domain.Expense {
	e := domain.Expense{
		ID:          s.newID(),
		Amount:      in.Amount,
		Currency:    in.Currency,
		Category:    in.Category,
		Description: in.Description,
		CreatedAt:   s.data.NowMillis(),
	}

	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		d.Expenses[day] = domain.DayExpenses{Expenses: append(d.DayExpenses(day), e)}
		return d
	})
	s.metrics.Mutation(opAddExpense)
	return e
}

// DeleteExpense removes the expense with id from day's list.
// Unknown days and ids are ignored.
func (s *JournalService) DeleteExpense(ctx context.Context, trip domain.TripID, day int, id string) {
	s.data.Update(ctx, trip, func(d domain.UserTripData) domain.UserTripData {
		cur, ok := d.Expenses[day]
		if !ok {
			return d
		}
		d.Expenses[day] = domain.DayExpenses{Expenses: without(cur.Expenses, func(e domain.Expense) bool { return e.ID == id })}
		return d
	})
	s.metrics.Mutation(opDeleteExpense)
}

// without returns the elements of list for which match is false, in order.
// The result is never nil.
func without[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
