package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Summary is everything shown for one month.
type Summary struct {
	Month        model.Month
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Savings      decimal.Decimal
	SavingsRate  decimal.Decimal
	Budget       decimal.Decimal
	HasBudget    bool // false when Budget <= 0; Remaining and Progress are then zero
	Remaining    decimal.Decimal
	Progress     decimal.Decimal
	Breakdown    []CategoryShare
	Transactions []Entry
}

// Summarize computes the monthly view of snapshot.
func Summarize(snapshot []model.Transaction, month model.Month, budget decimal.Decimal, mode ProgressMode) Summary {
	filtered := FilterByMonth(snapshot, month)
	income, expense := Totals(filtered)
	savings := Savings(income, expense)

	s := Summary{
		Month:        month,
		Income:       income,
		Expense:      expense,
		Savings:      savings,
		SavingsRate:  SavingsRate(savings, income),
		Budget:       budget,
		Breakdown:    SortedBreakdown(CategoryBreakdown(filtered)),
		Transactions: IndexedByMonth(snapshot, month),
	}

	if progress, ok := BudgetProgress(expense, budget, mode); ok {
		s.HasBudget = true
		s.Progress = progress
		s.Remaining = RemainingBudget(budget, expense)
	}
	return s
}
