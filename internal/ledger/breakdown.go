package ledger

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// CategoryBreakdown sums Expense amounts per category. Income is ignored.
// The map is empty when there are no expenses.
func CategoryBreakdown(filtered []model.Transaction) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, txn := range filtered {
		if txn.Type != model.TypeExpense {
			continue
		}
		out[txn.Category] = out[txn.Category].Add(txn.Amount)
	}
	return out
}

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal // share of total expenses, 0..100
}

// SortedBreakdown orders a breakdown by amount, largest first, then by
// category name, and attaches each category's share of the total.
func SortedBreakdown(breakdown map[string]decimal.Decimal) []CategoryShare {
	total := decimal.Zero
	for _, amt := range breakdown {
		total = total.Add(amt)
	}

	shares := make([]CategoryShare, 0, len(breakdown))
	for cat, amt := range breakdown {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amt.Div(total).Mul(hundred)
		}
		shares = append(shares, CategoryShare{Category: cat, Amount: amt, Percent: pct})
	}

	slices.SortFunc(shares, func(a, b CategoryShare) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Category, b.Category)
	})
	return shares
}
