package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Totals sums amounts by type. An empty input yields (0, 0).
func Totals(filtered []model.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, txn := range filtered {
		switch txn.Type {
		case model.TypeIncome:
			income = income.Add(txn.Amount)
		case model.TypeExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return income, expense
}

// Savings is income minus expense; negative when spending exceeds income.
func Savings(income, expense decimal.Decimal) decimal.Decimal {
	return income.Sub(expense)
}

// SavingsRate is savings as a percentage of income, or 0 when there is no income.
func SavingsRate(savings, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return savings.Div(income).Mul(hundred)
}
