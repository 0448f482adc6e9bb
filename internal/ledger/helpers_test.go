package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func date(y, m, d int) time.Time {
	return model.Date(y, time.Month(m), d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func month(s string) model.Month {
	m, err := model.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

func income(amount string, d time.Time) model.Transaction {
	return model.Transaction{Type: model.TypeIncome, Amount: dec(amount), Category: "Salary", Date: d}
}

func expense(amount, category string, d time.Time) model.Transaction {
	return model.Transaction{Type: model.TypeExpense, Amount: dec(amount), Category: category, Date: d}
}

// scenario is the three-transaction ledger used across the engine tests.
func scenario() []model.Transaction {
	return []model.Transaction{
		income("1000", date(2024, 1, 1)),
		expense("200", "Food", date(2024, 1, 2)),
		expense("50", "Rent", date(2024, 2, 1)),
	}
}
