package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction as money coming in or going out.
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseType converts the literal "Income" or "Expense" to a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
	return t, nil
}

const (
	// MaxAmountDigits bounds the integer part of an amount.
	MaxAmountDigits = 15
	// MaxAmountScale bounds the fraction digits of an amount.
	MaxAmountScale = 8
)

// MaxAmount is the largest amount a transaction may carry.
var MaxAmount = decimal.New(1, MaxAmountDigits).Sub(decimal.New(1, -MaxAmountScale))

// Transaction is a single row in the ledger file.
type Transaction struct {
	Type     Type
	Amount   decimal.Decimal // never negative
	Category string          // free-form; the fixed choice list lives in config
	Date     time.Time       // UTC midnight
}

// Month returns the calendar month the transaction falls in.
func (t Transaction) Month() Month {
	return MonthOf(t.Date)
}

// Equal reports whether two transactions hold the same values.
// Amounts compare numerically, so "4" equals "4.00".
func (t Transaction) Equal(o Transaction) bool {
	return t.Type == o.Type &&
		t.Amount.Equal(o.Amount) &&
		t.Category == o.Category &&
		t.Date.Equal(o.Date)
}

// Validate checks the invariants every stored transaction must satisfy.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return &FieldError{Field: "type", Description: fmt.Sprintf("must be %s or %s, got %q", TypeIncome, TypeExpense, t.Type)}
	}
	if t.Amount.IsNegative() {
		return &FieldError{Field: "amount", Description: fmt.Sprintf("must not be negative, got %s", t.Amount)}
	}
	// Bound the exponent before comparing; Cmp rescales both operands.
	if t.Amount.Exponent() < -MaxAmountScale {
		return &FieldError{Field: "amount", Description: fmt.Sprintf("must have at most %d decimal places", MaxAmountScale)}
	}
	if t.Amount.Exponent() >= MaxAmountDigits || t.Amount.GreaterThan(MaxAmount) {
		return &FieldError{Field: "amount", Description: fmt.Sprintf("must not exceed %s", MaxAmount)}
	}
	if t.Date.IsZero() {
		return &FieldError{Field: "date", Description: "is required"}
	}
	return nil
}

// FieldError describes an invalid transaction field.
type FieldError struct {
	Field       string
	Description string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Description)
}

// Date builds a calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates t to its calendar date in UTC, keeping t's wall-clock day.
func Day(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}
