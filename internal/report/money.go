// Package report turns ledger views into markdown and renders it for the
// terminal.
package report

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney formats an amount with the currency's symbol, separators and
// minor-unit precision, e.g. "$1,500.00".
func FormatMoney(amount decimal.Decimal, currency string) string {
	// money.New never returns a nil currency, even for unknown codes.
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return amount.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPercent formats a 0..100 value with two decimals, e.g. "80.00%".
func FormatPercent(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

// ProgressBar draws progress (0..1) as a fixed-width text bar.
func ProgressBar(progress decimal.Decimal, width int) string {
	filled := int(progress.Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
