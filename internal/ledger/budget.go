package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProgressMode selects how the budget ratio is clamped for display.
type ProgressMode string

const (
	// ProgressLiteral maps any positive ratio to a full bar and anything
	// else to an empty one, so 1 cent spent against a large budget already
	// shows as fully consumed. Known defect; ProgressClamped is the fix.
	ProgressLiteral ProgressMode = "literal"
	// ProgressClamped clamps the ratio into [0, 1].
	ProgressClamped ProgressMode = "clamped"
)

// ParseProgressMode accepts "literal" or "clamped".
func ParseProgressMode(s string) (ProgressMode, error) {
	switch m := ProgressMode(s); m {
	case ProgressLiteral, ProgressClamped:
		return m, nil
	default:
		return "", fmt.Errorf("unknown progress mode %q (want %q or %q)", s, ProgressLiteral, ProgressClamped)
	}
}

// BudgetProgress returns the display value of expense/budget in [0, 1].
// ok is false when budget <= 0: there is no progress to show and callers
// should present an informational prompt instead of a bar.
func BudgetProgress(expense, budget decimal.Decimal, mode ProgressMode) (progress decimal.Decimal, ok bool) {
	if !budget.IsPositive() {
		return decimal.Zero, false
	}
	ratio := expense.Div(budget)

	if mode == ProgressClamped {
		switch {
		case !ratio.IsPositive():
			return decimal.Zero, true
		case ratio.GreaterThan(decimal.NewFromInt(1)):
			return decimal.NewFromInt(1), true
		default:
			return ratio, true
		}
	}

	if ratio.IsPositive() {
		return decimal.NewFromInt(1), true
	}
	return decimal.Zero, true
}

// RemainingBudget is budget minus expense; negative when over budget.
func RemainingBudget(budget, expense decimal.Decimal) decimal.Decimal {
	return budget.Sub(expense)
}
