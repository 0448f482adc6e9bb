package report

import (
	"fmt"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
)

const barWidth = 20

// SummaryMarkdown renders a monthly summary: metrics, budget, expense
// breakdown and the month's transactions.
func SummaryMarkdown(s ledger.Summary, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary for %s\n\n", s.Month)

	writeTable(&b, []string{"Total Income", "Total Expense", "Total Savings", "Savings Rate"}, [][]string{{
		FormatMoney(s.Income, currency),
		FormatMoney(s.Expense, currency),
		FormatMoney(s.Savings, currency),
		FormatPercent(s.SavingsRate),
	}})

	b.WriteString("## Monthly Budget\n\n")
	if s.HasBudget {
		fmt.Fprintf(&b, "Budget: %s\n\n", FormatMoney(s.Budget, currency))
		fmt.Fprintf(&b, "Remaining balance: %s\n\n", FormatMoney(s.Remaining, currency))
		fmt.Fprintf(&b, "`%s` %s\n\n", ProgressBar(s.Progress, barWidth), FormatPercent(s.Progress.Mul(hundred)))
	} else {
		b.WriteString("Set a monthly budget to see progress.\n\n")
	}

	b.WriteString("## Expense Breakdown\n\n")
	writeBreakdown(&b, s.Breakdown, currency)

	b.WriteString("## Transactions\n\n")
	writeEntries(&b, s.Transactions, currency)

	return b.String()
}

// BreakdownMarkdown renders category shares under the given title.
func BreakdownMarkdown(title string, shares []ledger.CategoryShare, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	writeBreakdown(&b, shares, currency)
	return b.String()
}

// TransactionsMarkdown renders ledger entries under the given title.
func TransactionsMarkdown(title string, entries []ledger.Entry, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	writeEntries(&b, entries, currency)
	return b.String()
}

func writeBreakdown(b *strings.Builder, shares []ledger.CategoryShare, currency string) {
	if len(shares) == 0 {
		b.WriteString("No expenses recorded.\n\n")
		return
	}
	rows := make([][]string, len(shares))
	for i, sh := range shares {
		rows[i] = []string{sh.Category, FormatMoney(sh.Amount, currency), sh.Percent.StringFixed(1) + "%"}
	}
	writeTable(b, []string{"Category", "Amount", "Share"}, rows)
}

func writeEntries(b *strings.Builder, entries []ledger.Entry, currency string) {
	if len(entries) == 0 {
		b.WriteString("No transactions.\n\n")
		return
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = entryRow(e, currency)
	}
	writeTable(b, []string{"#", "Date", "Type", "Category", "Amount"}, rows)
}

func entryRow(e ledger.Entry, currency string) []string {
	txn := e.Transaction
	return []string{
		fmt.Sprint(e.Index),
		txn.Date.Format("2006-01-02"),
		string(txn.Type),
		txn.Category,
		FormatMoney(txn.Amount, currency),
	}
}

func writeTable(b *strings.Builder, header []string, rows [][]string) {
	writeRow(b, header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(b, sep)
	for _, row := range rows {
		writeRow(b, row)
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	b.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
}

// MonthList renders available months as a bullet list.
func MonthList(months []model.Month) string {
	if len(months) == 0 {
		return "No transactions recorded yet.\n"
	}
	var b strings.Builder
	for _, m := range months {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	return b.String()
}
