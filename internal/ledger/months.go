package ledger

import (
	"slices"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Entry is a transaction together with its position in the full ledger,
// which is the index Delete expects.
type Entry struct {
	Index       int
	Transaction model.Transaction
}

// AvailableMonths returns the distinct months present in snapshot, ascending.
func AvailableMonths(snapshot []model.Transaction) []model.Month {
	seen := make(map[model.Month]struct{})
	var months []model.Month
	for _, txn := range snapshot {
		m := txn.Month()
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	slices.SortFunc(months, model.Month.Compare)
	return months
}

// FilterByMonth returns the transactions dated within month, in ledger order.
func FilterByMonth(snapshot []model.Transaction, month model.Month) []model.Transaction {
	var out []model.Transaction
	for _, txn := range snapshot {
		if month.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out
}

// IndexedByMonth is FilterByMonth keeping each transaction's ledger index.
func IndexedByMonth(snapshot []model.Transaction, month model.Month) []Entry {
	var out []Entry
	for i, txn := range snapshot {
		if month.Contains(txn.Date) {
			out = append(out, Entry{Index: i, Transaction: txn})
		}
	}
	return out
}

// Indexed wraps every transaction of snapshot with its ledger index.
func Indexed(snapshot []model.Transaction) []Entry {
	out := make([]Entry, len(snapshot))
	for i, txn := range snapshot {
		out[i] = Entry{Index: i, Transaction: txn}
	}
	return out
}
