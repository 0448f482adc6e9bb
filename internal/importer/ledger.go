package importer

import (
	"io"

	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/store"
)

// LedgerParser reads fintrack's own CSV format, such as a file produced by
// export.
type LedgerParser struct{}

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "fintrack" }

// Parse reads a ledger CSV.
func (p *LedgerParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return store.ReadTransactions(r)
}
