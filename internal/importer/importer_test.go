package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func parseChaseFixture(t *testing.T) []model.Transaction {
	t.Helper()
	data, err := os.ReadFile("../../testdata/chase_checking.csv")
	require.NoError(t, err)

	p := &ChaseParser{Category: "Others"}
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	return txns
}

func TestChaseParser_Parse(t *testing.T) {
	txns := parseChaseFixture(t)
	assert.Len(t, txns, 6)

	// First: GITHUB subscription
	assert.Equal(t, model.TypeExpense, txns[0].Type)
	assert.Equal(t, "4.00", txns[0].Amount.StringFixed(2))
	assert.Equal(t, "Others", txns[0].Category)
	assert.Equal(t, model.Date(2025, 1, 3), txns[0].Date)

	// Fourth: ACME income (positive)
	assert.Equal(t, model.TypeIncome, txns[3].Type)
	assert.Equal(t, "3500.00", txns[3].Amount.StringFixed(2))

	for _, txn := range txns {
		assert.NoError(t, txn.Validate())
	}
}

func TestChaseParser_DateParsing(t *testing.T) {
	txns := parseChaseFixture(t)

	// Jan 22
	last := txns[5]
	assert.Equal(t, model.Date(2025, 1, 22), last.Date)
}

func TestChaseParser_AmountsAreNeverNegative(t *testing.T) {
	for _, txn := range parseChaseFixture(t) {
		assert.False(t, txn.Amount.IsNegative())
	}
}

func TestChaseParser_ZeroAmountIsIncome(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nCREDIT,01/03/2025,adjustment,0.00,ADJUST,100.00,\n"
	p := &ChaseParser{Category: "Others"}
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeIncome, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(decimal.Zero))
}

func TestChaseParser_EmptyFile(t *testing.T) {
	p := &ChaseParser{}
	txns, err := p.Parse(strings.NewReader("Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestChaseParser_BadDate(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,NOTADATE,desc,-4.00,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestChaseParser_BadAmount(t *testing.T) {
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\nDEBIT,01/03/2025,desc,NOTANUMBER,ACH_DEBIT,100.00,\n"
	p := &ChaseParser{}
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestLedgerParser_Parse(t *testing.T) {
	f, err := os.Open("../../testdata/transactions.csv")
	require.NoError(t, err)
	defer f.Close()

	txns, err := (&LedgerParser{}).Parse(f)
	require.NoError(t, err)
	assert.Len(t, txns, 8)
}

func TestLedgerParser_RejectsWrongHeader(t *testing.T) {
	_, err := (&LedgerParser{}).Parse(strings.NewReader("date,amount,type,category\n"))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	txns, err := ParseFile(&ChaseParser{Category: "Food"}, "../../testdata/chase_checking.csv")
	require.NoError(t, err)
	assert.Len(t, txns, 6)

	_, err = ParseFile(&LedgerParser{}, "../../testdata/chase_checking.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "as fintrack")
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.NotNil(t, r.Get("Chase"))
	assert.NotNil(t, r.Get("CHASE"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&ChaseParser{})
	assert.Panics(t, func() { r.Register(&ChaseParser{}) })
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry("Others")
	assert.Equal(t, []string{"chase", "fintrack"}, r.Formats())

	chase, ok := r.Get("chase").(*ChaseParser)
	require.True(t, ok)
	assert.Equal(t, "Others", chase.Category)
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(importDir, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "bank.csv", files[0].Name)
	assert.Equal(t, int64(4), files[0].Size)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	processedDir := filepath.Join(dir, "import", "processed")
	require.NoError(t, os.MkdirAll(processedDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processedDir, "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_EmptyDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "bank.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	_, err := os.Stat(filepath.Join(importDir, "bank.csv"))
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(filepath.Join(dir, "import", "processed", "bank.csv"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
