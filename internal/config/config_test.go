package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Currency = "EUR"
	cfg.Budget.Monthly = decimal.RequireFromString("1250.5")
	cfg.Budget.ProgressMode = "clamped"
	cfg.Categories = []string{"Rent", "Food", "Travel"}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.File, got.Ledger.File)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "1250.5", got.Budget.Monthly.String())
	assert.Equal(t, "clamped", got.Budget.ProgressMode)
	assert.Equal(t, []string{"Rent", "Food", "Travel"}, got.Categories)
	assert.Equal(t, cfg.Log.Level, got.Log.Level)
	assert.Equal(t, cfg.Log.Pretty, got.Log.Pretty)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "transactions.csv", cfg.Ledger.File)
	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.Budget.Monthly.IsZero())
	assert.Equal(t, "literal", cfg.Budget.ProgressMode)
	assert.Equal(t, []string{"Rent", "Food", "Others"}, cfg.Categories)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	want := Default()
	assert.True(t, want.Budget.Monthly.Equal(cfg.Budget.Monthly))
	want.Budget.Monthly = cfg.Budget.Monthly
	assert.Equal(t, want, cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("currency: GBP\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.Equal(t, "transactions.csv", cfg.Ledger.File)
	assert.Equal(t, "literal", cfg.Budget.ProgressMode)
	assert.Equal(t, []string{"Rent", "Food", "Others"}, cfg.Categories)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINTRACK_BUDGET_MONTHLY", "900")
	t.Setenv("FINTRACK_BUDGET_PROGRESS_MODE", "clamped")
	t.Setenv("FINTRACK_CURRENCY", "JPY")

	cfg, err := Load("../../testdata/fintrack.yaml")
	require.NoError(t, err)
	assert.Equal(t, "900", cfg.Budget.Monthly.String())
	assert.Equal(t, "clamped", cfg.Budget.ProgressMode)
	assert.Equal(t, "JPY", cfg.Currency)
	assert.Equal(t, "transactions.csv", cfg.Ledger.File, "untouched keys come from the file")
}

func TestLoadTestdata(t *testing.T) {
	cfg, err := Load("../../testdata/fintrack.yaml")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "1000", cfg.Budget.Monthly.String())
	assert.Equal(t, []string{"Rent", "Food", "Salary", "Others"}, cfg.Categories)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Currency = "XXXX"
	cfg.Budget.Monthly = decimal.NewFromInt(-1)
	cfg.Budget.ProgressMode = "sometimes"
	cfg.Log.Level = "chatty"
	cfg.Ledger.File = " "

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"unknown currency", "budget.monthly", "budget.progress_mode", "log level", "ledger.file"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLedgerPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("books", "transactions.csv"), cfg.LedgerPath(filepath.Join("books", FileName)))

	abs := filepath.Join(t.TempDir(), "ledger.csv")
	cfg.Ledger.File = abs
	assert.Equal(t, abs, cfg.LedgerPath(FileName))
}

func TestHasCategory(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.HasCategory("Food"))
	assert.False(t, cfg.HasCategory("Travel"))

	cfg.Categories = nil
	assert.True(t, cfg.HasCategory("Travel"), "empty list accepts anything")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "file: transactions.csv")
	assert.Contains(t, contents, "currency: USD")
	assert.Contains(t, contents, "monthly: 0\n")
	assert.Contains(t, contents, "progress_mode: literal")
	assert.Contains(t, contents, "- Food")
}

func TestLoad_DecimalBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Default()
	cfg.Budget.Monthly = decimal.RequireFromString("1234.56")
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "monthly: 1234.56\n", "written unquoted")

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Budget.Monthly.Equal(decimal.RequireFromString("1234.56")), "got %s", got.Budget.Monthly)

	t.Setenv("FINTRACK_BUDGET_MONTHLY", "0.10")
	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.1", got.Budget.Monthly.String())
}

func TestLoad_BadBudget(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("budget:\n  monthly: lots\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding config")
}

