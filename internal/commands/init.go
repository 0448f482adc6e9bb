package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/store"
)

func newInitCommand() *cobra.Command {
	var currency, budget string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a config file and an empty ledger",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			monthly, err := decimal.NewFromString(budget)
			if err != nil {
				return fmt.Errorf("parsing budget %q: %w", budget, err)
			}

			cfg := config.Default()
			cfg.Currency = currency
			cfg.Budget.Monthly = monthly
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := runInit(absDir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fintrack ledger at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", config.Default().Currency, "ISO 4217 currency code")
	cmd.Flags().StringVar(&budget, "budget", "0", "monthly expense budget (0 = none)")

	return cmd
}

func runInit(dir string, cfg *config.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Keep an existing ledger; only create the file when absent.
	ledgerPath := cfg.LedgerPath(cfgPath)
	if _, err := os.Stat(ledgerPath); errors.Is(err, fs.ErrNotExist) {
		if err := store.New(ledgerPath, zerolog.Nop()).Persist(); err != nil {
			return fmt.Errorf("creating ledger: %w", err)
		}
	}

	// Write .gitignore.
	gitignore := "*.corrupt*\nexports/\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	return nil
}
