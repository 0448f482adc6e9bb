package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func newAddCommand(a *app) *cobra.Command {
	var typ, amount, category, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Example: `  fintrack add --type Expense --amount 45.50 --category Food
  fintrack add --type Income --amount 1500 --category Salary --date 2024-01-05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := a.parseTransaction(typ, amount, category, date)
			if err != nil {
				return err
			}

			idx, err := a.openStore().Add(txn)
			if err != nil {
				return fmt.Errorf("adding transaction: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transaction added (#%d)\n", idx)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Income or Expense (required)")
	_ = cmd.MarkFlagRequired("type")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount, e.g. 45.50 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVarP(&category, "category", "c", "Others", "category")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date as YYYY-MM-DD (default today)")

	return cmd
}

// parseTransaction turns raw flag values into a Transaction. Range checks on
// the amount are left to the store.
func (a *app) parseTransaction(typ, amount, category, date string) (model.Transaction, error) {
	t, err := parseTypeFlag(typ)
	if err != nil {
		return model.Transaction{}, err
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}

	if err := a.checkCategory(category); err != nil {
		return model.Transaction{}, err
	}

	day := model.Day(time.Now())
	if date != "" {
		day, err = time.Parse("2006-01-02", date)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing date %q: %w", date, err)
		}
	}

	return model.Transaction{Type: t, Amount: amt, Category: category, Date: day}, nil
}

func parseTypeFlag(s string) (model.Type, error) {
	for _, t := range []model.Type{model.TypeIncome, model.TypeExpense} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return model.ParseType(s)
}
