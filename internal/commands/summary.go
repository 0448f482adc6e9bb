package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newSummaryCommand(a *app) *cobra.Command {
	var month, budget, mode string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show monthly totals, savings, budget progress and expense breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.openStore().Snapshot()
			months := ledger.AvailableMonths(snap)
			if len(months) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transactions recorded yet.")
				return nil
			}

			m := months[0]
			if month != "" {
				var err error
				if m, err = model.ParseMonth(month); err != nil {
					return err
				}
			}

			b := a.cfg.Budget.Monthly
			if cmd.Flags().Changed("budget") {
				var err error
				if b, err = decimal.NewFromString(budget); err != nil {
					return fmt.Errorf("parsing budget %q: %w", budget, err)
				}
			}

			if !cmd.Flags().Changed("progress-mode") {
				mode = a.cfg.Budget.ProgressMode
			}
			pm, err := ledger.ParseProgressMode(mode)
			if err != nil {
				return err
			}

			s := ledger.Summarize(snap, m, b, pm)
			a.log.Debug().
				Str("month", m.String()).
				Str("income", s.Income.String()).
				Str("expense", s.Expense.String()).
				Bool("has_budget", s.HasBudget).
				Msg("summary computed")

			return report.Render(cmd.OutOrStdout(), report.SummaryMarkdown(s, a.cfg.Currency), a.plain)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to summarize, YYYY-MM (default: first month with transactions)")
	cmd.Flags().StringVarP(&budget, "budget", "b", "", "monthly budget (overrides budget.monthly)")
	cmd.Flags().StringVar(&mode, "progress-mode", "", "budget bar mode: literal or clamped (overrides budget.progress_mode)")
	return cmd
}
