package commands

import (
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newBreakdownCommand(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show expenses grouped by category",
		Long:  "Show expenses grouped by category with each category's share. Covers every month unless --month is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns := a.openStore().Snapshot()

			title := "Expense by category"
			if month != "" {
				m, err := model.ParseMonth(month)
				if err != nil {
					return err
				}
				title += ", " + m.String()
				txns = ledger.FilterByMonth(txns, m)
			}

			shares := ledger.SortedBreakdown(ledger.CategoryBreakdown(txns))
			return report.Render(cmd.OutOrStdout(), report.BreakdownMarkdown(title, shares, a.cfg.Currency), a.plain)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only include this month (YYYY-MM)")
	return cmd
}
