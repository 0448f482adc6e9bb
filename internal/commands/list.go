package commands

import (
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/model"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newListCommand(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions with their delete index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := a.openStore().Snapshot()

			title := "All Transactions"
			entries := ledger.Indexed(snap)
			if month != "" {
				m, err := model.ParseMonth(month)
				if err != nil {
					return err
				}
				title = "Transactions for " + m.String()
				entries = ledger.IndexedByMonth(snap, m)
			}

			return report.Render(cmd.OutOrStdout(), report.TransactionsMarkdown(title, entries, a.cfg.Currency), a.plain)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "only show this month (YYYY-MM)")
	return cmd
}
