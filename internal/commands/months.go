package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/ledger"
	"github.com/fintrack-dev/fintrack/internal/report"
)

func newMonthsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that have transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			months := ledger.AvailableMonths(a.openStore().Snapshot())
			_, err := io.WriteString(cmd.OutOrStdout(), report.MonthList(months))
			return err
		},
	}
}
