package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/report"
)

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the transaction at an index shown by list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing index %q: %w", args[0], err)
			}

			removed, err := a.openStore().Delete(idx)
			if err != nil {
				return fmt.Errorf("deleting transaction: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d: %s %s %s %s\n",
				idx,
				removed.Date.Format("2006-01-02"),
				removed.Type,
				removed.Category,
				report.FormatMoney(removed.Amount, a.cfg.Currency))
			return nil
		},
	}
}
