package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories accepted by add",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.cfg.Categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Any category is accepted.")
				return nil
			}
			for _, c := range a.cfg.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
