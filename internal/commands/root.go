package commands

import (
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Personal income and expense ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "path to the config file")
	flags.StringVar(&a.ledgerPath, "ledger", "", "ledger CSV file (overrides ledger.file from config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.plain, "plain", false, "print raw markdown instead of styled output")

	rootCmd.AddCommand(
		newInitCommand(),
		newAddCommand(a),
		newDeleteCommand(a),
		newListCommand(a),
		newMonthsCommand(a),
		newSummaryCommand(a),
		newBreakdownCommand(a),
		newExportCommand(a),
		newImportCommand(a),
		newCategoriesCommand(a),
	)

	return rootCmd
}
