package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/importer"
)

func newImportCommand(a *app) *cobra.Command {
	var format, category string

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Append transactions from CSV files",
		Long: `Append transactions from CSV files. Without arguments, every CSV in the
import/ directory next to the ledger is imported and then moved to
import/processed/. Each file is all-or-nothing, and every row's category
must be one of the configured categories.`,
		Example: `  fintrack import backup.csv
  fintrack import --format chase --category Food statement.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := importer.DefaultRegistry(category)
			p := reg.Get(format)
			if p == nil {
				return fmt.Errorf("unknown format %q (choose from %s)", format, strings.Join(reg.Formats(), ", "))
			}
			// Only bank formats take their category from the flag.
			if _, ok := p.(*importer.ChaseParser); ok {
				if err := a.checkCategory(category); err != nil {
					return err
				}
			}

			s := a.openStore()
			log := a.log.With().Str("format", p.Format()).Logger()

			paths := args
			scanned := len(args) == 0
			root := filepath.Dir(s.Path())
			if scanned {
				files, err := importer.Scan(root)
				if err != nil {
					return err
				}
				for _, f := range files {
					paths = append(paths, f.Path)
				}
				if len(paths) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Nothing to import in %s\n", filepath.Join(root, importer.Dir))
					return nil
				}
			}

			for _, path := range paths {
				txns, err := importer.ParseFile(p, path)
				if err != nil {
					return err
				}
				for i, txn := range txns {
					if err := a.checkCategory(txn.Category); err != nil {
						return fmt.Errorf("importing %s: transaction %d: %w", path, i, err)
					}
				}
				if _, err := s.AddAll(txns); err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				n := len(txns)
				if scanned {
					if err := importer.MarkProcessed(root, filepath.Base(path)); err != nil {
						return err
					}
				}
				log.Debug().Str("file", path).Int("count", n).Msg("file imported")
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, filepath.Base(path))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "fintrack", "input format: fintrack or chase")
	cmd.Flags().StringVarP(&category, "category", "c", "Others", "category for bank rows")
	return cmd
}
