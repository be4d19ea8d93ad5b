package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomledger/internal/dataset"
)

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Load roommates, expenses and purchases from a YAML dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := dataset.Load(args[0])
			if err != nil {
				return err
			}

			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			sum, err := dataset.Import(cmd.Context(), store, ds)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported %d roommates, %d expenses, %d purchases (%d mirrored), %d fixed costs\n",
				sum.Roommates, sum.Expenses, sum.Purchases, sum.Mirrors, sum.FixedCosts)
			return nil
		},
	}
}
