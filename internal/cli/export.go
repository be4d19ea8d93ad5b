package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomledger/internal/report"
	"github.com/mmynk/roomledger/internal/service"
)

func newExportCommand(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write records and the settlement to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := service.LoadRecords(cmd.Context(), store)
			if err != nil {
				return err
			}
			if err := report.Export(out, records, service.AllTime(records)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses and %d purchases to %s\n",
				len(records.Expenses), len(records.Purchases), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "ledger.xlsx", "Output workbook path")
	return cmd
}
