package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomledger/internal/dates"
	"github.com/mmynk/roomledger/internal/report"
	"github.com/mmynk/roomledger/internal/service"
	"github.com/mmynk/roomledger/pkg/api"
)

func newReportCommand(opts *options) *cobra.Command {
	var (
		month string
		plain bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the settlement",
		Long: `Print who owes whom, with the breakdown of every payment.

Without --month the whole history is settled. With --month YYYY-MM only that
month's records are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != "" && dates.MonthKey(month) != month {
				return fmt.Errorf("invalid --month %q: expected YYYY-MM", month)
			}

			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := service.LoadRecords(cmd.Context(), store)
			if err != nil {
				return err
			}

			var settlement api.Settlement
			if month == "" {
				settlement = service.AllTime(records)
			} else {
				months := service.Monthly(records, month)
				if len(months) == 0 {
					return fmt.Errorf("no records for %s", month)
				}
				settlement = months[0]
			}

			md := report.Markdown(settlement, report.NewFormatter(opts.cfg.Currency))
			if !plain {
				md, err = report.Render(md, width)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Settle a single month (YYYY-MM)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown instead of styled output")
	cmd.Flags().IntVar(&width, "width", 100, "Wrap styled output at this width")
	return cmd
}
