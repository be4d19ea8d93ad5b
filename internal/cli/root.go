// Package cli implements the roomledger operator commands.
//
//	roomledger
//	├── report   print the settlement as markdown
//	├── export   write records and settlement to an xlsx workbook
//	└── import   load a YAML dataset into the store
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/roomledger/internal/config"
	"github.com/mmynk/roomledger/internal/storage/sqlite"
	"github.com/mmynk/roomledger/pkg/logging"
)

type options struct {
	cfg     *config.Config
	dbPath  string
	verbose bool
}

// NewRootCommand builds the command tree. Output goes to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{cfg: config.Load()}

	root := &cobra.Command{
		Use:           "roomledger",
		Short:         "Shared household ledger: who owes whom",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := opts.cfg.LogLevel
			if opts.verbose {
				level = "debug"
			}
			logging.Configure(level, opts.cfg.LogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.dbPath, "db", opts.cfg.DBPath, "Path to the SQLite database")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newReportCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)
	return root
}

func (o *options) openStore() (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(o.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", o.dbPath, err)
	}
	return store, nil
}
