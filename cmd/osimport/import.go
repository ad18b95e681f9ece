package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/onestep/osimport/internal/ioconfig"
	"github.com/onestep/osimport/internal/iodb"
	"github.com/onestep/osimport/internal/ioflows"
	"github.com/onestep/osimport/internal/ioimport"
	"github.com/onestep/osimport/pkg/config"
	"github.com/onestep/osimport/pkg/logger"
	"github.com/onestep/osimport/pkg/report"
	"github.com/spf13/cobra"
)

// getImportCmd returns the import command.
func getImportCmd() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import <flow> <file>",
		Short: "Run an import flow over a delimited file",
		Long: `Import records from a delimited file into the database.

The flow names the column contract and the persistence rules for the
file. Builtin flows are 'research_groups' and 'sponsors'; flows.yaml in
the config directory can rename columns per institution or define new
flows.

Every row runs in its own transaction. Failed rows are reported with
their line numbers and roll back completely; the rest of the file is
unaffected. Re-importing a file is safe: existing records are skipped,
only missing relationships attach.

Use --dry-run to validate and resolve every row without committing
anything.

Examples:
  osimport import research_groups groups.csv
  osimport import research_groups groups.csv --dry-run
  osimport import sponsors partners.csv --encoding latin-1 --delimiter ";"`,
		Args: cobra.ExactArgs(2),
		RunE: runImport,
	}

	importCmd.Flags().String("host", "", "PostgreSQL host")
	importCmd.Flags().Int("port", 0, "PostgreSQL port")
	importCmd.Flags().String("user", "", "PostgreSQL user")
	importCmd.Flags().String("password", "", "PostgreSQL password")
	importCmd.Flags().String("database", "", "database name")
	importCmd.Flags().String("encoding", "",
		"input encoding (utf-8/latin-1/windows-1252)")
	importCmd.Flags().String("delimiter", "", `field delimiter ("," or ";")`)
	importCmd.Flags().Bool("dry-run", false,
		"process every row but commit nothing")
	importCmd.Flags().String("log-level", "",
		"log level (debug/info/warn/error)")

	return importCmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := ioconfig.BindFlags(cmd, getConfig())
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	slog.SetDefault(logger.New(&cfg.Log))

	flowName, path := args[0], args[1]
	cfg.Update([]config.Option{config.OptImportFlow(flowName)})

	flowsPath, err := ioconfig.GetDefaultFlowsPath()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	flow, err := ioflows.Get(flowsPath, flowName)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	input, err := os.Open(path)
	if err != nil {
		err = ioimport.FileError(path, err)
		gn.PrintErrorMessage(err)
		return err
	}
	defer input.Close()

	gdb, err := iodb.OpenGorm(&cfg.Database)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)
	gn.Info("Importing <em>%s</em> with flow <em>%s</em>", path, flow.Name)
	if cfg.Import.DryRun {
		gn.Info("Dry run: rows are processed, nothing is committed")
	}

	// Ctrl-C stops the run between rows; the row in flight finishes.
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	imp := ioimport.New(cfg, gdb)
	rep, err := imp.Run(ctx, input, flow)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printSummary(rep)
	return nil
}

func printSummary(rep *report.Report) {
	s := rep.Summary()
	gn.Info(`
Import summary:
  Total rows: %s
  Succeeded:  %s
  Skipped:    %s
  Failed:     %s`,
		humanize.Comma(int64(s.Total)),
		humanize.Comma(int64(s.Succeeded)),
		humanize.Comma(int64(s.Skipped)),
		humanize.Comma(int64(s.Failed)),
	)

	errs := rep.Errors()
	if len(errs) == 0 {
		return
	}
	gn.Warn("\nFailed rows:")
	for _, e := range errs {
		gn.Warn(fmt.Sprintf("  row %d: %s", e.Row, e.Message))
	}
}
