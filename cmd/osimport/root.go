package main

import (
	"fmt"
	"log/slog"

	"github.com/onestep/osimport/internal/ioconfig"
	"github.com/onestep/osimport/pkg/config"
	"github.com/onestep/osimport/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "osimport",
		Short: "osimport bulk-imports institutional records",
		Long: `osimport imports institutional records from delimited files into the
records platform PostgreSQL database.

An import run streams the file row by row. Each row is validated,
its referenced entities (campus, knowledge area, people, sponsor) are
resolved or created, and the row is persisted in its own transaction.
A failed row is reported and rolled back without touching the rest of
the file.

Commands:
  - create:  Create the database schema from scratch
  - migrate: Bring an existing schema up to date
  - import:  Run an import flow over a file
  - flows:   List the known import flows

Configuration precedence (highest to lowest):
  1. CLI flags (--host, --port, etc.)
  2. Environment variables (OSIMPORT_*)
  3. Config file (config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → OSIMPORT_DATABASE_HOST).

  Examples:
    OSIMPORT_DATABASE_HOST          PostgreSQL host
    OSIMPORT_DATABASE_PORT          PostgreSQL port
    OSIMPORT_DATABASE_USER          PostgreSQL user
    OSIMPORT_DATABASE_PASSWORD      PostgreSQL password
    OSIMPORT_DATABASE_DATABASE      Database name
    OSIMPORT_IMPORT_ENCODING        Input encoding (utf-8/latin-1/windows-1252)
    OSIMPORT_IMPORT_DELIMITER       Field delimiter ("," or ";")
    OSIMPORT_LOG_LEVEL              Log level (debug/info/warn/error)

  See 'go doc github.com/onestep/osimport/pkg/config' for complete list.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}

				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			slog.SetDefault(logger.New(&cfg.Log))

			switch result.Source {
			case "file":
				fmt.Printf("Using config from: %s\n", result.SourcePath)
			case "defaults+env":
				fmt.Println("Using built-in defaults with environment variable overrides")
			case "defaults":
				fmt.Println("Using built-in defaults (no config file)")
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/osimport/config.yaml)")

	rootCmd.Flags().BoolP("version", "V", false, "version for osimport")

	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getFlowsCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}
