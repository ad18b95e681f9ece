package main

import (
	"context"

	"github.com/gnames/gn"
	"github.com/onestep/osimport/internal/iodb"
	"github.com/onestep/osimport/internal/ioschema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate database schema to the latest version",
		Long: `Bring an existing records platform schema up to date.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Runs GORM AutoMigrate over all models

AutoMigrate adds missing tables, columns and indexes. It never drops
columns or tables, so migrating is safe on a populated database.

Examples:
  osimport migrate`,
		RunE: runMigrate,
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg := getConfig()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if !hasTables {
		gn.Warn(`Warning: Database appears to be empty.
Run 'osimport create' first to create the schema.`)
	}

	sm := ioschema.NewManager(op)

	gn.Info("Migrating schema to latest version...")
	if err := sm.Migrate(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Schema is now up to date.")
	return nil
}
