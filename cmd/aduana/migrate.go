package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures the local database has the tables for learned
corrections, precedents and the validation history.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbPath := cfg.DatabasePath

	slog.Info("Starting database migration",
		"database", dbPath,
		"status_only", status)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if status {
		current, err := store.SchemaVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintln(out, cli.FormatTitle("Database Migration Status"))
		fmt.Fprintf(out, "Database: %s\nCurrent version: %d\nLatest version: %d\n",
			dbPath, current, storage.ExpectedSchemaVersion)
		if current < storage.ExpectedSchemaVersion {
			fmt.Fprintln(out, cli.FormatWarning("Migrations pending, run: aduana migrate"))
		}
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("Database migrations completed successfully!"))
	return nil
}
