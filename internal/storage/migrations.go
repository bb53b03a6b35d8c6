package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS memory_entries (
					pattern TEXT NOT NULL,
					document_type TEXT NOT NULL DEFAULT '',
					correction TEXT NOT NULL,
					corrected_by TEXT NOT NULL DEFAULT '',
					occurrences INTEGER NOT NULL DEFAULT 0,
					last_seen DATETIME NOT NULL,
					PRIMARY KEY (pattern, document_type)
				)`,
				`CREATE TABLE IF NOT EXISTS precedents (
					ruling_id TEXT PRIMARY KEY,
					id TEXT NOT NULL,
					region TEXT NOT NULL,
					authority TEXT NOT NULL DEFAULT '',
					hs_code TEXT NOT NULL,
					keywords TEXT NOT NULL DEFAULT '[]',
					rationale TEXT NOT NULL DEFAULT '',
					gri_rule TEXT NOT NULL DEFAULT '',
					effective_date DATETIME,
					expiration_date DATETIME,
					active INTEGER NOT NULL DEFAULT 1
				)`,
				`CREATE INDEX idx_precedents_region_active ON precedents(region, active)`,
			)
		},
	},
	{
		Version:     2,
		Description: "Add validation history for the hash chain",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE TABLE IF NOT EXISTS validation_history (
					seq INTEGER PRIMARY KEY AUTOINCREMENT,
					document_id TEXT NOT NULL,
					hash TEXT NOT NULL,
					previous_hash TEXT,
					region TEXT NOT NULL DEFAULT '',
					score INTEGER NOT NULL,
					is_valid INTEGER NOT NULL,
					blocking_issues INTEGER NOT NULL DEFAULT 0,
					corrections_made INTEGER NOT NULL DEFAULT 0,
					findings TEXT NOT NULL DEFAULT '[]',
					validated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_validation_history_document ON validation_history(document_id)`,
			)
		},
	},
	{
		Version:     3,
		Description: "Index memory entries by recency for eviction",
		Up: func(tx *sql.Tx) error {
			return execAll(tx,
				`CREATE INDEX idx_memory_entries_last_seen ON memory_entries(last_seen)`,
			)
		},
	},
}

func execAll(tx *sql.Tx, queries ...string) error {
	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the database's current schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}
