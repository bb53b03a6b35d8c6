package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/aduana/internal/model"
)

// LoadMemory returns every stored correction, most recently seen first.
func (s *SQLiteStorage) LoadMemory(ctx context.Context) ([]model.MemoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pattern, document_type, correction, corrected_by, occurrences, last_seen
		FROM memory_entries
		ORDER BY last_seen DESC, pattern ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.MemoryEntry
	for rows.Next() {
		var e model.MemoryEntry
		var docType string
		if err := rows.Scan(&e.Pattern, &docType, &e.Correction, &e.CorrectedBy, &e.Occurrences, &e.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan memory entry: %w", err)
		}
		e.DocumentType = model.DocumentType(docType)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memory entries: %w", err)
	}

	return entries, nil
}

// SaveMemory replaces the stored corrections with entries.
func (s *SQLiteStorage) SaveMemory(ctx context.Context, entries []model.MemoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for _, e := range entries {
		if err := validateMemoryEntry(e); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM memory_entries`); err != nil {
		return fmt.Errorf("failed to clear memory entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO memory_entries
			(pattern, document_type, correction, corrected_by, occurrences, last_seen)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare memory insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx,
			e.Pattern, string(e.DocumentType), e.Correction, e.CorrectedBy, e.Occurrences, e.LastSeen.UTC(),
		); err != nil {
			return fmt.Errorf("failed to save memory entry %q: %w", e.Pattern, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit memory entries: %w", err)
	}
	return nil
}
