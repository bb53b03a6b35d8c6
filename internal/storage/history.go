package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

// AppendValidation stores a ledger result at the end of the chain.
func (s *SQLiteStorage) AppendValidation(ctx context.Context, result model.ValidationResult) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateResult(result); err != nil {
		return err
	}

	findings := result.Findings
	if findings == nil {
		findings = []model.Finding{}
	}
	encoded, err := json.Marshal(findings)
	if err != nil {
		return fmt.Errorf("failed to encode findings: %w", err)
	}

	var previous sql.NullString
	if result.PreviousHash != nil {
		previous = sql.NullString{String: *result.PreviousHash, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO validation_history
			(document_id, hash, previous_hash, region, score, is_valid,
			 blocking_issues, corrections_made, findings, validated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.DocumentID, result.Hash, previous, string(result.Region), result.Score, result.IsValid,
		result.BlockingIssues, result.CorrectionsMade, string(encoded), result.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("failed to append validation: %w", err)
	}
	return nil
}

// LastValidationHash returns the hash at the head of the chain, or
// common.ErrNotFound when nothing has been recorded.
func (s *SQLiteStorage) LastValidationHash(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT hash FROM validation_history ORDER BY seq DESC LIMIT 1
	`).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last validation hash: %w", err)
	}
	return hash, nil
}

// RecentValidations returns up to limit of the newest results, oldest first.
func (s *SQLiteStorage) RecentValidations(ctx context.Context, limit int) ([]model.ValidationResult, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT document_id, hash, previous_hash, region, score, is_valid,
		       blocking_issues, corrections_made, findings, validated_at
		FROM validation_history
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []model.ValidationResult
	for rows.Next() {
		var (
			r        model.ValidationResult
			previous sql.NullString
			region   string
			findings string
		)
		if err := rows.Scan(&r.DocumentID, &r.Hash, &previous, &region, &r.Score, &r.IsValid,
			&r.BlockingIssues, &r.CorrectionsMade, &findings, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan validation: %w", err)
		}
		if previous.Valid {
			h := previous.String
			r.PreviousHash = &h
		}
		r.Region = model.Region(region)
		if err := json.Unmarshal([]byte(findings), &r.Findings); err != nil {
			return nil, fmt.Errorf("failed to decode findings for %s: %w", r.DocumentID, err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating validation history: %w", err)
	}

	slices.Reverse(results)
	return results, nil
}
