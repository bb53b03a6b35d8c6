package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/aduana/internal/model"
)

const precedentColumns = `ruling_id, id, region, authority, hs_code, keywords, rationale,
	gri_rule, effective_date, expiration_date, active`

// ActivePrecedents returns the active rulings for a region. Validity dates
// are left to the caller.
func (s *SQLiteStorage) ActivePrecedents(ctx context.Context, region model.Region) ([]model.Precedent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(string(region), "region"); err != nil {
		return nil, err
	}

	return s.queryPrecedents(ctx, s.db, `
		SELECT `+precedentColumns+`
		FROM precedents
		WHERE region = ? AND active = 1
		ORDER BY ruling_id
	`, string(region))
}

// ListPrecedents returns every stored ruling, active or not.
func (s *SQLiteStorage) ListPrecedents(ctx context.Context) ([]model.Precedent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	return s.queryPrecedents(ctx, s.db, `
		SELECT `+precedentColumns+`
		FROM precedents
		ORDER BY region, ruling_id
	`)
}

// UpsertPrecedents inserts or replaces rulings keyed by ruling ID.
func (s *SQLiteStorage) UpsertPrecedents(ctx context.Context, precedents []model.Precedent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for _, p := range precedents {
		if err := validatePrecedent(p); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range precedents {
		keywords, err := json.Marshal(p.Keywords)
		if err != nil {
			return fmt.Errorf("failed to encode keywords for %s: %w", p.RulingID, err)
		}
		if p.Keywords == nil {
			keywords = []byte("[]")
		}

		id := p.ID
		if id == "" {
			id = p.RulingID
		}

		var effective, expiration sql.NullTime
		if !p.EffectiveDate.IsZero() {
			effective = sql.NullTime{Time: p.EffectiveDate.UTC(), Valid: true}
		}
		if p.ExpirationDate != nil {
			expiration = sql.NullTime{Time: p.ExpirationDate.UTC(), Valid: true}
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO precedents (`+precedentColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, p.RulingID, id, string(p.Region), p.Authority, p.HSCode, string(keywords), p.Rationale,
			string(p.GRIRule), effective, expiration, p.Active,
		); err != nil {
			return fmt.Errorf("failed to save precedent %s: %w", p.RulingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit precedents: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryPrecedents(ctx context.Context, q queryable, query string, args ...any) ([]model.Precedent, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query precedents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var precedents []model.Precedent
	for rows.Next() {
		var (
			p                     model.Precedent
			region, keywords, gri string
			effective, expiration sql.NullTime
		)
		if err := rows.Scan(&p.RulingID, &p.ID, &region, &p.Authority, &p.HSCode, &keywords,
			&p.Rationale, &gri, &effective, &expiration, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan precedent: %w", err)
		}
		if err := json.Unmarshal([]byte(keywords), &p.Keywords); err != nil {
			return nil, fmt.Errorf("failed to decode keywords for %s: %w", p.RulingID, err)
		}
		p.Region = model.Region(region)
		p.GRIRule = model.GRIRule(gri)
		if effective.Valid {
			p.EffectiveDate = effective.Time
		}
		if expiration.Valid {
			t := expiration.Time
			p.ExpirationDate = &t
		}
		precedents = append(precedents, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating precedents: %w", err)
	}

	return precedents, nil
}
