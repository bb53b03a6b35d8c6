// Package pgstore serves precedents from a shared PostgreSQL database.
package pgstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/service"
)

var _ service.PrecedentSource = (*Store)(nil)

const activeQuery = `
	SELECT ruling_id, region, authority, hs_code, keywords, rationale,
	       gri_rule, effective_date, expiration_date, active
	FROM precedents
	WHERE region = $1 AND active
	ORDER BY ruling_id`

// Config holds the pool settings for the precedent database.
type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// DefaultConfig returns conservative pool settings for dsn.
func DefaultConfig(dsn string) Config {
	return Config{
		DSN:             dsn,
		MaxConns:        4,
		MinConns:        0,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}
}

// querier is the subset of pgxpool.Pool the store needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Store reads active precedents from PostgreSQL. Every failure is
// reported as common.ErrLookupUnavailable so callers can fall back.
type Store struct {
	db     querier
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Open connects a pool and verifies it with a ping.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	logger = common.LoggerOrDefault(logger)
	if cfg.DSN == "" {
		return nil, fmt.Errorf("%w: precedent DSN is empty", common.ErrMissingConfig)
	}

	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "aduana"

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLookupUnavailable, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %w", common.ErrLookupUnavailable, err)
	}

	logger.Info("connected to precedent database")
	return &Store{db: pool, pool: pool, logger: logger}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ActivePrecedents returns the active rulings stored for region.
func (s *Store) ActivePrecedents(ctx context.Context, region model.Region) ([]model.Precedent, error) {
	rows, err := s.db.Query(ctx, activeQuery, string(region))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLookupUnavailable, err)
	}
	defer rows.Close()

	var out []model.Precedent
	for rows.Next() {
		p, err := scanPrecedent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrLookupUnavailable, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrLookupUnavailable, err)
	}

	s.logger.Debug("remote precedents loaded", "region", region, "count", len(out))
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrecedent(row rowScanner) (model.Precedent, error) {
	var (
		p          model.Precedent
		region     string
		authority  *string
		rationale  *string
		gri        *string
		effective  *time.Time
		expiration *time.Time
	)
	if err := row.Scan(&p.RulingID, &region, &authority, &p.HSCode, &p.Keywords,
		&rationale, &gri, &effective, &expiration, &p.Active); err != nil {
		return model.Precedent{}, fmt.Errorf("scan precedent: %w", err)
	}

	p.ID = p.RulingID
	p.Region = model.Region(region)
	p.Authority = deref(authority)
	p.Rationale = deref(rationale)
	p.GRIRule = model.GRIRule(deref(gri))
	if effective != nil {
		p.EffectiveDate = *effective
	}
	p.ExpirationDate = expiration
	return p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
