package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/aduana/internal/classification"
	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/config"
	"github.com/Veraticus/aduana/internal/engine"
	"github.com/Veraticus/aduana/internal/extract"
	"github.com/Veraticus/aduana/internal/finance"
	"github.com/Veraticus/aduana/internal/ledger"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/pattern"
	"github.com/Veraticus/aduana/internal/precedent"
	"github.com/Veraticus/aduana/internal/precedent/pgstore"
	"github.com/Veraticus/aduana/internal/region"
	"github.com/Veraticus/aduana/internal/service"
	"github.com/Veraticus/aduana/internal/storage"
)

// app is a fully wired engine together with the stores it owns.
type app struct {
	cfg     *config.EngineConfig
	regions *region.Store
	store   *storage.SQLiteStorage
	remote  *pgstore.Store
	engine  *engine.Engine
}

// loadConfig reads the engine configuration from viper.
func loadConfig() (*config.EngineConfig, error) {
	cfg, err := config.LoadEngineConfig()
	if err != nil {
		return nil, common.NewUserError("invalid configuration", err)
	}
	return cfg, nil
}

// regionFlag returns the --region flag, or fallback when it is unset.
func regionFlag(cmd *cobra.Command, fallback model.Region) (model.Region, error) {
	raw, _ := cmd.Flags().GetString("region")
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return fallback, nil
	}
	r := model.Region(raw)
	if !r.Valid() {
		return "", common.NewUserError(fmt.Sprintf("unknown region %q, expected PA, CR or GT", raw), common.ErrUnknownRegion)
	}
	return r, nil
}

// openStorage opens the SQLite database and brings its schema up to date.
func openStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newApp wires every component from cfg and restores persisted state.
func newApp(ctx context.Context, cfg *config.EngineConfig) (*app, error) {
	logger := slog.Default()

	regions, err := cfg.RegionStore()
	if err != nil {
		return nil, common.NewUserError("invalid regional overrides", err)
	}

	store, err := openStorage(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, regions: regions, store: store}

	prec, err := a.precedentEngine(ctx, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	memory := extract.NewMemory(extract.WithMemoryStore(store), extract.WithMemoryCap(cfg.MemoryCap))
	extractor, err := extract.NewExtractor(extract.WithMemory(memory), extract.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	detector, err := classification.NewDocumentDetector(classification.DefaultIdentifiers(),
		classification.WithDefaultRegion(cfg.DefaultRegion),
		classification.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create document detector: %w", err)
	}

	validator, err := finance.NewValidator(regions, finance.WithTolerance(cfg.Tolerance), finance.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create financial validator: %w", err)
	}

	products, err := pattern.NewProductClassifier(
		pattern.WithThresholds(cfg.Thresholds),
		pattern.WithConfidenceDivisor(cfg.ConfidenceDivisor),
		pattern.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create product classifier: %w", err)
	}

	a.engine, err = engine.New(regions,
		engine.WithDetector(detector),
		engine.WithExtractor(extractor),
		engine.WithFinance(validator),
		engine.WithProductClassifier(products),
		engine.WithPrecedents(prec),
		engine.WithLedger(ledger.New(
			ledger.WithHistoryStore(store),
			ledger.WithHistoryCap(cfg.HistoryCap),
			ledger.WithLogger(logger))),
		engine.WithThresholds(cfg.Thresholds),
		engine.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.engine.Restore(ctx); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// precedentEngine builds the precedent engine. The remote PostgreSQL store
// is preferred when configured; otherwise the local SQLite table is used.
func (a *app) precedentEngine(ctx context.Context, logger *slog.Logger) (*precedent.Engine, error) {
	var source service.PrecedentSource = a.store
	if a.cfg.PrecedentDSN != "" {
		remote, err := pgstore.Open(ctx, pgstore.DefaultConfig(a.cfg.PrecedentDSN), logger)
		if err != nil {
			logger.Warn("Remote precedent store unavailable, using local precedents", "error", err)
		} else {
			a.remote = remote
			source = remote
		}
	}

	prec := precedent.NewEngine(
		precedent.WithSource(source),
		precedent.WithRetry(service.RetryOptions{
			MaxAttempts:    a.cfg.RetryAttempts,
			InitialDelay:   a.cfg.RetryDelay,
			MaxDelay:       5 * a.cfg.RetryDelay,
			AttemptTimeout: a.cfg.PrecedentTimeout,
			Multiplier:     2,
		}),
		precedent.WithLogger(logger))

	if a.cfg.PrecedentSeedFile != "" {
		seeds, err := precedent.LoadSeedFile(a.cfg.PrecedentSeedFile)
		if err != nil {
			return nil, common.NewUserError("could not load precedent seed file", err)
		}
		prec.AddSeeds(seeds...)
		logger.Info("Loaded precedent seeds", "file", a.cfg.PrecedentSeedFile, "count", len(seeds))
	}

	return prec, nil
}

// Close releases the remote pool and the database.
func (a *app) Close() {
	if a.remote != nil {
		a.remote.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}
}
