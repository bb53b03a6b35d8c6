package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/Veraticus/aduana/internal/region"
)

// Viper keys.
const (
	KeyDefaultRegion       = "region.default"
	KeyDatabasePath        = "database.path"
	KeyConfidenceDivisor   = "classifier.confidence_divisor"
	KeyDeMinimis           = "thresholds.de_minimis"
	KeyBroker              = "thresholds.broker"
	KeyTolerance           = "finance.tolerance"
	KeyHistoryCap          = "ledger.history_cap"
	KeyMemoryCap           = "memory.cap"
	KeyPrecedentDSN        = "precedents.dsn"
	KeyPrecedentTimeout    = "precedents.timeout"
	KeyPrecedentAttempts   = "precedents.retry.max_attempts"
	KeyPrecedentDelay      = "precedents.retry.initial_delay"
	KeyPrecedentSeedFile   = "precedents.seed_file"
	keyRegionOverrides     = "regions"
	defaultDatabaseRelPath = "~/.local/share/aduana/aduana.db"
)

// EngineConfig is the resolved runtime configuration of the compliance engine.
type EngineConfig struct {
	Overrides         map[model.Region]region.Override
	DefaultRegion     model.Region
	DatabasePath      string
	PrecedentDSN      string
	PrecedentSeedFile string
	Thresholds        region.Thresholds
	ConfidenceDivisor float64
	Tolerance         float64
	PrecedentTimeout  time.Duration
	RetryDelay        time.Duration
	HistoryCap        int
	MemoryCap         int
	RetryAttempts     int
}

// SetDefaults registers the default value of every engine key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDefaultRegion, string(model.RegionPanama))
	v.SetDefault(KeyDatabasePath, defaultDatabaseRelPath)
	v.SetDefault(KeyConfidenceDivisor, 20.0)
	v.SetDefault(KeyDeMinimis, region.DefaultDeMinimis)
	v.SetDefault(KeyBroker, region.DefaultBrokerThreshold)
	v.SetDefault(KeyTolerance, 0.02)
	v.SetDefault(KeyHistoryCap, 200)
	v.SetDefault(KeyMemoryCap, 500)
	v.SetDefault(KeyPrecedentTimeout, 3*time.Second)
	v.SetDefault(KeyPrecedentAttempts, 2)
	v.SetDefault(KeyPrecedentDelay, 200*time.Millisecond)
}

// LoadEngineConfig reads the engine configuration from the global viper instance.
func LoadEngineConfig() (*EngineConfig, error) {
	return LoadEngineConfigFrom(viper.GetViper())
}

// LoadEngineConfigFrom reads and validates the engine configuration from v.
// Keys that were never set fall back to their defaults.
func LoadEngineConfigFrom(v *viper.Viper) (*EngineConfig, error) {
	SetDefaults(v)

	cfg := &EngineConfig{
		DefaultRegion:     model.Region(strings.ToUpper(strings.TrimSpace(v.GetString(KeyDefaultRegion)))),
		DatabasePath:      ExpandPath(v.GetString(KeyDatabasePath)),
		ConfidenceDivisor: v.GetFloat64(KeyConfidenceDivisor),
		Thresholds: region.Thresholds{
			DeMinimis: v.GetFloat64(KeyDeMinimis),
			Broker:    v.GetFloat64(KeyBroker),
		},
		Tolerance:        v.GetFloat64(KeyTolerance),
		HistoryCap:       v.GetInt(KeyHistoryCap),
		MemoryCap:        v.GetInt(KeyMemoryCap),
		PrecedentDSN:     v.GetString(KeyPrecedentDSN),
		PrecedentTimeout: v.GetDuration(KeyPrecedentTimeout),
		RetryAttempts:    v.GetInt(KeyPrecedentAttempts),
		RetryDelay:       v.GetDuration(KeyPrecedentDelay),
	}
	if seed := v.GetString(KeyPrecedentSeedFile); seed != "" {
		cfg.PrecedentSeedFile = ExpandPath(seed)
	}

	overrides, err := loadOverrides(v)
	if err != nil {
		return nil, err
	}
	cfg.Overrides = overrides

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c *EngineConfig) Validate() error {
	switch {
	case !c.DefaultRegion.Valid():
		return fmt.Errorf("%w: %s %q", common.ErrUnknownRegion, KeyDefaultRegion, c.DefaultRegion)
	case c.DatabasePath == "":
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyDatabasePath)
	case c.ConfidenceDivisor <= 0:
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyConfidenceDivisor)
	case c.Thresholds.DeMinimis < 0 || c.Thresholds.Broker <= c.Thresholds.DeMinimis:
		return fmt.Errorf("%w: thresholds must satisfy 0 <= de_minimis < broker", common.ErrInvalidConfig)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyTolerance)
	case c.HistoryCap <= 0:
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyHistoryCap)
	case c.MemoryCap <= 0:
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyMemoryCap)
	case c.PrecedentTimeout <= 0:
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyPrecedentTimeout)
	case c.RetryAttempts < 1:
		return fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyPrecedentAttempts)
	}
	return nil
}

// RegionStore builds the regional table with the configured overrides applied.
func (c *EngineConfig) RegionStore() (*region.Store, error) {
	return region.NewStore().WithOverrides(c.Overrides)
}

// DatabaseDir returns the directory holding the SQLite database.
func (c *EngineConfig) DatabaseDir() string {
	return filepath.Dir(c.DatabasePath)
}

func loadOverrides(v *viper.Viper) (map[model.Region]region.Override, error) {
	raw := v.GetStringMap(keyRegionOverrides)
	if len(raw) == 0 {
		return nil, nil
	}

	overrides := make(map[model.Region]region.Override, len(raw))
	for key := range raw {
		code := model.Region(strings.ToUpper(key))
		if !code.Valid() {
			return nil, fmt.Errorf("%w: %s.%s", common.ErrUnknownRegion, keyRegionOverrides, key)
		}
		prefix := keyRegionOverrides + "." + key + "."
		var o region.Override
		if v.IsSet(prefix + "vat_rate") {
			o.VATRate = ptr(v.GetFloat64(prefix + "vat_rate"))
		}
		if v.IsSet(prefix + "insurance_rate") {
			o.InsuranceRate = ptr(v.GetFloat64(prefix + "insurance_rate"))
		}
		if v.IsSet(prefix + "system_fee") {
			o.SystemFee = ptr(v.GetFloat64(prefix + "system_fee"))
		}
		overrides[code] = o
	}
	return overrides, nil
}

func ptr(f float64) *float64 { return &f }
