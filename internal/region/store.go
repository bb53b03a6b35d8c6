// Package region holds the per-jurisdiction tax rates, fiscal-ID formats and legal citations.
package region

import (
	"fmt"
	"sort"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

// Override replaces selected rates of a region's default profile.
type Override struct {
	VATRate       *float64
	InsuranceRate *float64
	SystemFee     *float64
}

// Store is a read-only table of regional tax configurations.
type Store struct {
	configs map[model.Region]model.RegionalTaxConfig
}

// NewStore returns a store loaded with the built-in regional table.
func NewStore() *Store {
	configs := make(map[model.Region]model.RegionalTaxConfig, len(defaultConfigs))
	for _, cfg := range defaultConfigs {
		configs[cfg.Region] = cloneConfig(cfg)
	}
	return &Store{configs: configs}
}

// WithOverrides returns a new store with the given rate overrides applied.
// The receiver is left untouched.
func (s *Store) WithOverrides(overrides map[model.Region]Override) (*Store, error) {
	next := &Store{configs: make(map[model.Region]model.RegionalTaxConfig, len(s.configs))}
	for code, cfg := range s.configs {
		next.configs[code] = cloneConfig(cfg)
	}

	for code, o := range overrides {
		cfg, ok := next.configs[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownRegion, code)
		}
		if o.VATRate != nil {
			if *o.VATRate < 0 || *o.VATRate >= 1 {
				return nil, fmt.Errorf("%w: vat rate %v for %s", common.ErrInvalidConfig, *o.VATRate, code)
			}
			cfg.VATRate = *o.VATRate
		}
		if o.InsuranceRate != nil {
			if *o.InsuranceRate < 0 || *o.InsuranceRate >= 1 {
				return nil, fmt.Errorf("%w: insurance rate %v for %s", common.ErrInvalidConfig, *o.InsuranceRate, code)
			}
			cfg.InsuranceRate = *o.InsuranceRate
		}
		if o.SystemFee != nil {
			if *o.SystemFee < 0 {
				return nil, fmt.Errorf("%w: system fee %v for %s", common.ErrInvalidConfig, *o.SystemFee, code)
			}
			cfg.SystemFee = *o.SystemFee
		}
		next.configs[code] = cfg
	}

	return next, nil
}

// Get returns the configuration of a region.
func (s *Store) Get(code model.Region) (model.RegionalTaxConfig, error) {
	cfg, ok := s.configs[code]
	if !ok {
		return model.RegionalTaxConfig{}, fmt.Errorf("%w: %q", common.ErrUnknownRegion, code)
	}
	return cloneConfig(cfg), nil
}

// MustGet is Get for callers that already validated the region code.
func (s *Store) MustGet(code model.Region) model.RegionalTaxConfig {
	cfg, err := s.Get(code)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Regions lists the configured region codes in ascending order.
func (s *Store) Regions() []model.Region {
	out := make([]model.Region, 0, len(s.configs))
	for code := range s.configs {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func cloneConfig(cfg model.RegionalTaxConfig) model.RegionalTaxConfig {
	formats := make([]model.FiscalIDFormat, len(cfg.FiscalIDFormats))
	copy(formats, cfg.FiscalIDFormats)
	cfg.FiscalIDFormats = formats
	return cfg
}
