package region

import (
	"errors"
	"regexp"
	"testing"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	store := NewStore()

	tests := []struct {
		region    model.Region
		vatName   string
		vatRate   float64
		systemFee float64
	}{
		{model.RegionPanama, "ITBMS", 0.07, 3.00},
		{model.RegionCostaRica, "IVA", 0.13, 0},
		{model.RegionGuatemala, "IVA", 0.12, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			cfg, err := store.Get(tt.region)
			require.NoError(t, err)
			assert.Equal(t, tt.vatName, cfg.VATName)
			assert.InDelta(t, tt.vatRate, cfg.VATRate, 1e-9)
			assert.InDelta(t, 0.015, cfg.InsuranceRate, 1e-9)
			assert.InDelta(t, tt.systemFee, cfg.SystemFee, 1e-9)
			assert.NotEmpty(t, cfg.CustomsAuthority)
			assert.NotEmpty(t, cfg.FiscalIDFormats)
		})
	}

	_, err := store.Get("MX")
	assert.True(t, errors.Is(err, common.ErrUnknownRegion))
}

func TestStore_FiscalFormatExamplesMatchTheirPatterns(t *testing.T) {
	store := NewStore()
	for _, code := range store.Regions() {
		cfg := store.MustGet(code)
		for _, f := range cfg.FiscalIDFormats {
			re := regexp.MustCompile(f.Pattern)
			assert.True(t, re.MatchString(f.Example), "%s %s example %q", code, f.Name, f.Example)
		}
	}
}

func TestStore_WithOverrides(t *testing.T) {
	base := NewStore()
	rate := 0.10
	fee := 5.0

	next, err := base.WithOverrides(map[model.Region]Override{
		model.RegionPanama: {VATRate: &rate, SystemFee: &fee},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.10, next.MustGet(model.RegionPanama).VATRate, 1e-9)
	assert.InDelta(t, 5.0, next.MustGet(model.RegionPanama).SystemFee, 1e-9)
	assert.InDelta(t, 0.07, base.MustGet(model.RegionPanama).VATRate, 1e-9, "base store must not change")

	bad := 1.5
	_, err = base.WithOverrides(map[model.Region]Override{model.RegionGuatemala: {VATRate: &bad}})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)

	_, err = base.WithOverrides(map[model.Region]Override{"HN": {VATRate: &rate}})
	assert.ErrorIs(t, err, common.ErrUnknownRegion)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore()
	cfg := store.MustGet(model.RegionPanama)
	cfg.FiscalIDFormats[0].Pattern = "changed"

	assert.NotEqual(t, "changed", store.MustGet(model.RegionPanama).FiscalIDFormats[0].Pattern)
}

func TestThresholds_Bracket(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name       string
		want       model.ValueBracket
		value      float64
		isDocument bool
	}{
		{"document ignores value", model.BracketA, 5000, true},
		{"below de minimis", model.BracketB, 40, false},
		{"at de minimis", model.BracketB, 100, false},
		{"between thresholds", model.BracketC, 1999.99, false},
		{"at broker threshold", model.BracketD, 2000, false},
		{"above broker threshold", model.BracketD, 12000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, th.Bracket(tt.value, tt.isDocument))
		})
	}

	assert.True(t, th.RequiresBroker(2000))
	assert.False(t, th.RequiresBroker(1999))
}
