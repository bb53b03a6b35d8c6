package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

func TestLoadEngineConfigFrom_Defaults(t *testing.T) {
	v := viper.New()
	cfg, err := LoadEngineConfigFrom(v)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, model.RegionPanama, cfg.DefaultRegion)
	assert.Equal(t, filepath.Join(home, ".local", "share", "aduana", "aduana.db"), cfg.DatabasePath)
	assert.InDelta(t, 20.0, cfg.ConfidenceDivisor, 1e-9)
	assert.InDelta(t, 100.0, cfg.Thresholds.DeMinimis, 1e-9)
	assert.InDelta(t, 2000.0, cfg.Thresholds.Broker, 1e-9)
	assert.InDelta(t, 0.02, cfg.Tolerance, 1e-9)
	assert.Equal(t, 200, cfg.HistoryCap)
	assert.Equal(t, 500, cfg.MemoryCap)
	assert.Equal(t, 3*time.Second, cfg.PrecedentTimeout)
	assert.Equal(t, 2, cfg.RetryAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.RetryDelay)
	assert.Empty(t, cfg.PrecedentDSN)
	assert.Empty(t, cfg.PrecedentSeedFile)
	assert.Nil(t, cfg.Overrides)
}

func TestLoadEngineConfigFrom_YAML(t *testing.T) {
	const doc = `
region:
  default: cr
database:
  path: /tmp/aduana-test.db
classifier:
  confidence_divisor: 25
finance:
  tolerance: 0.05
precedents:
  dsn: postgres://localhost/aduana
  timeout: 5s
  seed_file: /etc/aduana/seeds.yaml
regions:
  PA:
    vat_rate: 0.10
  gt:
    system_fee: 1.5
`
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(doc)))

	cfg, err := LoadEngineConfigFrom(v)
	require.NoError(t, err)

	assert.Equal(t, model.RegionCostaRica, cfg.DefaultRegion)
	assert.Equal(t, "/tmp/aduana-test.db", cfg.DatabasePath)
	assert.InDelta(t, 25.0, cfg.ConfidenceDivisor, 1e-9)
	assert.InDelta(t, 0.05, cfg.Tolerance, 1e-9)
	assert.Equal(t, "postgres://localhost/aduana", cfg.PrecedentDSN)
	assert.Equal(t, 5*time.Second, cfg.PrecedentTimeout)
	assert.Equal(t, "/etc/aduana/seeds.yaml", cfg.PrecedentSeedFile)

	require.Len(t, cfg.Overrides, 2)
	pa := cfg.Overrides[model.RegionPanama]
	require.NotNil(t, pa.VATRate)
	assert.InDelta(t, 0.10, *pa.VATRate, 1e-9)
	assert.Nil(t, pa.SystemFee)
	gt := cfg.Overrides[model.RegionGuatemala]
	require.NotNil(t, gt.SystemFee)
	assert.InDelta(t, 1.5, *gt.SystemFee, 1e-9)

	store, err := cfg.RegionStore()
	require.NoError(t, err)
	assert.InDelta(t, 0.10, store.MustGet(model.RegionPanama).VATRate, 1e-9)
	assert.InDelta(t, 0.13, store.MustGet(model.RegionCostaRica).VATRate, 1e-9)
}

func TestLoadEngineConfigFrom_Invalid(t *testing.T) {
	tests := []struct {
		want  error
		name  string
		key   string
		value any
	}{
		{name: "unknown default region", key: KeyDefaultRegion, value: "MX", want: common.ErrUnknownRegion},
		{name: "zero divisor", key: KeyConfidenceDivisor, value: 0, want: common.ErrInvalidConfig},
		{name: "negative tolerance", key: KeyTolerance, value: -0.01, want: common.ErrInvalidConfig},
		{name: "broker below de minimis", key: KeyBroker, value: 50, want: common.ErrInvalidConfig},
		{name: "zero history cap", key: KeyHistoryCap, value: 0, want: common.ErrInvalidConfig},
		{name: "zero memory cap", key: KeyMemoryCap, value: 0, want: common.ErrInvalidConfig},
		{name: "zero timeout", key: KeyPrecedentTimeout, value: "0s", want: common.ErrInvalidConfig},
		{name: "zero attempts", key: KeyPrecedentAttempts, value: 0, want: common.ErrInvalidConfig},
		{name: "empty database path", key: KeyDatabasePath, value: "", want: common.ErrMissingConfig},
		{name: "override for unknown region", key: "regions.mx.vat_rate", value: 0.16, want: common.ErrUnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)
			_, err := LoadEngineConfigFrom(v)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegionStore_RejectsBadOverride(t *testing.T) {
	v := viper.New()
	v.Set("regions.pa.vat_rate", 1.5)
	cfg, err := LoadEngineConfigFrom(v)
	require.NoError(t, err)

	_, err = cfg.RegionStore()
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("ADUANA_TEST_DIR", "/srv/aduana")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/db/aduana.db", want: filepath.Join(home, "db", "aduana.db")},
		{name: "env var", in: "$ADUANA_TEST_DIR/aduana.db", want: "/srv/aduana/aduana.db"},
		{name: "absolute", in: "/var/lib/aduana.db", want: "/var/lib/aduana.db"},
		{name: "unclean", in: "/var/lib/../lib/aduana.db", want: "/var/lib/aduana.db"},
		{name: "in memory", in: ":memory:", want: ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
