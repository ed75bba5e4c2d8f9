//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9090"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
auth:
  jwt_secret: "0123456789abcdef0123"
  token_ttl: 2h
  access_code_secret: "fedcba9876543210fedc"
  access_code_window: 30s
  access_code_digits: 8
store:
  tax_rate: 0.1
  shipping_cents: 250
  free_shipping_threshold_cents: 10000
game:
  market_tick: 1s
  offline_cap: 1h
  seed: 42
  max_clicks_per_request: 50
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 30*time.Second, cfg.Auth.AccessCodeWindow)
	assert.Equal(t, 8, cfg.Auth.AccessCodeDigits)
	assert.InDelta(t, 0.1, cfg.Store.TaxRate, 1e-9)
	assert.Equal(t, int64(250), cfg.Store.ShippingCents)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, 50, cfg.Game.MaxClicksPerRequest)

	// untouched sections keep their defaults
	assert.Equal(t, HousePaymentProvider, cfg.Payments.Provider)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "yates-rest-api", cfg.Logger.Service)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("YATES_PORT", "7070")
	t.Setenv("YATES_STORE_SHIPPING_CENTS", "0")

	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, int64(0), cfg.Store.ShippingCents)
}

func TestInitializeRestConfig_MissingSecrets(t *testing.T) {
	_, err := InitializeRestConfig(writeConfig(t, "port: \"8080\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWTSecret")
}

func TestInitializeRestConfig_OmiseRequiresKeys(t *testing.T) {
	content := testConfigYAML + `
payments:
  provider: omise
  currency: thb
`
	_, err := InitializeRestConfig(writeConfig(t, content))
	require.Error(t, err)
}

func TestInitializeRestConfig_GameDurations(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		field string
	}{
		{"negative market tick", "YATES_GAME_MARKET_TICK", "-1s", "MarketTick"},
		{"zero market tick", "YATES_GAME_MARKET_TICK", "0s", "MarketTick"},
		{"negative offline cap", "YATES_GAME_OFFLINE_CAP", "-1h", "OfflineCap"},
		{"sub-minute offline cap", "YATES_GAME_OFFLINE_CAP", "30s", "OfflineCap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
