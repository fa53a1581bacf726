package config

import (
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_API_URL", "http://store.local")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GO_ENV", "dev")
}

// Test: 必須だけ設定したときの既定値
func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.StoreAPITimeout)
	assert.Equal(t, int64(50000), cfg.Pricing.Fee(model.ShippingExpress))
	assert.Equal(t, int64(30000), cfg.Pricing.Fee(model.ShippingStandard))
	assert.Equal(t, int64(15000), cfg.Pricing.Fee(model.ShippingEconomy))
	assert.Equal(t, int64(0), cfg.Pricing.Fee(model.ShippingFree))
}

// Test: 必須が欠けたらエラー
func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_API_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_API_URL")
}

// Test: 配送料の上書き
func TestLoadShippingOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("SHIPPING_FEE_STANDARD", "42000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42000), cfg.Pricing.Fee(model.ShippingStandard))
}

// Test: 不正な配送料はエラー
func TestLoadShippingOverrideInvalid(t *testing.T) {
	setRequired(t)
	t.Setenv("SHIPPING_FEE_ECONOMY", "-1")

	_, err := Load()
	assert.ErrorContains(t, err, "SHIPPING_FEE_ECONOMY")
}

// Test: タイムアウトの上書き
func TestLoadTimeoutOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_API_TIMEOUT_MS", "2500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2500*time.Millisecond, cfg.StoreAPITimeout)
}
