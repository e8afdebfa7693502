package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "VS", cfg.OrderRefPrefix)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Webpay.HTTPTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, "booking.confirmations", cfg.Kafka.Topic)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "integration")
	t.Setenv("DEBUG", "true")
	t.Setenv("ORDER_REF_PREFIX", "VC")
	t.Setenv("WEBPAY_COMMERCE_CODE", "597012345678")
	t.Setenv("WEBPAY_HTTP_TIMEOUT", "10s")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "integration", cfg.Env)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "VC", cfg.OrderRefPrefix)
	assert.Equal(t, "597012345678", cfg.Webpay.CommerceCode)
	assert.Equal(t, 10*time.Second, cfg.Webpay.HTTPTimeout)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "59****5532", maskValue("597055555532"))
}

func TestFindEnvMissing(t *testing.T) {
	_, err := FindEnv("definitely-not-a-real-file.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
