package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test_abc")
	t.Setenv("PAYSTACK_HTTP_TIMEOUT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_abc", cfg.SecretKey)
	assert.Equal(t, "https://api.paystack.co", cfg.PaymentURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisFullAddr())
	assert.Equal(t, "sk_test_abc", cfg.PaystackConfig().SecretKey)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PAYSTACK_PAYMENT_URL", "http://localhost:9999")
	t.Setenv("SESSION_TTL", "5")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("LOG_COMPRESS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.PaystackConfig().BaseURL)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.False(t, cfg.LogCompress)
}
