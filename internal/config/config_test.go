package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_PORT", "5000")
	t.Setenv("DB_USER", "booking")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "booking")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("QUEUE_ENABLED", "yes")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("AMQP_URL", "amqp://broker:5672/")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "error.log", cfg.LogFile)
	assert.Equal(t, "logs", cfg.EventLogDir)
	assert.True(t, cfg.QueueEnabled)
	assert.Equal(t, "amqp://broker:5672/", cfg.AMQPURL)
	assert.False(t, cfg.AdminGuardEnabled())
}

func TestAdminGuardEnabled(t *testing.T) {
	assert.False(t, Config{AdminUser: "admin"}.AdminGuardEnabled())
	assert.False(t, Config{AdminPasswordHash: "$2a$10$x"}.AdminGuardEnabled())
	assert.True(t, Config{AdminUser: "admin", AdminPasswordHash: "$2a$10$x"}.AdminGuardEnabled())
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "bogus")

	cfg := LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
	assert.Equal(t, time.Second, cfg.TTL)
	assert.Equal(t, "pages", cfg.Prefix)
	assert.Equal(t, 1048576, cfg.MaxBodyBytes)
}

func TestLoadRateLimitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadRateLimitConfig()
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 30, cfg.Capacity)
		assert.Equal(t, "ip_route", cfg.KeyStrategy)
		assert.Equal(t, 10*time.Minute, cfg.TTL)
	})

	t.Run("burst and refill every override", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("RATE_LIMIT_REFILL_EVERY", "1m")
		t.Setenv("RATE_LIMIT_TTL", "1s")

		cfg := LoadRateLimitConfig()
		assert.Equal(t, 5, cfg.Capacity)
		assert.Equal(t, 1, cfg.RefillTokens)
		assert.Equal(t, time.Minute, cfg.RefillInterval)
		assert.Equal(t, 5*time.Minute, cfg.TTL, "ttl is raised to five refill intervals")
	})
}

func TestLoadRedisConfig(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")

	cfg := LoadRedisConfig()
	assert.Equal(t, "cache:6380", cfg.Addr)
	assert.Equal(t, 2, cfg.DB)
	assert.True(t, cfg.TLS)

	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	assert.Equal(t, "redis:6379", LoadRedisConfig().Addr)
}
