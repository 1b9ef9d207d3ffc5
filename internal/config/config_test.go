package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 100, cfg.RateLimitRPS)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.NotEmpty(t, cfg.DatabaseURL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://prod/resenia")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://resenia.app")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "postgres://prod/resenia", cfg.DatabaseURL)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	assert.Equal(t, "https://resenia.app", cfg.AllowedOrigins)
}
