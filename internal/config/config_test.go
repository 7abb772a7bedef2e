package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/budget")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("PASSWORD_SALT", "salt")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "budgetd", cfg.JWTIssuer)
	assert.Equal(t, "budgetd", cfg.JWTAudience)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("PASSWORD_SALT", "salt")

	_, err := Load(context.Background())
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/budget")
	t.Setenv("JWT_SIGNING_KEY", "secret")
	t.Setenv("PASSWORD_SALT", "salt")
	t.Setenv("ADDR", ":9999")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
