package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "painel_admin", cfg.Database.Name)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, 2, cfg.Database.MaxConnIdleMinutes)
	assert.Equal(t, 24, cfg.JWT.ExpirationHours)
	assert.Equal(t, "painel-admin", cfg.JWT.Issuer)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "panel")
	t.Setenv("DB_NAME", "panel_prod")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "panel", cfg.Database.User)
	assert.Equal(t, "panel_prod", cfg.Database.Name)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadIgnoresInvalidPortOverride(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := Load()
	assert.Equal(t, 5432, cfg.Database.Port)
}
