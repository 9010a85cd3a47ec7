package config_test

import (
	"testing"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Empty(t, cfg.AdminUserIDs)
	assert.Contains(t, cfg.DSN(), "dbname=vanta")
}

func TestLoadAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_USER_IDS", "1,7,42")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 7, 42}, cfg.AdminUserIDs)
}

func TestDSNPrefersDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/vanta")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/vanta", cfg.DSN())
}

func TestProductionValidation(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ALLOWED_ORIGINS", "https://vanta.example.com")

	t.Run("default secret rejected", func(t *testing.T) {
		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
	})

	t.Run("valid production config", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/vanta")
		t.Setenv("JWT_SECRET_KEY", "an-actually-long-production-secret-key-1234")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("localhost origin rejected", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/vanta")
		t.Setenv("JWT_SECRET_KEY", "an-actually-long-production-secret-key-1234")
		t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ALLOWED_ORIGINS")
	})
}
