package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/config"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 36, cfg.PageSize)
	assert.Equal(t, "./data/catalog.json", cfg.CatalogFile)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.HasCache())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CATALOG_CACHE_TTL", "90s")

	cfg, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.PageSize)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HasCache())
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=9191\nPAGE_SIZE=24\n"), 0o600))

	// Values already present in the environment are not overwritten.
	t.Setenv("PAGE_SIZE", "48")
	t.Setenv("SERVER_PORT", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.ServerPort)
	assert.Equal(t, 48, cfg.PageSize)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero page size", "PAGE_SIZE", "0"},
		{"oversized page", "PAGE_SIZE", "100000"},
		{"unparsable page size", "PAGE_SIZE", "many"},
		{"negative session ttl", "SESSION_TTL", "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load(missingEnvFile(t))
			assert.Error(t, err)
		})
	}
}
