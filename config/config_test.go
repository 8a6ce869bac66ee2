package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"API_HOST", "API_PORT", "APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"CORS_ALLOW_ORIGINS", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW",
	"READ_TIMEOUT", "WRITE_TIMEOUT", "IDLE_TIMEOUT", "RENDER_DPI", "APP_VERSION",
}

// clearEnv empties every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "0.0.0.0", c.Host)
	assert.Equal(t, 8000, c.Port)
	assert.Equal(t, "0.0.0.0:8000", c.Addr())
	assert.Equal(t, "development", c.Env)
	assert.False(t, c.IsProduction())
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "*", c.CorsAllowOrigins)
	assert.Equal(t, 600, c.RateLimitMax)
	assert.Equal(t, time.Minute, c.RateLimitWindow)
	assert.Equal(t, 10*time.Second, c.ReadTimeout)
	assert.Equal(t, 10*time.Second, c.WriteTimeout)
	assert.Equal(t, 60*time.Second, c.IdleTimeout)
	assert.Equal(t, 300, c.RenderDPI)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "9000")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("RENDER_DPI", "150")
	t.Setenv("APP_VERSION", "1.2.3")

	c := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, 9000, c.Port)
	assert.True(t, c.IsProduction())
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 30*time.Second, c.RateLimitWindow)
	assert.Equal(t, 150, c.RenderDPI)
	assert.Equal(t, "1.2.3", c.Version)
}

func TestLoadInvalidFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_PORT", "abc")
	t.Setenv("RATE_LIMIT_MAX", "-1")
	t.Setenv("IDLE_TIMEOUT", "soon")
	t.Setenv("LOG_FORMAT", "xml")

	c := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, 8000, c.Port)
	assert.Equal(t, 600, c.RateLimitMax)
	assert.Equal(t, 60*time.Second, c.IdleTimeout)
	assert.Equal(t, "text", c.LogFormat)

	t.Setenv("API_PORT", "70000")
	assert.Equal(t, 8000, Load(filepath.Join(t.TempDir(), "missing.env")).Port)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are set, even when empty
	require.NoError(t, os.Unsetenv("API_PORT"))
	require.NoError(t, os.Unsetenv("APP_ENV"))
	t.Cleanup(func() {
		_ = os.Unsetenv("API_PORT")
		_ = os.Unsetenv("APP_ENV")
	})

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("API_PORT=8123\nAPP_ENV=staging\n"), 0o600))

	c := Load(file)
	assert.Equal(t, 8123, c.Port)
	assert.Equal(t, "staging", c.Env)
}
