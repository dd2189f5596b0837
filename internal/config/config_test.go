package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, 24*time.Hour, cfg.RedisTTL)
	assert.Equal(t, int64(30), cfg.QuoteRateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.AdminIDs)
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADMIN_IDS", "10,20")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("QUOTE_RATE_WINDOW", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 20}, cfg.AdminIDs)
	assert.True(t, cfg.IsAdmin(20))
	assert.False(t, cfg.IsAdmin(30))
	assert.Equal(t, 15*time.Minute, cfg.QuoteRateWindow)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=autoquote sslmode=disable", cfg.DSN())
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("QUOTE_RATE_LIMIT", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "QUOTE_RATE_LIMIT")
	})

	t.Run("unparseable port", func(t *testing.T) {
		t.Setenv("DB_PORT", "five")
		_, err := Load()
		assert.ErrorContains(t, err, "failed to parse config")
	})

	t.Run("idle above open", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "2")
		t.Setenv("DB_MAX_IDLE_CONNS", "3")
		_, err := Load()
		assert.ErrorContains(t, err, "DB_MAX_IDLE_CONNS")
	})
}

func TestLoad_DotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Cleanup(func() { _ = os.Unsetenv("CALCULATOR_BASE_URL") })
	require.NoError(t, os.WriteFile(".env", []byte("CALCULATOR_BASE_URL=https://calc.example.com\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://calc.example.com", cfg.CalculatorBaseURL)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("BAD-KEY=1\n"), 0o600))

	_, err := Load()
	assert.ErrorContains(t, err, "failed to load .env")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
