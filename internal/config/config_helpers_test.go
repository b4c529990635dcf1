package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  int
	}{
		{"unset uses default", "", false, 42},
		{"empty uses default", "", true, 42},
		{"positive", "100", true, 100},
		{"negative", "-10", true, -10},
		{"zero", "0", true, 0},
		{"float falls back", "42.5", true, 42},
		{"garbage falls back", "lots", true, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("STUDYQUEST_TEST_INT", tt.value)
			if !tt.set {
				unsetForTest(t, "STUDYQUEST_TEST_INT")
			}
			assert.Equal(t, tt.want, getEnvAsInt("STUDYQUEST_TEST_INT", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 5 * time.Minute
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", fallback},
		{"10m", 10 * time.Minute},
		{"30s", 30 * time.Second},
		{"1h30m45s", time.Hour + 30*time.Minute + 45*time.Second},
		{"500ms", 500 * time.Millisecond},
		{"100", fallback},
		{"soon", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("STUDYQUEST_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("STUDYQUEST_TEST_DURATION", fallback))
		})
	}
}

func TestGetEnvAsList(t *testing.T) {
	t.Run("unset yields nil", func(t *testing.T) {
		unsetForTest(t, "STUDYQUEST_TEST_LIST")
		assert.Nil(t, getEnvAsList("STUDYQUEST_TEST_LIST"))
	})

	t.Run("trims and drops empty items", func(t *testing.T) {
		t.Setenv("STUDYQUEST_TEST_LIST", " 10.0.0.1, ,10.0.0.2,")
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList("STUDYQUEST_TEST_LIST"))
	})
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "50")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
		t.Setenv("DB_MAX_CONN_LIFETIME", "1h")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DBMaxConns)
		assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")
		t.Setenv("DB_MAX_CONNS", "many")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})
}

// unsetForTest removes key for the rest of the test; t.Setenv restores it afterwards
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
