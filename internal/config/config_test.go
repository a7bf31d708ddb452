package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an almost empty config file
		path := writeConfig(t, "log-level: debug\nseed-game: true\n")

		// When: loading it
		conf := MustLoad(path)

		// Then: missing values fall back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.True(t, conf.SeedGame)
		assert.Equal(t, 5*time.Second, conf.ShutdownTimeout)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 3*time.Second, conf.Redis.DialTimeout)
		assert.Equal(t, 24*time.Hour, conf.Journal.TTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"9000\"\nredis:\n  enabled: true\n  host: cache\n")
		t.Setenv("HTTP_PORT", "9100")

		conf := MustLoad(path)

		assert.Equal(t, "9100", conf.HTTPPort)
		assert.False(t, conf.SeedGame)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
