package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteverify/internal/config"
	"github.com/dmitrymomot/siteverify/responder"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, config.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout.Std())
	assert.Equal(t, responder.DefaultToken, cfg.Responder.Token)
	assert.Equal(t, string(responder.VariantStandard), cfg.Responder.Variant)
	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Sentry.DSN)
	assert.Equal(t, config.DefaultEnvironment, cfg.Sentry.Environment)
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  addr: ":9090"
  shutdown_timeout: 5s
responder:
  token: custom-token
  variant: legacy
  ttl: 600
log:
  level: debug
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout.Std())
		assert.Equal(t, "custom-token", cfg.Responder.Token)
		assert.Equal(t, "legacy", cfg.Responder.Variant)
		assert.Equal(t, 600, cfg.Responder.TTL)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
log:
  level: warn
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, config.DefaultAddr, cfg.Server.Addr)
		assert.Equal(t, responder.DefaultToken, cfg.Responder.Token)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := writeConfigFile(t, "server: [not a mapping")
		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid duration errors", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  shutdown_timeout: not-a-duration
`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid duration")
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("env overrides file and defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
server:
  addr: ":9090"
`)

		t.Setenv(config.EnvAddr, ":7070")
		t.Setenv(config.EnvToken, "env-token")
		t.Setenv(config.EnvTTL, "120")
		t.Setenv(config.EnvLogLevel, "error")
		t.Setenv(config.EnvSentryDSN, "https://key@sentry.example.com/1")
		t.Setenv(config.EnvSentryEnv, "staging")

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":7070", cfg.Server.Addr)
		assert.Equal(t, "env-token", cfg.Responder.Token)
		assert.Equal(t, 120, cfg.Responder.TTL)
		assert.Equal(t, "error", cfg.Log.Level)
		assert.Equal(t, "https://key@sentry.example.com/1", cfg.Sentry.DSN)
		assert.Equal(t, "staging", cfg.Sentry.Environment)
	})

	t.Run("invalid TTL errors", func(t *testing.T) {
		t.Setenv(config.EnvTTL, "many")
		_, err := config.Load("")
		assert.Error(t, err)
	})

	t.Run("invalid variant fails validation", func(t *testing.T) {
		t.Setenv(config.EnvVariant, "experimental")
		_, err := config.Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		assert.NoError(t, config.Default().Validate())
	})

	t.Run("empty addr", func(t *testing.T) {
		cfg := config.Default()
		cfg.Server.Addr = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty token", func(t *testing.T) {
		cfg := config.Default()
		cfg.Responder.Token = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative TTL", func(t *testing.T) {
		cfg := config.Default()
		cfg.Responder.TTL = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown variant", func(t *testing.T) {
		cfg := config.Default()
		cfg.Responder.Variant = "v3"
		assert.Error(t, cfg.Validate())
	})
}
