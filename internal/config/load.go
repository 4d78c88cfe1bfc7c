package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load. Each overrides the
// corresponding file/default value when set and non-empty.
const (
	EnvAddr      = "SITEVERIFY_ADDR"
	EnvToken     = "SITEVERIFY_TOKEN"
	EnvVariant   = "SITEVERIFY_VARIANT"
	EnvTTL       = "SITEVERIFY_TTL"
	EnvLogLevel  = "SITEVERIFY_LOG_LEVEL"
	EnvSentryDSN = "SENTRY_DSN"
	EnvSentryEnv = "SENTRY_ENVIRONMENT"
)

// Load resolves the daemon configuration: defaults, then the YAML file
// at path (skipped when path is empty), then environment overrides.
// The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.Responder.Token = v
	}
	if v := os.Getenv(EnvVariant); v != "" {
		c.Responder.Variant = v
	}
	if v := os.Getenv(EnvTTL); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", EnvTTL, v, err)
		}
		c.Responder.TTL = ttl
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvSentryDSN); v != "" {
		c.Sentry.DSN = v
	}
	if v := os.Getenv(EnvSentryEnv); v != "" {
		c.Sentry.Environment = v
	}
	return nil
}
