// Package config loads the siteverifyd daemon configuration.
//
// Configuration is resolved in three layers: built-in defaults, an
// optional YAML file, and environment variable overrides, each layer
// winning over the previous one.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/siteverify/responder"
)

// Config is the root configuration for siteverifyd.
type Config struct {
	Server    ServerSection    `yaml:"server"`
	Responder ResponderSection `yaml:"responder"`
	Log       LogSection       `yaml:"log"`
	Sentry    SentrySection    `yaml:"sentry"`
}

// ServerSection configures the HTTP server.
type ServerSection struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// ResponderSection configures the verification responder.
type ResponderSection struct {
	// Token is the verification token served to the platform.
	// Defaults to the token issued for this deployment.
	Token string `yaml:"token"`

	// Variant selects the response policy: "standard" or "legacy".
	Variant string `yaml:"variant"`

	// TTL is the advertised record TTL in seconds.
	TTL int `yaml:"ttl"`

	// Platform names the platform the token verifies for.
	Platform string `yaml:"platform"`
}

// LogSection configures logging.
type LogSection struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// SentrySection configures error reporting.
// An empty DSN disables Sentry.
type SentrySection struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
}

// Default configuration values.
const (
	DefaultAddr            = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultEnvironment     = "production"
)

// Default returns the default daemon configuration.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			Addr:            DefaultAddr,
			ShutdownTimeout: Duration(DefaultShutdownTimeout),
		},
		Responder: ResponderSection{
			Token:   responder.DefaultToken,
			Variant: string(responder.VariantStandard),
		},
		Log: LogSection{
			Level: DefaultLogLevel,
		},
		Sentry: SentrySection{
			Environment: DefaultEnvironment,
		},
	}
}

// Validate checks the configuration for startup errors.
// Request handling has no failure states; configuration does.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr must not be empty")
	}
	if c.Responder.Token == "" {
		return fmt.Errorf("config: responder.token must not be empty")
	}
	if c.Responder.TTL < 0 {
		return fmt.Errorf("config: responder.ttl must not be negative")
	}
	if _, err := responder.ParseVariant(c.Responder.Variant); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Duration wraps time.Duration with YAML support for strings like "30s".
type Duration time.Duration

// UnmarshalYAML parses a duration from a YAML scalar.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
