// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Validate reports every violation wrapped in ErrInvalidConfig.
// - External errors must be wrapped via this package's error kinds.
package config

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Supported log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// SeedFile points at a YAML player list. Empty means the built-in seed set.
	SeedFile string `koanf:"seed_file"`

	// RandomSeed seeds the model random source. Zero seeds from the clock.
	RandomSeed int64 `koanf:"random_seed"`

	// ServiceVersion is reported by the health endpoint.
	ServiceVersion string `koanf:"service_version"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// RequestTimeoutMS bounds the handling time of a single request.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// MaxComparePlayers caps the identifiers accepted by a comparison.
	MaxComparePlayers int `koanf:"max_compare_players"`

	// MetricsEnabled toggles request and model metrics. Runtime gauges stay on.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsRefreshMS is the runtime gauge refresh period.
	MetricsRefreshMS int `koanf:"metrics_refresh_ms"`
}

// New creates a Config populated with defaults. Context is accepted first to
// satisfy the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          LogFormatText,
		Addr:               ":5000",
		SeedFile:           "",
		RandomSeed:         0,
		ServiceVersion:     "1.0.0",
		CORSAllowedOrigins: []string{"*"},
		RequestTimeoutMS:   30_000,
		MaxComparePlayers:  10,
		MetricsEnabled:     true,
		MetricsRefreshMS:   10_000,
	}
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// MetricsRefreshInterval returns MetricsRefreshMS as a duration.
func (c *Config) MetricsRefreshInterval() time.Duration {
	return time.Duration(c.MetricsRefreshMS) * time.Millisecond
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "addr must not be empty")
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.MaxComparePlayers < 2 {
		problems = append(problems, "max_compare_players must be at least 2")
	}
	if c.RequestTimeoutMS <= 0 {
		problems = append(problems, "request_timeout_ms must be positive")
	}
	if c.MetricsRefreshMS <= 0 {
		problems = append(problems, "metrics_refresh_ms must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
