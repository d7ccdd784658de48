// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package config loads CineQuiz configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
//
// The TMDB credential is deliberately absent: it is supplied by the user with
// every submission and never read from the environment or a file.
package config

import (
	"fmt"
	"time"
)

// Config is the complete runtime configuration.
type Config struct {
	Catalog  CatalogConfig  `koanf:"catalog"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// CatalogTimeout is the fixed budget for one TMDB discovery call.
const CatalogTimeout = 10 * time.Second

// CatalogConfig configures the outbound TMDB discovery client.
type CatalogConfig struct {
	// BaseURL is the API root without path, e.g. https://api.themoviedb.org.
	BaseURL string `koanf:"base_url"`

	// ImageBaseURL is prepended to poster paths.
	ImageBaseURL string `koanf:"image_base_url"`

	// Timeout bounds a single discovery request end to end. Load always
	// sets it to CatalogTimeout; it is not read from file or environment.
	Timeout time.Duration `koanf:"-"`

	// RateLimitPerSecond paces outbound requests process-wide. 0 disables pacing.
	RateLimitPerSecond float64 `koanf:"rate_limit_per_second"`
	RateLimitBurst     int     `koanf:"rate_limit_burst"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig tunes the breaker wrapped around the catalog client.
type CircuitBreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// HalfOpenRequests is how many probes are let through while half-open.
	HalfOpenRequests uint32 `koanf:"half_open_requests"`

	// Interval resets the closed-state counters.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests and FailureRatio decide when to trip.
	MinRequests  uint32  `koanf:"min_requests"`
	FailureRatio float64 `koanf:"failure_ratio"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// SecurityConfig holds inbound rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config for the parts that come from configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller adds file:line to log lines.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all sources and validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether the server runs with production checks.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}
