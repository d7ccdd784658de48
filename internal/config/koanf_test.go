// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Catalog.BaseURL != "https://api.themoviedb.org" {
		t.Errorf("Catalog.BaseURL = %q, want https://api.themoviedb.org", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("Catalog.ImageBaseURL = %q", cfg.Catalog.ImageBaseURL)
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Catalog.Timeout = %v, want 10s", cfg.Catalog.Timeout)
	}
	if !cfg.Catalog.CircuitBreaker.Enabled {
		t.Error("Catalog.CircuitBreaker.Enabled should be true by default")
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"TMDB_BASE_URL", "catalog.base_url"},
		{"TMDB_TIMEOUT", ""},
		{"TMDB_CIRCUIT_BREAKER", "catalog.circuit_breaker.enabled"},
		{"TMDB_BREAKER_FAILURE_RATIO", "catalog.circuit_breaker.failure_ratio"},
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// The credential is per-submission; it must never be read from the environment.
		{"TMDB_API_KEY", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TMDB_TIMEOUT", "5s")
	t.Setenv("TMDB_RATE_LIMIT", "2.5")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://quiz.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Catalog.Timeout != CatalogTimeout {
		t.Errorf("Catalog.Timeout = %v, want fixed %v (TMDB_TIMEOUT is not honored)", cfg.Catalog.Timeout, CatalogTimeout)
	}
	if cfg.Catalog.RateLimitPerSecond != 2.5 {
		t.Errorf("Catalog.RateLimitPerSecond = %v, want 2.5", cfg.Catalog.RateLimitPerSecond)
	}
	want := []string{"http://localhost:3000", "https://quiz.example.com"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalog:
  base_url: http://tmdb.internal:8080
  timeout: 45s
  circuit_breaker:
    enabled: false
server:
  port: 7000
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	// Environment beats file.
	t.Setenv("HTTP_PORT", "7001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Catalog.BaseURL != "http://tmdb.internal:8080" {
		t.Errorf("Catalog.BaseURL = %q", cfg.Catalog.BaseURL)
	}
	if cfg.Catalog.CircuitBreaker.Enabled {
		t.Error("expected circuit breaker disabled from file")
	}
	if cfg.Catalog.Timeout != 10*time.Second {
		t.Errorf("Catalog.Timeout = %v, want fixed 10s regardless of file", cfg.Catalog.Timeout)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Server.Port = %d, want 7001 (env over file)", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_InvalidFails(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "70000")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}
