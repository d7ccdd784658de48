// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package main

import (
	"testing"
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/config"
)

func TestBuildCatalog(t *testing.T) {
	t.Parallel()

	cfg := config.CatalogConfig{
		BaseURL: "https://api.themoviedb.org",
		Timeout: 10 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			HalfOpenRequests: 1,
			Interval:         time.Minute,
			Timeout:          30 * time.Second,
			MinRequests:      10,
			FailureRatio:     0.6,
		},
	}

	d, b := buildCatalog(&cfg)
	if b == nil {
		t.Fatal("breaker should be built when enabled")
	}
	if _, ok := d.(*catalog.BreakerClient); !ok {
		t.Errorf("discoverer = %T, want *catalog.BreakerClient", d)
	}
	if b.State() != "closed" {
		t.Errorf("initial state = %q, want closed", b.State())
	}

	cfg.CircuitBreaker.Enabled = false
	d, b = buildCatalog(&cfg)
	if b != nil {
		t.Error("breaker should be nil when disabled")
	}
	if _, ok := d.(*catalog.Client); !ok {
		t.Errorf("discoverer = %T, want *catalog.Client", d)
	}
	if breakerStater(b) != nil {
		t.Error("breakerStater(nil) must be a nil interface")
	}
}
