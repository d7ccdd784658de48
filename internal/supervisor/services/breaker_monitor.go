// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinequiz/internal/logging"
)

// StatePoller reports a circuit breaker state. Reading the state lets the
// breaker apply a pending open to half-open transition.
type StatePoller interface {
	State() string
}

// BreakerMonitor polls a circuit breaker on an interval. gobreaker only
// moves from open to half-open when the state is read, so without traffic
// the circuit_breaker_state gauge and the readiness probe would stay stale.
type BreakerMonitor struct {
	breaker  StatePoller
	interval time.Duration
	last     string
}

// NewBreakerMonitor creates a monitor. A non-positive interval means 5s.
func NewBreakerMonitor(breaker StatePoller, interval time.Duration) *BreakerMonitor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &BreakerMonitor{breaker: breaker, interval: interval}
}

// Serve implements suture.Service.
func (m *BreakerMonitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.poll()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.poll()
		}
	}
}

func (m *BreakerMonitor) poll() {
	state := m.breaker.State()
	if state != m.last {
		logging.Debug().
			Str("component", "breaker-monitor").
			Str("from", m.last).
			Str("to", state).
			Msg("Circuit breaker state observed")
		m.last = state
	}
}

func (m *BreakerMonitor) String() string {
	return "breaker-monitor"
}
