// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingPoller struct {
	polls atomic.Int32
}

func (p *countingPoller) State() string {
	if p.polls.Add(1) > 2 {
		return "half-open"
	}
	return "open"
}

func TestBreakerMonitor_Polls(t *testing.T) {
	t.Parallel()

	poller := &countingPoller{}
	m := NewBreakerMonitor(poller, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for poller.polls.Load() < 4 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if poller.polls.Load() < 4 {
		t.Errorf("polled %d times, want >= 4", poller.polls.Load())
	}
	if m.last != "half-open" {
		t.Errorf("last = %q, want half-open", m.last)
	}
}

func TestNewBreakerMonitor_DefaultInterval(t *testing.T) {
	t.Parallel()

	m := NewBreakerMonitor(&countingPoller{}, 0)
	if m.interval != 5*time.Second {
		t.Errorf("interval = %v, want 5s", m.interval)
	}
	if m.String() != "breaker-monitor" {
		t.Errorf("String() = %q", m.String())
	}
}
