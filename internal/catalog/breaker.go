// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package catalog

import (
	"context"
	"errors"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinequiz/internal/config"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/metrics"
)

// BreakerName labels the catalog breaker in metrics and logs.
const BreakerName = "tmdb-discover"

// BreakerClient wraps a Discoverer with a circuit breaker. While the breaker
// is open, Discover fails immediately with ErrCatalogUnavailable and makes
// no network request.
type BreakerClient struct {
	next Discoverer
	cb   *gobreaker.CircuitBreaker[[]MovieRecord]
	name string
}

// NewBreakerClient wraps next using cfg.
func NewBreakerClient(next Discoverer, cfg *config.CircuitBreakerConfig) *BreakerClient {
	name := BreakerName

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]MovieRecord](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.HalfOpenRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio < cfg.FailureRatio {
				return false
			}
			logging.Warn().
				Str("breaker", name).
				Uint32("failures", counts.TotalFailures).
				Float64("failure_rate", ratio*100).
				Msg("[CIRCUIT BREAKER] Opening circuit")
			return true
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// A rejected credential or a departed caller says nothing about
		// catalog health.
		IsSuccessful: func(err error) bool {
			return err == nil || IsCredentialRejected(err) || IsCallerCanceled(err)
		},
	})

	return &BreakerClient{next: next, cb: cb, name: name}
}

// Discover implements Discoverer.
func (b *BreakerClient) Discover(ctx context.Context, credential string, categoryID int) ([]MovieRecord, error) {
	records, err := b.cb.Execute(func() ([]MovieRecord, error) {
		return b.next.Discover(ctx, credential, categoryID)
	})

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return records, nil

	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		metrics.RecordCatalogRequest(ReasonCircuitOpen, 0, 0)
		logging.Ctx(ctx).Warn().Str("breaker", b.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, &UnavailableError{Reason: ReasonCircuitOpen, Detail: err.Error()}

	default:
		result := "failure"
		switch {
		case IsCredentialRejected(err):
			result = "success"
		case IsCallerCanceled(err):
			result = "canceled"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, result).Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return nil, err
	}
}

// State returns "closed", "half-open" or "open".
func (b *BreakerClient) State() string {
	return stateToString(b.cb.State())
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
