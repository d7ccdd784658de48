// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package api serves the questionnaire, the genre resolver and the
// recommendation flow over HTTP using the chi router.
package api

import (
	"time"

	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// Version is reported by the health endpoint. Overridden at build time
// with -ldflags "-X github.com/tomtom215/cinequiz/internal/api.Version=...".
var Version = "dev"

// BreakerStater reports the catalog circuit breaker state.
type BreakerStater interface {
	State() string
}

// Handler holds dependencies shared by all HTTP handlers. Everything it
// references is read-only or internally synchronized; per-submission state
// lives in a session created inside each request.
type Handler struct {
	bank      *quiz.Bank
	catalog   catalog.Discoverer
	breaker   BreakerStater
	startTime time.Time
}

// NewHandler creates a Handler. breaker may be nil when the circuit breaker
// is disabled.
func NewHandler(bank *quiz.Bank, discoverer catalog.Discoverer, breaker BreakerStater) *Handler {
	return &Handler{
		bank:      bank,
		catalog:   discoverer,
		breaker:   breaker,
		startTime: time.Now(),
	}
}

func (h *Handler) breakerState() string {
	if h.breaker == nil {
		return "disabled"
	}
	return h.breaker.State()
}
