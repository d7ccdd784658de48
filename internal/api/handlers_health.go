// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinequiz/internal/models"
	"github.com/tomtom215/cinequiz/internal/quiz"
)

// Health handles GET /api/v1/health.
// The service is degraded while the catalog circuit breaker is open.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	breaker := h.breakerState()
	status := "healthy"
	if breaker == "open" {
		status = "degraded"
	}

	respondSuccess(w, models.HealthStatus{
		Status:         status,
		Version:        Version,
		CatalogBreaker: breaker,
		Questions:      h.bank.Len(),
		Genres:         len(quiz.Genres()),
		Uptime:         time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthLive handles liveness probes (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, 0)
}

// HealthReady handles readiness probes (Kubernetes-style).
// Returns 503 while the catalog circuit breaker is open, since every
// submission would fail fast.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	breaker := h.breakerState()
	if breaker == "open" {
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data: map[string]interface{}{
				"status":          "not_ready",
				"catalog_breaker": breaker,
			},
			Metadata: models.Metadata{Timestamp: time.Now().UTC()},
			Error: &models.APIError{
				Code:    "CATALOG_UNAVAILABLE",
				Message: "Movie catalog circuit breaker is open",
			},
		})
		return
	}

	respondSuccess(w, map[string]interface{}{
		"status":          "ready",
		"catalog_breaker": breaker,
	}, 0)
}
