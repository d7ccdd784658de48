// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package models holds the JSON shapes shared by the HTTP API.
package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope returned by every HTTP endpoint.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"headline": "당신에게 딱인 장르는: 액션!", "movies": [...]},
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z", "query_time_ms": 182}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "MISSING_CREDENTIAL", "message": "TMDB API Key를 입력해주세요."},
//	  "metadata": {"timestamp": "2026-10-18T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing.
// QueryTimeMS is the time spent waiting on the movie catalog, 0 when no
// catalog call was made.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the machine-readable error part of an APIResponse.
//
// Error codes:
//   - MISSING_CREDENTIAL: no TMDB API key was supplied
//   - INCOMPLETE_ANSWERS: at least one question is unanswered
//   - INVALID_ANSWER: an answer is not a known genre tag
//   - VALIDATION_ERROR: malformed request body
//   - CATALOG_UNAVAILABLE: the movie catalog could not be reached or refused the key
//   - RATE_LIMIT_EXCEEDED: too many requests from this client
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status         string  `json:"status"` // "healthy" or "degraded"
	Version        string  `json:"version"`
	CatalogBreaker string  `json:"catalog_breaker"` // closed, half-open, open, or disabled
	Questions      int     `json:"questions"`
	Genres         int     `json:"genres"`
	Uptime         float64 `json:"uptime_seconds"`
}

// ResolveResult is returned by POST /api/v1/resolve.
type ResolveResult struct {
	Genre    string         `json:"genre"`
	Label    string         `json:"label"`
	Category int            `json:"category_id"`
	Counts   map[string]int `json:"counts"`
}
