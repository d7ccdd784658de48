// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinequiz/internal/logging"
)

// AccessLog logs one line per completed request. The query string is never
// logged and neither are request headers, so credentials sent by clients
// stay out of the log. 5xx responses log at warn level.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(ww, r)

		log := logging.Ctx(r.Context())
		var ev *zerolog.Event
		if ww.statusCode >= http.StatusInternalServerError {
			ev = log.Warn()
		} else {
			ev = log.Debug()
		}
		ev.Str("component", "http").
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", routePattern(r)).
			Int("status", ww.statusCode).
			Str("remote_addr", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	})
}
