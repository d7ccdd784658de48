// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package logging

import (
	"net/url"
	"strings"
)

// credentialParams are query parameter names whose values must never reach a log line.
var credentialParams = []string{"api_key", "apikey", "access_token", "token"}

// RedactCredential masks a credential, keeping the last 4 characters of long values.
//
//	RedactCredential("0123456789abcdef0123") -> "****0123"
func RedactCredential(credential string) string {
	if credential == "" {
		return ""
	}
	if len(credential) <= 12 {
		return "***"
	}
	return "****" + credential[len(credential)-4:]
}

// RedactURL replaces credential query parameters in raw with a fixed marker.
// Unparseable input is replaced entirely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	changed := false
	for _, name := range credentialParams {
		if q.Has(name) {
			q.Set(name, "REDACTED")
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// RedactError returns err's message with any occurrence of credential masked.
// Transport errors from net/http embed the full request URL, query included.
func RedactError(err error, credential string) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if credential != "" {
		msg = strings.ReplaceAll(msg, credential, RedactCredential(credential))
	}
	return truncateString(msg, 300)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
