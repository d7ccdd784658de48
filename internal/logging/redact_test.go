// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package logging

import (
	"errors"
	"strings"
	"testing"
)

func TestRedactCredential(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"123456789012", "***"},
		{"0123456789abcdef0123", "****0123"},
	}
	for _, tt := range tests {
		if got := RedactCredential(tt.in); got != tt.want {
			t.Errorf("RedactCredential(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	raw := "https://api.themoviedb.org/3/discover/movie?api_key=supersecretvalue&with_genres=28"
	got := RedactURL(raw)

	if strings.Contains(got, "supersecretvalue") {
		t.Fatalf("credential leaked: %s", got)
	}
	if !strings.Contains(got, "api_key=REDACTED") {
		t.Errorf("expected redaction marker, got %s", got)
	}
	if !strings.Contains(got, "with_genres=28") {
		t.Errorf("expected other params preserved, got %s", got)
	}

	plain := "https://api.themoviedb.org/3/discover/movie?with_genres=18"
	if got := RedactURL(plain); got != plain {
		t.Errorf("RedactURL changed URL without credentials: %s", got)
	}
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	cred := "abcdefghijklmnop1234"
	err := errors.New(`Get "https://api.themoviedb.org/3/discover/movie?api_key=` + cred + `": dial tcp: timeout`)

	got := RedactError(err, cred)
	if strings.Contains(got, cred) {
		t.Fatalf("credential leaked: %s", got)
	}
	if !strings.Contains(got, "****1234") {
		t.Errorf("expected masked credential, got %s", got)
	}
	if RedactError(nil, cred) != "" {
		t.Error("expected empty string for nil error")
	}
}
