// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	slogger.Warn("service restarted", "service", "http", "attempt", 2, "backoff", time.Second)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"http"`, `"attempt":2`, "service restarted"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("warn-level logger should not enable info")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("warn-level logger should enable error")
	}
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		With("supervisor", "cinequiz").
		WithGroup("event")

	slogger.Info("backoff", "service", "api")

	out := buf.String()
	if !strings.Contains(out, `"supervisor":"cinequiz"`) {
		t.Errorf("expected pre-set attr: %s", out)
	}
	if !strings.Contains(out, `"event.service":"api"`) {
		t.Errorf("expected grouped key: %s", out)
	}
	if strings.Contains(out, `"event.supervisor"`) {
		t.Errorf("attr added before the group must not take its prefix: %s", out)
	}
}

func TestSlogHandler_AttrsKeepTheirGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf))).
		WithGroup("tree").
		With("layer", "api").
		WithGroup("service").
		With("name", "http-server")

	slogger.Warn("restart", "attempt", 2)

	out := buf.String()
	for _, want := range []string{
		`"tree.layer":"api"`,
		`"tree.service.name":"http-server"`,
		`"tree.service.attempt":2`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
	if strings.Contains(out, `"tree.service.layer"`) {
		t.Errorf("outer attr took inner group prefix: %s", out)
	}
}

func TestSlogHandler_RedactsCredentialKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	slogger.Info("outbound", "api_key", "0123456789abcdefWXYZ")

	out := buf.String()
	if strings.Contains(out, "0123456789abcdefWXYZ") {
		t.Fatalf("credential leaked: %s", out)
	}
	if !strings.Contains(out, "****WXYZ") {
		t.Errorf("expected masked credential: %s", out)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
