// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package services adapts long-running components to suture.Service.
package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tomtom215/cinequiz/internal/logging"
)

// HTTPServer is the subset of *http.Server the service drives.
type HTTPServer interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// HTTPServerService serves the quiz API under a supervisor. Each Serve call
// binds its own listener, so a port conflict surfaces as the service error
// and ":0" resolves to a concrete address readable through Addr.
//
//	server := &http.Server{Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	bound           atomic.Value // string
}

// NewHTTPServerService wraps server listening on addr. A non-positive
// shutdownTimeout means 10s.
func NewHTTPServerService(server HTTPServer, addr string, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Addr returns the address of the current listener, or "" before the
// first successful bind.
func (h *HTTPServerService) Addr() string {
	if v, ok := h.bound.Load().(string); ok {
		return v
	}
	return ""
}

// Serve implements suture.Service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", h.addr, err)
	}
	bound := ln.Addr().String()
	h.bound.Store(bound)
	logging.Info().Str("addr", bound).Msg("Quiz API listening")

	served := make(chan error, 1)
	go func() { served <- h.server.Serve(ln) }()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", bound, err)

	case <-ctx.Done():
	}

	// ctx is done; in-flight recommendations get shutdownTimeout to finish
	// their catalog call.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	logging.Info().Str("addr", bound).Dur("timeout", h.shutdownTimeout).Msg("Draining quiz API")
	if err := h.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("drain %s: %w", bound, err)
	}
	if err := <-served; err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Warn().Err(err).Msg("Quiz API exited with error during drain")
	}
	return ctx.Err()
}

func (h *HTTPServerService) String() string {
	return "quiz-api"
}
