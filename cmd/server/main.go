// CineQuiz - Questionnaire-Driven Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequiz

// Package main is the entry point for the CineQuiz server.
//
// CineQuiz serves a five-question personality questionnaire, maps the
// answers to a movie genre and recommends the five most popular movies of
// that genre from TMDB, fetched with an API key the user supplies on each
// submission. The key is used for that one lookup and is never stored.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, environment (Koanf v2)
//  2. Logging: zerolog initialised from the logging section
//  3. Questionnaire check: every answer option must map to a known genre
//  4. Catalog client: TMDB discover client with outbound rate limiting,
//     wrapped in a circuit breaker unless disabled
//  5. HTTP server and breaker monitor under a suture supervisor tree
//
// # Configuration
//
// Common environment variables:
//
//	HTTP_PORT=8501            listen port
//	TMDB_BASE_URL=...         TMDB API base URL
//	TMDB_TIMEOUT=10s          discover request timeout
//	CORS_ORIGINS=https://a,https://b
//	LOG_LEVEL=debug LOG_FORMAT=console
//
// There is deliberately no variable for the TMDB API key.
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree; the HTTP server drains
// in-flight requests for up to server.shutdown_timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinequiz/internal/api"
	"github.com/tomtom215/cinequiz/internal/catalog"
	"github.com/tomtom215/cinequiz/internal/config"
	"github.com/tomtom215/cinequiz/internal/logging"
	"github.com/tomtom215/cinequiz/internal/quiz"
	"github.com/tomtom215/cinequiz/internal/supervisor"
	"github.com/tomtom215/cinequiz/internal/supervisor/services"
)

// breakerPollInterval is how often the breaker monitor reads the state.
const breakerPollInterval = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("catalog_url", cfg.Catalog.BaseURL).
		Dur("catalog_timeout", cfg.Catalog.Timeout).
		Bool("circuit_breaker", cfg.Catalog.CircuitBreaker.Enabled).
		Msg("Starting CineQuiz")

	bank := quiz.DefaultBank()
	if err := quiz.Validate(bank); err != nil {
		logging.Fatal().Err(err).Msg("Questionnaire data is inconsistent")
	}

	discoverer, breaker := buildCatalog(&cfg.Catalog)

	handler := api.NewHandler(bank, discoverer, breakerStater(breaker))
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
	if breaker != nil {
		tree.AddBackgroundService(services.NewBreakerMonitor(breaker, breakerPollInterval))
	}
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := tree.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildCatalog creates the TMDB client, wrapped in a circuit breaker when
// enabled. The breaker is returned separately for health reporting and is
// nil when disabled.
func buildCatalog(cfg *config.CatalogConfig) (catalog.Discoverer, *catalog.BreakerClient) {
	client := catalog.NewClient(cfg)
	if !cfg.CircuitBreaker.Enabled {
		return client, nil
	}
	breaker := catalog.NewBreakerClient(client, &cfg.CircuitBreaker)
	return breaker, breaker
}

// breakerStater avoids handing the API a typed nil interface.
func breakerStater(b *catalog.BreakerClient) api.BreakerStater {
	if b == nil {
		return nil
	}
	return b
}
