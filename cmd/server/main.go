// Forkcast - Restaurant Recommendation and Category Preference Analytics
// Copyright 2026 Forkcast Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/forkcast/forkcast

// Command server runs the Forkcast recommendation HTTP service.
//
// Startup order: load configuration, initialize logging, load the index
// artifacts produced by the indexer, build the recommendation engine, then
// serve HTTP under a suture supervision tree until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forkcast/forkcast/internal/api"
	"github.com/forkcast/forkcast/internal/auth"
	"github.com/forkcast/forkcast/internal/catalog"
	"github.com/forkcast/forkcast/internal/config"
	"github.com/forkcast/forkcast/internal/logging"
	"github.com/forkcast/forkcast/internal/places"
	"github.com/forkcast/forkcast/internal/recommend"
	"github.com/forkcast/forkcast/internal/supervisor"
	"github.com/forkcast/forkcast/internal/vocab"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(cfg.Logging)
	logging.Info().Msg("Starting Forkcast server")

	engine, err := buildEngine(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		// Auth stays off rather than running with a weak secret.
		logging.Warn().Err(err).Msg("JWT disabled; authenticated endpoints will reject requests")
		jwtManager = nil
	}
	authenticator := auth.NewAuthenticator(&cfg.Security)

	placesClient := places.NewClient(&cfg.Places)
	if placesClient == nil {
		logging.Info().Msg("Place-search enrichment disabled")
	}

	handler := api.NewHandler(engine, jwtManager, authenticator, placesClient)
	router := api.NewRouter(handler, api.NewMiddleware(&cfg.Server), jwtManager)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Serving HTTP")
	errCh := tree.ServeBackground(ctx)

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}

// buildEngine loads the consolidated index artifacts and assembles the
// recommendation engine. Missing or empty artifacts are fatal: the service
// cannot answer anything meaningful without them.
func buildEngine(cfg *config.Config) (*recommend.Engine, error) {
	cat, err := catalog.LoadBusinessIndex(cfg.Artifacts.BusinessIndexPath)
	if err != nil {
		return nil, fmt.Errorf("load business index: %w", err)
	}

	reviewIndex, err := catalog.LoadReviewIndex(cfg.Artifacts.ReviewIndexPath)
	if err != nil {
		return nil, fmt.Errorf("load review index: %w", err)
	}

	voc := vocab.Food()
	index := recommend.NewBruteForceIndex(reviewIndex, voc)

	logging.Info().
		Int("businesses", cat.Len()).
		Int("reference_users", index.Len()).
		Msg("Index artifacts loaded")

	return recommend.NewEngine(cfg.Engine, voc, cat, index, logging.Logger())
}
