package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/generation"
	"github.com/phrazzld/postcraft-api/internal/platform/metrics"
	"github.com/phrazzld/postcraft-api/internal/platform/reddit"
)

// metricsNamespace prefixes every exported Prometheus series.
const metricsNamespace = "postcraft"

// application holds all the shared application dependencies.
// Everything here is created once before serving and only read afterwards.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	metrics *metrics.Prom

	// Service interfaces
	generationService *generation.Service
	redditClient      *reddit.Client
}

// newApplication creates a new application instance around an already
// constructed generator, which is shared by every request.
func newApplication(cfg *config.Config, logger *slog.Logger, gen generation.Generator) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.NewProm(metricsNamespace),
	}

	svc, err := generation.NewService(
		gen,
		cfg.LLM.ModelName,
		generation.Mode(cfg.LLM.DefaultMode),
		generation.WithMetrics(app.metrics),
		generation.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation service: %w", err)
	}
	app.generationService = svc
	logger.Info("Generation service initialized",
		"model", cfg.LLM.ModelName,
		"default_mode", string(svc.DefaultMode()))

	app.redditClient = reddit.NewClient(cfg.Reddit, nil)

	return app, nil
}
