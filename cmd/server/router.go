package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/postcraft-api/internal/api"
	apiMiddleware "github.com/phrazzld/postcraft-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.CORS())
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics(app.metrics))

	rephraseHandler := api.NewRephraseHandler(
		app.generationService,
		app.config.Server.StrictErrors,
		app.logger,
	)
	redditHandler := api.NewRedditHandler(app.redditClient, app.logger)

	r.Get("/", api.Root)
	r.Post("/rephrase/", rephraseHandler.Rephrase)
	r.Post("/rephrase", rephraseHandler.Rephrase)

	r.Route("/api", func(r chi.Router) {
		r.Get("/reddit", redditHandler.Proxy)
	})

	r.Get("/health", api.Health)
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
