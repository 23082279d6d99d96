package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/ideaforge/forge-api/internal/api/middleware"
	"github.com/ideaforge/forge-api/web"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Session endpoints for the three interaction phases.
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", app.forgeHandler.StartSession)
		r.Get("/sessions/{id}", app.forgeHandler.GetSession)
		r.Post("/sessions/{id}/suggestions", app.forgeHandler.GenerateSuggestions)
		r.Put("/sessions/{id}/draft", app.forgeHandler.ReviseDraft)
		r.Post("/sessions/{id}/summary", app.forgeHandler.GenerateSummary)
	})

	// The single-page UI.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(web.Index); err != nil {
			app.logger.Error("failed to write index page", "error", err)
		}
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
