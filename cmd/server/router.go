package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ragqa/ragqa-api/internal/api"
	apiMiddleware "github.com/ragqa/ragqa-api/internal/api/middleware"
)

// setupRouter configures the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	qaHandler := api.NewQAHandler(app.qaService, app.logger, app.config.Generation.DefaultPairCount)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-qa", qaHandler.GenerateQA)
		r.Post("/generate-qa-chunked", qaHandler.GenerateQAChunked)
		r.Get("/document-info", qaHandler.DocumentInfo)
	})

	r.Get("/health", qaHandler.Health)

	return r
}
