// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Reelback96/MoviePollGame/cliparse"
	"github.com/Reelback96/MoviePollGame/handlers"
	"github.com/Reelback96/MoviePollGame/ingest"
	"github.com/Reelback96/MoviePollGame/metrics"
	"github.com/Reelback96/MoviePollGame/middleware"
	"github.com/Reelback96/MoviePollGame/session"
)

func NewRouter(registry *session.Registry, source ingest.Source, stores handlers.StoreProvider, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	r.Use(middleware.RequestID)
	r.Use(metrics.Middleware)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(registry, source, cfg)
	votingHandler := handlers.NewVotingHandler(registry, cfg)
	resultsHandler := handlers.NewResultsHandler(registry, stores, cfg)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/sessions", func(r chi.Router) {
		r.Use(middleware.WithLogging)

		r.Post("/", sessionHandler.CreateSession)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)

			// Tournament
			r.Get("/match", votingHandler.GetMatch)
			r.Post("/votes", votingHandler.Vote)
			r.Get("/rankings", votingHandler.GetRankings)
			r.Post("/faceoff", votingHandler.FaceOff)

			// Results
			r.Get("/top5", resultsHandler.GetTop5)
			r.Post("/top5/move", resultsHandler.MoveItem)
			r.Post("/submit", resultsHandler.Submit)
			r.Get("/export", resultsHandler.ExportTally)
		})
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("movie-koth API v1"))
	})

	return r
}
