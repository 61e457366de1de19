package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/leadscout-hq/leadscout/internal/api"
	"github.com/leadscout-hq/leadscout/internal/api/handlers"
	"github.com/leadscout-hq/leadscout/internal/api/middleware"
)

type RouterConfig struct {
	SearchHandler *handlers.SearchHandler
	Log           zerolog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(cfg.Log))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/search", func(r chi.Router) {
			r.Post("/jobs", cfg.SearchHandler.SearchJobs)
			r.Get("/jobs/state", cfg.SearchHandler.JobsState)
			r.Post("/people", cfg.SearchHandler.SearchPeople)
			r.Get("/people/state", cfg.SearchHandler.PeopleState)
		})

		r.Route("/results", func(r chi.Router) {
			r.Get("/jobs", cfg.SearchHandler.JobsResults)
			r.Get("/people", cfg.SearchHandler.PeopleResults)
		})
	})

	return r
}
