package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the pages, the JSON API and the operational endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/write", h.writeForm)
	r.Post("/write", h.writeSubmit)
	r.Get("/search", h.search)
	r.Get("/timeline", h.timeline)
	r.Get("/random", h.random)
	r.Get("/letters", h.lettersForm)
	r.Post("/letters", h.lettersSubmit)

	r.Route("/api", h.RegisterAPIRoutes)

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	return r
}
