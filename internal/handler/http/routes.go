package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Get("/", h.greet)

	router.Route("/items", func(r chi.Router) {
		r.Post("/", h.createItem)
		r.Get("/{itemID}", h.getItemByID)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
