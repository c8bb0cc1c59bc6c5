package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is fixed: body limit, CORS,
// trace id, access log.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withBodyLimit, h.withCORS, h.withTraceID, h.withLogging)

	router.Get("/", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route("/resources", func(r chi.Router) {
		r.Post("/", h.createResource)
		r.Get("/", h.listResources)
		r.Get("/{id}", h.getResource)
		r.Patch("/{id}", h.updateResource)
		r.Delete("/{id}", h.deleteResource)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
