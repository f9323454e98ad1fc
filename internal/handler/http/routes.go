package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/login", h.login)
	})

	// every asset route passes the token guard first
	router.Route("/assets", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listAssets)
		r.Post("/", h.createAsset)
		r.Put("/{id}", h.updateAsset)
		r.Delete("/{id}", h.deleteAsset)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
