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

	// health probe, outside the gate
	router.Get("/", h.health)

	// lookup routes behind the optional API-key gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/dni/{dni}", h.lookup)
		r.Post("/dni/lote", h.lookupBatch)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
