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

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/user", h.register)
		r.Post("/session", h.signIn)
		r.Post("/reset-password", h.requestReset)
		r.Put("/reset-password", h.redeemReset)
	})

	return router
}
