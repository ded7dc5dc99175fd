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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes guarded by a bearer session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.With(h.verifyHashing).Post("/api/auth/verify", h.verifyPassword)
		r.Post("/api/session/unlock-database", h.unlockDatabase)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
