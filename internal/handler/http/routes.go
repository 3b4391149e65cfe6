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
	router.Use(h.withCORS)

	router.Get("/", h.root)
	router.Get("/api/plans", h.listPlans)

	router.Post("/api/auth/signup", h.signup)
	router.Post("/api/auth/login", h.login)
	router.Get("/api/auth/me", h.me)

	router.Post("/api/blog", h.createBlogPost)
	router.Get("/api/blog", h.listBlogPosts)

	router.Post("/api/contact", h.submitContact)

	router.Get("/test", h.diagnostic)

	return router
}
