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
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.With(h.auth).Get("/me", h.me)
		})

		api.Route("/posts", func(r chi.Router) {
			r.With(h.identify).Get("/", h.listPosts)
			r.Get("/{id}", h.getPost)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createPost)
				r.Put("/{id}", h.updatePost)
				r.Delete("/{id}", h.deletePost)
			})
		})

		api.Route("/user", func(r chi.Router) {
			r.Get("/{username}/posts", h.userPosts)
			r.With(h.auth).Put("/profile", h.updateProfile)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
