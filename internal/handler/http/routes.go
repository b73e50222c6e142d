package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
	})

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, struct{}{})
	})

	return router
}
