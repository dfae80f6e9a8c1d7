package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withCORS, withGZip)

	router.Get("/", h.health)
	router.Get("/version", h.getServerVersion)

	router.Post("/notes", h.createNote)
	router.Get("/notes", h.listNotes)
	router.Get("/notes/{id}", h.getNote)
	router.Put("/notes/{id}", h.updateNote)
	router.Delete("/notes/{id}", h.deleteNote)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
