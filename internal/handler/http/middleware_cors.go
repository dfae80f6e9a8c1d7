package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins without credentials. An empty
// list means any origin.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	origins := h.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}
