package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Headers exposed to browser clients in addition to the CORS safelist.
var exposedHeaders = []string{traceIDHeader, soapFaultHeader}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut,
			http.MethodPatch, http.MethodPost, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: exposedHeaders,
	}))
	router.Use(h.withLocale)

	router.Get("/health", h.health)

	router.Get("/api/version", h.getServerVersion)
	router.With(middleware.RequestSize(h.maxBodyBytes)).Post("/api/sign", h.sign)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
