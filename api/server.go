/*
server.go - HTTP router setup

PURPOSE:
  Wires the API handlers into a chi router with the standard middleware
  stack and CORS for the browser frontend.

SEE ALSO:
  - handlers.go: Endpoint implementations
  - cmd/server: Process entrypoint
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP router for the roster API.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/initial-data", h.GetInitialData)
		r.Post("/plan", h.SavePlan)
		r.Post("/coverage-report", h.CoverageReport)
		r.Post("/validate-schedule", h.ValidateSchedule)
		r.Post("/save-draft", h.SaveDraft)
		r.Post("/finalize-schedule", h.FinalizeSchedule)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
