package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler)

		r.Route("/settlements", func(r chi.Router) {
			r.Use(mw.BearerAuth)
			r.Post("/", h.TriggerSettlement)
		})
	})

	return mux
}
