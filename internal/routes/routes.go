package routes

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"named-colors-backend/internal/handler"
	"named-colors-backend/internal/middleware"
)

// Setup registriert globale Middleware und alle Farb-Endpunkte am Router.
func Setup(r chi.Router, h *handler.ColorHandler, logger *zap.Logger, rps float64) {
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.RateLimit(rps, logger))

	r.Route("/colors", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{name}", h.GetByName)
	})
}
