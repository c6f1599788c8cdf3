package web

import (
	"github.com/go-chi/chi/v5"
	"github.com/kozaktomas/photo-collage/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	layoutsHandler := handlers.NewLayoutsHandler(s.config)
	templatesHandler := handlers.NewTemplatesHandler(s.config)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Layout generation
		r.Post("/layouts", layoutsHandler.Generate)

		// Template inspection
		r.Get("/templates", templatesHandler.List)
	})
}
