package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface and the token-gated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/skills", handlers.skillHandler.getFeaturedSkills())
		r.Get("/api/projects", handlers.projectHandler.getFeaturedProjects())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getFeaturedProject())
		r.Get("/api/poems", handlers.contentHandler.getPoems())
		r.Get("/api/books", handlers.contentHandler.getBooks())
		r.Get("/api/discussions", handlers.contentHandler.getDiscussions())
		r.Post("/api/contact", handlers.contactHandler.submitMessage())
		r.Post("/api/analytics/pageview", handlers.analyticsHandler.trackPageView())

		r.Post("/api/admin/login", handlers.authHandler.login())
	})

	// Admin routes behind the bearer-token gate. Logging wraps the gate so
	// rejected requests still show up in the access log.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/api/admin/me", handlers.authHandler.me())
		r.Post("/api/admin/change-password", handlers.authHandler.changePassword())

		r.Get("/api/admin/projects", handlers.projectHandler.getAllProjects())
		r.Post("/api/admin/projects", handlers.projectHandler.createProject())
		r.Put("/api/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Get("/api/admin/skills", handlers.skillHandler.getAllSkills())
		r.Post("/api/admin/skills", handlers.skillHandler.createSkill())
		r.Put("/api/admin/skills/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/api/admin/skills/{skillID}", handlers.skillHandler.deleteSkill())

		r.Get("/api/admin/analytics/overview", handlers.analyticsHandler.getOverview())
	})
}
