package server

import (
	"net/http"

	"github.com/fikanova/portfolio/internal/handlers"
	"github.com/fikanova/portfolio/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	pageHandler := handlers.NewPageHandler(s.Resolver, s.sanity, s.Site, s.assets)
	contactHandler := handlers.NewContactHandler(s.contact, s.Resolver, s.Site)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", pageHandler.HomeGet)
	s.E.GET("/about", pageHandler.AboutGet)
	s.E.GET("/projects", pageHandler.ProjectsGet)
	s.E.GET("/projects/:slug", pageHandler.ProjectDetailGet)
	s.E.GET("/experience", pageHandler.ExperienceGet)
	s.E.GET("/services", pageHandler.ServicesGet)
	s.E.GET("/cv", pageHandler.CVGet)

	s.E.GET("/contact", contactHandler.ContactGet)
	s.E.POST("/contact", contactHandler.ContactPostForm, rateLimiter)
	s.E.POST("/api/contact", contactHandler.ContactPostAPI, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Unroutable paths get the designed 404 page instead of echo's default.
	s.E.RouteNotFound("/*", pageHandler.NotFoundGet)
}
