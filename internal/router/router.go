package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jihoon-lab/coinboard-api/internal/config"
	"github.com/jihoon-lab/coinboard-api/internal/handler"
	"github.com/jihoon-lab/coinboard-api/internal/middleware"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	AdminHandler   *handler.AdminHandler
}

// Register wires the HTTP routes into the fiber application. The board
// front end predates any /api prefix, so content routes stay at the
// root.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/uploads", cfg.UploadDir)

	credentialLimiter := middleware.RateLimit("credentials", 10, time.Minute)
	auth := middleware.RequireAuth()

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(app, credentialLimiter)
	}

	if deps.PostHandler != nil {
		deps.PostHandler.Register(app, auth)
	}

	if deps.CommentHandler != nil {
		deps.CommentHandler.Register(app, auth)
	}

	if deps.AdminHandler != nil {
		admin := app.Group("/admin", auth, middleware.RequireRole("admin"))
		deps.AdminHandler.Register(admin)
	}
}
