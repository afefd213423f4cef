package middleware

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/session"
)

// Config customises the middleware registration pipeline.
type Config struct {
	Logger        *zerolog.Logger
	Sessions      session.Store
	SessionCookie string
	Visitors      VisitorRecorder
}

// Register attaches the common middlewares used across the board API.
// Order matters: visitor logging wraps everything that serves content,
// and session loading runs before any route guard.
func Register(app *fiber.App, cfg Config) {
	requestLogger := zerolog.New(io.Discard)
	if cfg.Logger != nil {
		requestLogger = *cfg.Logger
	}

	app.Use(recover.New())
	app.Use(CorrelationID())
	app.Use(Observability(requestLogger))
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,OPTIONS",
	}))

	if cfg.Visitors != nil {
		app.Use(VisitorLogging(cfg.Visitors))
	}

	if cfg.Sessions != nil {
		app.Use(LoadSession(cfg.Sessions, cfg.SessionCookie, requestLogger))
	}
}
