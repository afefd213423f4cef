package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/middleware"
	"github.com/jihoon-lab/coinboard-api/internal/service"
)

func parseParamID(c *fiber.Ctx, key string) (uint, error) {
	raw := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(parsed), nil
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func userIDFromContext(c *fiber.Ctx) uint {
	if v := c.Locals(middleware.LocalsUserID); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func actorFromContext(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: userIDFromContext(c)}
	if v, ok := c.Locals(middleware.LocalsNickname).(string); ok {
		actor.Nickname = v
	}
	if v, ok := c.Locals(middleware.LocalsRole).(string); ok {
		actor.Role = v
	}
	return actor
}

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
