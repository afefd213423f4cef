package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/session"
	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// Locals keys populated by LoadSession for downstream handlers.
const (
	LocalsUserID   = "user_id"
	LocalsNickname = "user_nickname"
	LocalsRole     = "user_role"
)

// LoadSession resolves the session cookie against the store and places
// the authenticated identity in request locals. Anonymous requests and
// stale tokens continue without identity; route guards decide access.
func LoadSession(store session.Store, cookieName string, logger zerolog.Logger) fiber.Handler {
	sessionLogger := logger.With().Str("component", "session_middleware").Logger()

	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}

		record, err := store.Get(c.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				sessionLogger.Warn().Err(err).Msg("failed to load session")
			}
			return c.Next()
		}

		c.Locals(LocalsUserID, record.UserID)
		c.Locals(LocalsNickname, record.Nickname)
		c.Locals(LocalsRole, record.Role)

		return c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalsUserID) == nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "로그인이 필요합니다.")
		}
		return c.Next()
	}
}
