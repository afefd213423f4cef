package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/middleware"
	"github.com/jihoon-lab/coinboard-api/internal/service"
	"github.com/jihoon-lab/coinboard-api/internal/session"
	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// AuthHandler handles registration, login and session lifecycle. The
// session cookie carries an opaque token; the identity itself lives in
// the session store.
type AuthHandler struct {
	service    service.AuthService
	sessions   session.Store
	cookieName string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, sessions session.Store, cookieName string, sessionTTL time.Duration, logger zerolog.Logger) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthHandler{
		service:    service,
		sessions:   sessions,
		cookieName: cookieName,
		sessionTTL: sessionTTL,
		logger:     logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the auth routes. The limiter guards the two
// credential endpoints against brute force.
func (h *AuthHandler) Register(router fiber.Router, limiter fiber.Handler) {
	router.Post("/signup", limiter, h.signup)
	router.Post("/login", limiter, h.login)
	router.Get("/logout", h.logout)
	router.Get("/get-user", middleware.RequireAuth(), h.getUser)
}

func (h *AuthHandler) signup(c *fiber.Ctx) error {
	var payload dto.SignupRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "모든 필드를 입력해 주세요.")
	}

	user, err := h.service.Signup(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "모든 필드를 입력해 주세요.")
		case errors.Is(err, service.ErrEmailTaken):
			return utils.SendError(c, fiber.StatusConflict, "이미 사용 중인 이메일입니다.")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("signup failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "회원가입에 실패했습니다.")
		}
	}

	return utils.SendSuccess(c, "회원가입 완료", user)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "모든 필드를 입력해 주세요.")
	}

	user, err := h.service.Login(c.Context(), payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "모든 필드를 입력해 주세요.")
		case errors.Is(err, service.ErrEmailNotFound):
			return utils.SendError(c, fiber.StatusUnauthorized, "이메일이 존재하지 않습니다.")
		case errors.Is(err, service.ErrPasswordMismatch):
			return utils.SendError(c, fiber.StatusUnauthorized, "비밀번호가 일치하지 않습니다.")
		case errors.Is(err, service.ErrSuspended):
			return utils.SendError(c, fiber.StatusForbidden, "정지된 계정입니다.")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("login failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "로그인에 실패했습니다.")
		}
	}

	token, err := h.sessions.Create(c.Context(), session.Record{
		UserID:   user.ID,
		Nickname: user.Nickname,
		Role:     user.Role,
	})
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create session")
		return utils.SendError(c, fiber.StatusInternalServerError, "로그인에 실패했습니다.")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return utils.SendSuccess(c, "로그인 성공", user)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			requestLogger(h.logger, c).Warn().Err(err).Msg("failed to destroy session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return utils.SendSuccess(c, "로그아웃 되었습니다.", nil)
}

func (h *AuthHandler) getUser(c *fiber.Ctx) error {
	actor := actorFromContext(c)
	return utils.SendSuccess(c, "", dto.SessionUserResponse{
		ID:       actor.ID,
		Nickname: actor.Nickname,
		Role:     actor.Role,
	})
}
