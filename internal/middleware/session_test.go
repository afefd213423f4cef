package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jihoon-lab/coinboard-api/internal/middleware"
	"github.com/jihoon-lab/coinboard-api/internal/session"
)

const testCookie = "board_session"

func newSessionApp(t *testing.T) (*fiber.App, session.Store) {
	t.Helper()

	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	store := session.NewRedisStore(redis.NewClient(&redis.Options{Addr: mini.Addr()}), time.Hour)
	logger := zerolog.New(io.Discard)

	app := fiber.New()
	app.Use(middleware.LoadSession(store, testCookie, logger))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		nickname, _ := c.Locals(middleware.LocalsNickname).(string)
		if nickname == "" {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(nickname)
	})

	return app, store
}

func TestLoadSessionPopulatesLocals(t *testing.T) {
	app, store := newSessionApp(t)

	token, err := store.Create(context.Background(), session.Record{UserID: 3, Nickname: "jiho", Role: "user"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "jiho", string(body))
}

func TestLoadSessionIgnoresUnknownToken(t *testing.T) {
	app, _ := newSessionApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale-token"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoadSessionAllowsAnonymous(t *testing.T) {
	app, _ := newSessionApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
