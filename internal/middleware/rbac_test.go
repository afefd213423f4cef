package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jihoon-lab/coinboard-api/internal/middleware"
)

func newRoleApp(role interface{}) *fiber.App {
	app := fiber.New()
	if role != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.LocalsUserID, uint(1))
			c.Locals(middleware.LocalsRole, role)
			return c.Next()
		})
	}
	app.Get("/admin/posts", middleware.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRoleRejectsAnonymous(t *testing.T) {
	app := newRoleApp(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	app := newRoleApp("user")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	app := newRoleApp("admin")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleNormalizesCase(t *testing.T) {
	app := newRoleApp("  Admin ")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Post("/create-post", middleware.RequireAuth(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/create-post", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
