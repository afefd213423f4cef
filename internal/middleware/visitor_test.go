package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jihoon-lab/coinboard-api/internal/middleware"
)

type visitorRecorderStub struct {
	calls chan string
}

func (v *visitorRecorderStub) Record(_ context.Context, ip string) error {
	v.calls <- ip
	return nil
}

func TestVisitorLoggingDoesNotBlockResponse(t *testing.T) {
	recorder := &visitorRecorderStub{calls: make(chan string, 1)}

	app := fiber.New()
	app.Use(middleware.VisitorLogging(recorder))
	app.Get("/posts", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	select {
	case ip := <-recorder.calls:
		require.NotEmpty(t, ip)
	case <-time.After(time.Second):
		t.Fatal("expected a visit to be recorded")
	}
}

func TestVisitorLoggingRunsOnErrorResponses(t *testing.T) {
	recorder := &visitorRecorderStub{calls: make(chan string, 1)}

	app := fiber.New()
	app.Use(middleware.VisitorLogging(recorder))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	select {
	case <-recorder.calls:
	case <-time.After(time.Second):
		t.Fatal("expected a visit to be recorded even on error responses")
	}
}
