package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// VisitorRecorder records a visit for a client address. Implementations
// own dedup and error reporting; the middleware never inspects the result.
type VisitorRecorder interface {
	Record(ctx context.Context, ip string) error
}

// VisitorLogging dispatches a fire-and-forget visit record after the
// handler chain has produced its response. The response never waits on
// or depends on the outcome. The IP is captured before c.Next because
// fiber recycles its contexts.
func VisitorLogging(recorder VisitorRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		err := c.Next()

		go func() {
			_ = recorder.Record(context.Background(), ip)
		}()

		return err
	}
}
