package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// RequireRole ensures the authenticated user possesses one of the
// allowed roles. Anonymous requests fail the same way as wrong-role
// requests, matching the board's moderation surface.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role := normalizeRoleValue(c.Locals(LocalsRole))
		if _, ok := allowed[role]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "접근 권한이 없습니다.")
		}
		return c.Next()
	}
}

func normalizeRoleValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.ToLower(strings.TrimSpace(v))
	case fmt.Stringer:
		return strings.ToLower(strings.TrimSpace(v.String()))
	default:
		if value == nil {
			return ""
		}
		return strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", value)))
	}
}
