package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/itssoni10/ELance/internal/platform/security"
)

// JWTAuth guards protected routes. On success the user id and type from the
// token land in c.Locals("user_id") / c.Locals("user_type").
func JWTAuth(jwtMgr *security.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization token required",
			})
		}
		claims, err := jwtMgr.Verify(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}
		c.Locals("user_id", claims.UserID)
		c.Locals("user_type", claims.UserType)
		return c.Next()
	}
}
