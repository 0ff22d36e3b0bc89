package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/internal/transport/httpserver/dto"
)

// UsernameKey is the fiber.Ctx local under which the authenticated admin
// username is stored.
const UsernameKey = "admin_username"

// RequireAdmin returns a middleware that rejects requests without a valid
// bearer token. On success the admin username is stored in the request
// locals.
func RequireAdmin(admin *service.AdminService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "missing bearer token",
			})
		}

		username, err := admin.Verify(token)
		if err != nil {
			logger.Debug("rejected admin request",
				zap.String("path", c.Path()),
				zap.Error(err),
			)

			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: "invalid or expired token",
			})
		}

		c.Locals(UsernameKey, username)

		return c.Next()
	}
}
