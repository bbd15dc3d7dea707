package middleware

import (
	"github.com/gofiber/fiber/v2"

	"employee-management-backend/models"
)

// StaffMiddleware allows admins and managers through. Regular employees are
// rejected, which is how report endpoints stay invisible to them.
func StaffMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or session data corrupted"})
		}

		if claims.Role != models.RoleAdmin && claims.Role != models.RoleManager {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Admin or manager privileges required"})
		}

		return c.Next()
	}
}
