package auth

import (
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/constants"
)

// IsAdmin hanya meloloskan user ber-role admin.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin")
		}
		return c.Next()
	}
}

// IsEmployee hanya meloloskan user ber-role employee.
func IsEmployee() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != constants.RoleEmployee {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus karyawan")
		}
		return c.Next()
	}
}
