// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "riskprofile_backend/internals/helpers"
)

// RequireRoles menolak request bila role di token bukan salah satu dari allowed.
// Dipasang setelah AuthMiddleware.
func RequireRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak. Role tidak memadai.")
	}
}
