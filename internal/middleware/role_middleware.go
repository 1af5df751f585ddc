package middleware

import (
	"jurnal-guru-backend/internal/model"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		userRole, ok := c.Locals(LocalRole).(string)
		if !ok {
			return forbidden(c, "Akses ditolak: Role tidak valid")
		}

		for _, role := range allowedRoles {
			if string(role) == userRole {
				return c.Next()
			}
		}

		return forbidden(c, "Akses ditolak: role "+userRole+" tidak diizinkan")
	}
}
