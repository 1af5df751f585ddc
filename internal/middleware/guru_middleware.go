package middleware

import (
	"jurnal-guru-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ResolveGuru mencari profil guru milik user di token dan menyimpannya sebagai guru_id.
func ResolveGuru(repo repository.GuruRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return unauthorized(c, "Token tidak ditemukan")
		}

		guru, err := repo.FindByUserID(c.UserContext(), userID)
		if err != nil {
			if repository.IsNotFound(err) {
				return forbidden(c, "Akses ditolak: akun tidak terhubung dengan data guru")
			}
			log.Error("gagal memuat profil guru", zap.String("user_id", userID.String()), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    fiber.StatusInternalServerError,
				"status":  "error",
				"message": "Gagal memvalidasi akun guru",
			})
		}

		c.Locals(LocalGuruID, guru.ID)
		return c.Next()
	}
}
