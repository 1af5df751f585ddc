package routes

import (
	"jurnal-guru-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup mendaftarkan seluruh route aplikasi.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupDashboardRoutes(app, db, cfg, log)
	SetupReportRoutes(app, db, cfg, log)
	SetupJurnalRoutes(app, db, cfg, log)
	SetupHariLiburRoutes(app, db, cfg, log)
}
