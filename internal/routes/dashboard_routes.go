package routes

import (
	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/handler"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	hdl := handler.NewDashboardHandler(newReportService(db, cfg), log)

	api := app.Group("/api/admin/dashboard", middleware.Auth(cfg.JWTSecret), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetStats)
}
