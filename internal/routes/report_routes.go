package routes

import (
	"time"

	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/handler"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB, cfg *config.Config) *report.Service {
	return report.NewService(report.NewRepositoryStore(db), func() time.Time {
		return time.Now().In(cfg.Timezone)
	})
}

func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	hdl := handler.NewReportHandler(newReportService(db, cfg), cfg.Timezone, log)

	api := app.Group("/api/admin/laporan", middleware.Auth(cfg.JWTSecret), middleware.Role(model.RoleAdmin))
	api.Get("/keterisian", hdl.GetKeterisian)
	api.Get("/absensi", hdl.GetAbsensi)
}
