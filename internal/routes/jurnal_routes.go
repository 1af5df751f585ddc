package routes

import (
	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/handler"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"
	"jurnal-guru-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupJurnalRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	uc := usecase.NewJurnalUsecase(db, cfg.Timezone, log)
	hdl := handler.NewJurnalHandler(uc, cfg.Timezone, log)
	jadwalHdl := handler.NewJadwalHandler(repository.NewJadwalRepository(db), log)
	guruRepo := repository.NewGuruRepository(db)

	// Admin Routes
	admin := app.Group("/api/admin/jurnal", middleware.Auth(cfg.JWTSecret), middleware.Role(model.RoleAdmin))
	admin.Get("/", hdl.AdminList)
	admin.Get("/:id", hdl.AdminGet)
	admin.Delete("/:id", hdl.AdminDelete)

	// Guru Routes
	guru := app.Group("/api/guru",
		middleware.Auth(cfg.JWTSecret),
		middleware.Role(model.RoleGuru),
		middleware.ResolveGuru(guruRepo, log),
	)
	guru.Get("/jadwal", jadwalHdl.GetMine)
	guru.Get("/jadwal/hari-ini", hdl.JadwalHariIni)
	guru.Get("/jadwal/:id/siswa", hdl.Roster)
	guru.Get("/jurnal", hdl.GuruList)
	guru.Post("/jurnal", hdl.Create)
	guru.Get("/jurnal/:id", hdl.GuruGet)
	guru.Put("/jurnal/:id", hdl.Update)
}
