package routes

import (
	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/handler"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupHariLiburRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	hdl := handler.NewHariLiburHandler(repository.NewHariLiburRepository(db), cfg.Timezone, log)

	api := app.Group("/api/admin/hari-libur", middleware.Auth(cfg.JWTSecret), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Delete("/:id", hdl.Delete)
}
