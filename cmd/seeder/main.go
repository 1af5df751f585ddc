package main

import (
	"fmt"
	"time"

	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/database"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"

	"go.uber.org/zap"
)

// Token development berlaku 30 hari.
const devTokenTTL = 30 * 24 * time.Hour

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg)
	defer log.Sync()

	log.Info("memulai database seeding")
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("koneksi database gagal", zap.Error(err))
	}

	res, err := database.SeedAll(db, log)
	if err != nil {
		log.Fatal("seeding gagal", zap.Error(err))
	}

	if cfg.IsProduction() {
		return
	}

	// Token development, login berada di luar layanan ini
	token, err := middleware.GenerateToken(cfg.JWTSecret, res.Admin.ID, model.RoleAdmin, devTokenTTL)
	if err != nil {
		log.Fatal("gagal membuat token", zap.Error(err))
	}
	fmt.Printf("ADMIN  admin  %s\n", token)
	for _, g := range res.Gurus {
		token, err := middleware.GenerateToken(cfg.JWTSecret, g.UserID, model.RoleGuru, devTokenTTL)
		if err != nil {
			log.Fatal("gagal membuat token", zap.Error(err))
		}
		fmt.Printf("GURU   %s  %s\n", g.Nama, token)
	}
}
