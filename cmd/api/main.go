package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"jurnal-guru-backend/config"
	"jurnal-guru-backend/internal/notifier"
	"jurnal-guru-backend/internal/report"
	"jurnal-guru-backend/internal/routes"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg)
	defer log.Sync()

	log.Info("mencoba koneksi ke database", zap.String("driver", cfg.DBDriver))
	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("koneksi database gagal", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:     "Jurnal Guru API",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		ReadTimeout: 15 * time.Second,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(cors.New()) // Agar API bisa diakses dari domain/port lain
	app.Use(compress.New())
	app.Use(logger.New()) // Log request di terminal

	routes.Setup(app, db, cfg, log)

	if cfg.DigestCron != "" {
		svc := report.NewService(report.NewRepositoryStore(db), func() time.Time {
			return time.Now().In(cfg.Timezone)
		})
		digest := notifier.NewDigest(svc, notifier.NewSMTPMailer(cfg.SMTP()), cfg.DigestRecipients, log)
		c, err := notifier.Schedule(cfg.DigestCron, cfg.Timezone, digest, log)
		if err != nil {
			log.Fatal("jadwal digest tidak valid", zap.Error(err))
		}
		defer c.Stop()
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("mematikan server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("shutdown gagal", zap.Error(err))
		}
	}()

	log.Info("server siap", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal("server berhenti", zap.Error(err))
	}
}
