package config

import (
	"fmt"
	"time"

	"jurnal-guru-backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DBDSN,
			PreferSimpleProtocol: true,
		})
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().In(cfg.Timezone)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	if cfg.DBAutoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			return nil, fmt.Errorf("gagal migrasi: %w", err)
		}
	}

	log.Info("koneksi database berhasil", zap.String("driver", cfg.DBDriver))
	return db, nil
}
