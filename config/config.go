package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"jurnal-guru-backend/internal/notifier"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	AppPort  string
	Timezone *time.Location

	DBDriver      string
	DBDSN         string
	DBAutoMigrate bool

	JWTSecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	DigestCron       string
	DigestRecipients []string
}

// Load membaca .env (jika ada) lalu environment variables sistem.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	loc, err := time.LoadLocation(GetEnv("TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		log.Printf("Warning: TIMEZONE tidak valid (%v), memakai Local", err)
		loc = time.Local
	}

	cfg := &Config{
		AppEnv:   GetEnv("APP_ENV", "development"),
		AppPort:  GetEnv("APP_PORT", "3000"),
		Timezone: loc,

		DBDriver:      strings.ToLower(GetEnv("DB_DRIVER", "mysql")),
		DBAutoMigrate: GetEnvAsBool("DB_AUTO_MIGRATE", true),

		JWTSecret: GetEnv("JWT_SECRET", "rahasia_sekolah"),

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnv("SMTP_FROM", "jurnal@sekolah.sch.id"),

		DigestCron:       GetEnv("DIGEST_CRON", ""),
		DigestRecipients: GetEnvAsList("DIGEST_RECIPIENTS"),
	}
	cfg.DBDSN = GetEnv("DB_DSN", defaultDSN(cfg.DBDriver, loc))
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) SMTP() notifier.SMTPConfig {
	return notifier.SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		User:     c.SMTPUser,
		Password: c.SMTPPassword,
		From:     c.SMTPFrom,
	}
}

// defaultDSN menyamakan zona waktu koneksi dengan TIMEZONE aplikasi,
// supaya kolom DATE tidak bergeser sehari saat dikirim driver.
func defaultDSN(driver string, loc *time.Location) string {
	user := GetEnv("DB_USER", "root")
	pass := GetEnv("DB_PASSWORD", "")
	host := GetEnv("DB_HOST", "127.0.0.1")
	name := GetEnv("DB_NAME", "jurnal_guru")

	if driver == "postgres" {
		return "host=" + host +
			" user=" + user +
			" password=" + pass +
			" dbname=" + name +
			" port=" + GetEnv("DB_PORT", "5432") +
			" sslmode=" + GetEnv("DB_SSLMODE", "disable") +
			" TimeZone=" + pgTimeZone(loc)
	}
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Asia%2FJakarta
	return user + ":" + pass + "@tcp(" + host + ":" + GetEnv("DB_PORT", "3306") + ")/" + name +
		"?charset=utf8mb4&parseTime=True&loc=" + url.QueryEscape(loc.String())
}

// Postgres tidak mengenal "Local"; pakai nama zona sistem dari env TZ bila ada.
func pgTimeZone(loc *time.Location) string {
	if loc == time.Local {
		if tz := os.Getenv("TZ"); tz != "" {
			return tz
		}
		return "UTC"
	}
	return loc.String()
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsBool menerima nilai yang dikenali strconv.ParseBool (1, true, false, ...).
func GetEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(GetEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// GetEnvAsList memecah nilai dipisah koma, entri kosong dibuang.
func GetEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(GetEnv(key, ""), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
