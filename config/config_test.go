package config

import (
	"os"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("JG_TEST_STR", "nilai")
	assert.Equal(t, "nilai", GetEnv("JG_TEST_STR", "x"))
	assert.Equal(t, "x", GetEnv("JG_TEST_TIDAK_ADA", "x"))

	t.Setenv("JG_TEST_KOSONG", "")
	assert.Equal(t, "", GetEnv("JG_TEST_KOSONG", "x"), "variabel kosong tetap dipakai")
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("JG_TEST_INT", "2525")
	assert.Equal(t, 2525, GetEnvAsInt("JG_TEST_INT", 1))

	t.Setenv("JG_TEST_INT", "dua")
	assert.Equal(t, 1, GetEnvAsInt("JG_TEST_INT", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("JG_TEST_BOOL", "false")
	assert.False(t, GetEnvAsBool("JG_TEST_BOOL", true))

	t.Setenv("JG_TEST_BOOL", "1")
	assert.True(t, GetEnvAsBool("JG_TEST_BOOL", false))

	t.Setenv("JG_TEST_BOOL", "ya")
	assert.True(t, GetEnvAsBool("JG_TEST_BOOL", true))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("JG_TEST_LIST", " a@sekolah.id, ,b@sekolah.id,")
	assert.Equal(t, []string{"a@sekolah.id", "b@sekolah.id"}, GetEnvAsList("JG_TEST_LIST"))
	assert.Nil(t, GetEnvAsList("JG_TEST_LIST_TIDAK_ADA"))
}

func TestDefaultDSN(t *testing.T) {
	t.Setenv("DB_USER", "guru")
	t.Setenv("DB_PASSWORD", "rahasia")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "jurnal")
	t.Setenv("DB_PORT", "3307")

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	assert.Equal(t,
		"guru:rahasia@tcp(db:3307)/jurnal?charset=utf8mb4&parseTime=True&loc=Asia%2FJakarta",
		defaultDSN("mysql", jakarta))

	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_SSLMODE", "require")
	assert.Equal(t,
		"host=db user=guru password=rahasia dbname=jurnal port=6543 sslmode=require TimeZone=Asia/Jakarta",
		defaultDSN("postgres", jakarta))

	t.Setenv("TZ", "")
	assert.Contains(t, defaultDSN("postgres", time.Local), "TimeZone=UTC")
}

// Driver MySQL mengonversi argumen time.Time ke Loc koneksi; Loc harus sama
// dengan TIMEZONE agar tanggal jurnal tidak bergeser.
func TestDefaultDSN_MySQLLocMatchesTimezone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(defaultDSN("mysql", jakarta))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", parsed.Loc.String())
	assert.True(t, parsed.ParseTime)

	midnight := time.Date(2026, time.October, 12, 0, 0, 0, 0, jakarta)
	assert.Equal(t, "2026-10-12", midnight.In(parsed.Loc).Format("2006-01-02"))
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "DB_DRIVER", "DB_DSN", "TIMEZONE", "SMTP_PORT", "DB_AUTO_MIGRATE", "DIGEST_CRON", "DIGEST_RECIPIENTS"} {
		t.Setenv(k, "")
	}
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost", cfg.DBDSN, "DB_DSN eksplisit dipakai apa adanya")
	assert.Equal(t, "UTC", cfg.Timezone.String())
	assert.Equal(t, 465, cfg.SMTP().Port)
	assert.False(t, cfg.DBAutoMigrate)
	assert.True(t, cfg.IsProduction())
	assert.Empty(t, cfg.DigestCron)
	assert.Empty(t, cfg.DigestRecipients)
}

func TestLoad_DSNFollowsTimezone(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("TIMEZONE", "Asia/Jakarta")
	t.Setenv("DB_DSN", "")
	os.Unsetenv("DB_DSN")

	cfg := Load()
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone.String())
	assert.Contains(t, cfg.DBDSN, "loc=Asia%2FJakarta")
}
