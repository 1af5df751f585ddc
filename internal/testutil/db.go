package testutil

import (
	"fmt"
	"testing"
	"time"

	"jurnal-guru-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PrepareDB membuka database SQLite in-memory yang sudah dimigrasi. Satu database per test.
func PrepareDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("PrepareDB() migrate failed: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T failed: %v", value, err)
	}
}

func CreateGuru(t *testing.T, db *gorm.DB, nama string) model.Guru {
	user := model.User{Username: "u-" + uuid.NewString()[:8], Password: "x", Role: model.RoleGuru}
	mustCreate(t, db, &user)
	guru := model.Guru{UserID: user.ID, Nama: nama}
	mustCreate(t, db, &guru)
	return guru
}

func CreateKelas(t *testing.T, db *gorm.DB, nama string) model.Kelas {
	kelas := model.Kelas{Nama: nama, Tingkat: 10}
	mustCreate(t, db, &kelas)
	return kelas
}

func CreateMapel(t *testing.T, db *gorm.DB, nama string) model.MataPelajaran {
	mapel := model.MataPelajaran{Nama: nama}
	mustCreate(t, db, &mapel)
	return mapel
}

func CreateSiswa(t *testing.T, db *gorm.DB, kelas model.Kelas, nama string) model.Siswa {
	siswa := model.Siswa{
		NISN:         uuid.NewString()[:10],
		Nama:         nama,
		JenisKelamin: model.LakiLaki,
		KelasID:      kelas.ID,
	}
	mustCreate(t, db, &siswa)
	return siswa
}

func CreateJadwal(t *testing.T, db *gorm.DB, guru model.Guru, kelas model.Kelas, mapel model.MataPelajaran, hari time.Weekday, jamMulai string) model.Jadwal {
	jadwal := model.Jadwal{
		GuruID:          guru.ID,
		KelasID:         kelas.ID,
		MataPelajaranID: mapel.ID,
		Hari:            int(hari),
		JamMulai:        jamMulai,
		JamSelesai:      "23:59",
		Semester:        model.SemesterGanjil,
		TahunAjaran:     "2026/2027",
	}
	mustCreate(t, db, &jadwal)
	return jadwal
}

func CreateHariLibur(t *testing.T, db *gorm.DB, tanggal, keterangan string) model.HariLibur {
	libur := model.HariLibur{Tanggal: tanggal, Keterangan: keterangan}
	mustCreate(t, db, &libur)
	return libur
}

// Date membuat tanggal tengah malam UTC.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
