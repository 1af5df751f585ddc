package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base dipakai semua tabel: primary key UUID yang dibuat di sisi aplikasi.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All mengembalikan model untuk AutoMigrate, urut sesuai dependensi foreign key.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Guru{},
		&Kelas{},
		&MataPelajaran{},
		&Siswa{},
		&HariLibur{},
		&Jadwal{},
		&Jurnal{},
		&Absensi{},
		&TagSiswaRecord{},
	}
}
