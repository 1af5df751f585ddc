package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	SemesterGanjil = "GANJIL"
	SemesterGenap  = "GENAP"
)

// Jadwal adalah slot mengajar mingguan yang berulang.
type Jadwal struct {
	Base
	GuruID          uuid.UUID `json:"guru_id" gorm:"type:char(36);not null;uniqueIndex:idx_jadwal_slot,priority:1"`
	KelasID         uuid.UUID `json:"kelas_id" gorm:"type:char(36);not null;uniqueIndex:idx_jadwal_slot,priority:2"`
	MataPelajaranID uuid.UUID `json:"mata_pelajaran_id" gorm:"type:char(36);not null;uniqueIndex:idx_jadwal_slot,priority:3"`
	Hari            int       `json:"hari" gorm:"not null;index;uniqueIndex:idx_jadwal_slot,priority:4"` // 0=Minggu, 1=Senin, ..., 6=Sabtu
	JamMulai        string    `json:"jam_mulai" gorm:"size:5;not null;uniqueIndex:idx_jadwal_slot,priority:5"`
	JamSelesai      string    `json:"jam_selesai" gorm:"size:5;not null"`
	Semester        string    `json:"semester" gorm:"size:8;not null;uniqueIndex:idx_jadwal_slot,priority:6"`
	TahunAjaran     string    `json:"tahun_ajaran" gorm:"size:9;not null;uniqueIndex:idx_jadwal_slot,priority:7"` // "2025/2026"

	Guru          *Guru          `json:"guru,omitempty" gorm:"foreignKey:GuruID"`
	Kelas         *Kelas         `json:"kelas,omitempty" gorm:"foreignKey:KelasID"`
	MataPelajaran *MataPelajaran `json:"mata_pelajaran,omitempty" gorm:"foreignKey:MataPelajaranID"`
}

func (Jadwal) TableName() string { return "jadwals" }

// JatuhPada true jika slot ini berlangsung pada hari dari tanggal t.
func (j Jadwal) JatuhPada(t time.Time) bool {
	return j.Hari == int(t.Weekday())
}
