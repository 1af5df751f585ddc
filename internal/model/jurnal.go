package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StatusKetercapaian string

const (
	Tercapai         StatusKetercapaian = "TERCAPAI"
	TercapaiSebagian StatusKetercapaian = "SEBAGIAN"
	TidakTercapai    StatusKetercapaian = "TIDAK_TERCAPAI"
)

type StatusAbsensi string

const (
	Hadir StatusAbsensi = "HADIR"
	Sakit StatusAbsensi = "SAKIT"
	Izin  StatusAbsensi = "IZIN"
	Alpa  StatusAbsensi = "ALPA"
)

func (s StatusAbsensi) Valid() bool {
	switch s {
	case Hadir, Sakit, Izin, Alpa:
		return true
	}
	return false
}

type JenisTag string

const (
	TagRemedial  JenisTag = "REMEDIAL"
	TagPengayaan JenisTag = "PENGAYAAN"
	TagPerilaku  JenisTag = "PERILAKU"
	TagRujukanBK JenisTag = "RUJUKAN_BK"
)

// Jurnal: satu entri per (jadwal, tanggal).
type Jurnal struct {
	Base
	JadwalID           uuid.UUID          `json:"jadwal_id" gorm:"type:char(36);not null;uniqueIndex:idx_jurnal_jadwal_tanggal,priority:1"`
	Tanggal            datatypes.Date     `json:"tanggal" gorm:"type:date;not null;index;uniqueIndex:idx_jurnal_jadwal_tanggal,priority:2"`
	TujuanPembelajaran string             `json:"tujuan_pembelajaran" gorm:"type:text"`
	Kegiatan           string             `json:"kegiatan" gorm:"type:text"`
	Penilaian          string             `json:"penilaian" gorm:"type:text"`
	CatatanKhusus      string             `json:"catatan_khusus" gorm:"type:text"`
	LinkBukti          *string            `json:"link_bukti,omitempty" gorm:"size:512"`
	StatusKetercapaian StatusKetercapaian `json:"status_ketercapaian" gorm:"size:16;not null"`

	Jadwal   *Jadwal          `json:"jadwal,omitempty" gorm:"foreignKey:JadwalID"`
	Absensi  []Absensi        `json:"absensi,omitempty" gorm:"foreignKey:JurnalID"`
	TagSiswa []TagSiswaRecord `json:"tag_siswa,omitempty" gorm:"foreignKey:JurnalID"`
}

func (Jurnal) TableName() string { return "jurnals" }

func (j Jurnal) TanggalTime() time.Time {
	return time.Time(j.Tanggal)
}

type Absensi struct {
	Base
	JurnalID uuid.UUID     `json:"jurnal_id" gorm:"type:char(36);not null;uniqueIndex:idx_absensi_jurnal_siswa,priority:1"`
	SiswaID  uuid.UUID     `json:"siswa_id" gorm:"type:char(36);not null;uniqueIndex:idx_absensi_jurnal_siswa,priority:2"`
	Status   StatusAbsensi `json:"status" gorm:"size:8;not null;index"`

	Jurnal *Jurnal `json:"jurnal,omitempty" gorm:"foreignKey:JurnalID"`
	Siswa  *Siswa  `json:"siswa,omitempty" gorm:"foreignKey:SiswaID"`
}

func (Absensi) TableName() string { return "absensis" }

// TagSiswaRecord menandai siswa yang perlu tindak lanjut pada jurnal tertentu.
type TagSiswaRecord struct {
	Base
	JurnalID uuid.UUID `json:"jurnal_id" gorm:"type:char(36);not null;index"`
	SiswaID  uuid.UUID `json:"siswa_id" gorm:"type:char(36);not null"`
	Tag      JenisTag  `json:"tag" gorm:"size:16;not null"`
	Catatan  *string   `json:"catatan,omitempty" gorm:"type:text"`

	Siswa *Siswa `json:"siswa,omitempty" gorm:"foreignKey:SiswaID"`
}

func (TagSiswaRecord) TableName() string { return "tag_siswa_records" }
