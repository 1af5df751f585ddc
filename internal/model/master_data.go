package model

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleGuru  Role = "GURU"
)

type User struct {
	Base
	Username string `json:"username" gorm:"size:64;unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"size:16;not null"`
}

func (User) TableName() string { return "users" }

type Guru struct {
	Base
	UserID uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex;not null"`
	Nama   string    `json:"nama" gorm:"not null"`
	NIP    string    `json:"nip" gorm:"column:nip;size:32"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Guru) TableName() string { return "gurus" }

type Kelas struct {
	Base
	Nama    string  `json:"nama" gorm:"size:64;not null"` // Contoh: "X IPA 1"
	Tingkat int     `json:"tingkat" gorm:"not null"`
	Jurusan *string `json:"jurusan,omitempty" gorm:"size:64"`
}

func (Kelas) TableName() string { return "kelas" }

type MataPelajaran struct {
	Base
	Nama string  `json:"nama" gorm:"size:128;not null"`
	Kode *string `json:"kode,omitempty" gorm:"size:32"`
}

func (MataPelajaran) TableName() string { return "mata_pelajarans" }

type JenisKelamin string

const (
	LakiLaki  JenisKelamin = "L"
	Perempuan JenisKelamin = "P"
)

type Siswa struct {
	Base
	NISN         string       `json:"nisn" gorm:"column:nisn;size:20;unique;not null"`
	Nama         string       `json:"nama" gorm:"size:128;not null"`
	JenisKelamin JenisKelamin `json:"jenis_kelamin" gorm:"size:1;not null"`
	KelasID      uuid.UUID    `json:"kelas_id" gorm:"type:char(36);index;not null"`

	Kelas *Kelas `json:"kelas,omitempty" gorm:"foreignKey:KelasID"`
}

func (Siswa) TableName() string { return "siswas" }

type HariLibur struct {
	Base
	Tanggal    string `json:"tanggal" gorm:"size:10;unique;not null"` // Format YYYY-MM-DD
	Keterangan string `json:"keterangan"`
}

func (HariLibur) TableName() string { return "hari_liburs" }
