package repository

import (
	"context"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JadwalFilter: field nil berarti tidak difilter.
type JadwalFilter struct {
	Semester    *string
	TahunAjaran *string
	KelasID     *uuid.UUID
	Hari        *int
}

func (f JadwalFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Semester != nil {
		q = q.Where("jadwals.semester = ?", *f.Semester)
	}
	if f.TahunAjaran != nil {
		q = q.Where("jadwals.tahun_ajaran = ?", *f.TahunAjaran)
	}
	if f.KelasID != nil {
		q = q.Where("jadwals.kelas_id = ?", *f.KelasID)
	}
	if f.Hari != nil {
		q = q.Where("jadwals.hari = ?", *f.Hari)
	}
	return q
}

type JadwalRepository interface {
	FindByGuru(ctx context.Context, guruID uuid.UUID, filter JadwalFilter) ([]model.Jadwal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Jadwal, error)
	CountByHari(ctx context.Context, hari int) (int64, error)
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db}
}

func (r *jadwalRepository) FindByGuru(ctx context.Context, guruID uuid.UUID, filter JadwalFilter) ([]model.Jadwal, error) {
	var jadwals []model.Jadwal
	query := r.db.WithContext(ctx).
		Preload("Kelas").Preload("MataPelajaran").
		Where("jadwals.guru_id = ?", guruID)
	err := filter.apply(query).
		Order("hari asc").Order("jam_mulai asc").
		Find(&jadwals).Error
	return jadwals, err
}

func (r *jadwalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	err := r.db.WithContext(ctx).
		Preload("Guru").Preload("Kelas").Preload("MataPelajaran").
		Where("id = ?", id).First(&jadwal).Error
	return &jadwal, err
}

func (r *jadwalRepository) CountByHari(ctx context.Context, hari int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Jadwal{}).Where("hari = ?", hari).Count(&count).Error
	return count, err
}
