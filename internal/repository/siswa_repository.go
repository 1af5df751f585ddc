package repository

import (
	"context"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SiswaRepository interface {
	FindByKelas(ctx context.Context, kelasID uuid.UUID) ([]model.Siswa, error)
}

type siswaRepository struct {
	db *gorm.DB
}

func NewSiswaRepository(db *gorm.DB) SiswaRepository {
	return &siswaRepository{db}
}

func (r *siswaRepository) FindByKelas(ctx context.Context, kelasID uuid.UUID) ([]model.Siswa, error) {
	var list []model.Siswa
	err := r.db.WithContext(ctx).Where("kelas_id = ?", kelasID).Order("nama asc").Find(&list).Error
	return list, err
}
