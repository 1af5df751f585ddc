package repository

import (
	"context"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HariLiburRepository interface {
	IsHoliday(ctx context.Context, date string) (bool, error)
	GetBetween(ctx context.Context, start, end string) ([]model.HariLibur, error)
	Create(ctx context.Context, libur *model.HariLibur) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hariLiburRepository struct {
	db *gorm.DB
}

func NewHariLiburRepository(db *gorm.DB) HariLiburRepository {
	return &hariLiburRepository{db}
}

func (r *hariLiburRepository) IsHoliday(ctx context.Context, date string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.HariLibur{}).Where("tanggal = ?", date).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetBetween: start dan end berformat YYYY-MM-DD, inklusif.
func (r *hariLiburRepository) GetBetween(ctx context.Context, start, end string) ([]model.HariLibur, error) {
	var liburs []model.HariLibur
	err := r.db.WithContext(ctx).
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Order("tanggal asc").Find(&liburs).Error
	return liburs, err
}

func (r *hariLiburRepository) Create(ctx context.Context, libur *model.HariLibur) error {
	return r.db.WithContext(ctx).Create(libur).Error
}

func (r *hariLiburRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.HariLibur{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
