package repository

import (
	"context"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GuruRepository interface {
	GetAll(ctx context.Context) ([]model.Guru, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Guru, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Guru, error)
	Count(ctx context.Context) (int64, error)
}

type guruRepository struct {
	db *gorm.DB
}

func NewGuruRepository(db *gorm.DB) GuruRepository {
	return &guruRepository{db}
}

func (r *guruRepository) GetAll(ctx context.Context) ([]model.Guru, error) {
	var gurus []model.Guru
	err := r.db.WithContext(ctx).Order("nama asc").Find(&gurus).Error
	return gurus, err
}

func (r *guruRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Guru, error) {
	var guru model.Guru
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&guru).Error
	return &guru, err
}

func (r *guruRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Guru, error) {
	var guru model.Guru
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&guru).Error
	return &guru, err
}

func (r *guruRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Guru{}).Count(&count).Error
	return count, err
}
