package repository

import (
	"context"
	"time"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsensiFilter: rentang tanggal jurnal wajib, sisanya opsional.
type AbsensiFilter struct {
	Start    time.Time
	End      time.Time
	KelasID  *uuid.UUID
	Statuses []model.StatusAbsensi
}

type AbsensiRepository interface {
	FindInRange(ctx context.Context, filter AbsensiFilter) ([]model.Absensi, error)
}

type absensiRepository struct {
	db *gorm.DB
}

func NewAbsensiRepository(db *gorm.DB) AbsensiRepository {
	return &absensiRepository{db}
}

// FindInRange mengambil absensi beserta jurnal, jadwal dan kelasnya.
func (r *absensiRepository) FindInRange(ctx context.Context, filter AbsensiFilter) ([]model.Absensi, error) {
	var list []model.Absensi
	query := r.db.WithContext(ctx).Model(&model.Absensi{}).
		Joins("JOIN jurnals ON jurnals.id = absensis.jurnal_id").
		Joins("JOIN jadwals ON jadwals.id = jurnals.jadwal_id").
		Where("jurnals.tanggal >= ? AND jurnals.tanggal <= ?", filter.Start, filter.End)

	if filter.KelasID != nil {
		query = query.Where("jadwals.kelas_id = ?", *filter.KelasID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("absensis.status IN ?", filter.Statuses)
	}

	err := query.Preload("Jurnal.Jadwal.Kelas").Find(&list).Error
	return list, err
}
