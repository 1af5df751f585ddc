package repository

import (
	"context"

	"jurnal-guru-backend/internal/model"

	"gorm.io/gorm"
)

type MasterCount struct {
	Guru          int64 `json:"guru"`
	Kelas         int64 `json:"kelas"`
	Siswa         int64 `json:"siswa"`
	MataPelajaran int64 `json:"mata_pelajaran"`
}

type DashboardRepository interface {
	CountMaster(ctx context.Context) (MasterCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) CountMaster(ctx context.Context) (MasterCount, error) {
	var mc MasterCount
	db := r.db.WithContext(ctx)

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&model.Guru{}, &mc.Guru},
		{&model.Kelas{}, &mc.Kelas},
		{&model.Siswa{}, &mc.Siswa},
		{&model.MataPelajaran{}, &mc.MataPelajaran},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return MasterCount{}, err
		}
	}
	return mc, nil
}
