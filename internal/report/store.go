package report

import (
	"context"
	"time"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store adalah kontrak baca yang dibutuhkan laporan.
type Store interface {
	ListGuru(ctx context.Context) ([]model.Guru, error)
	FindJadwalByGuru(ctx context.Context, guruID uuid.UUID, filter repository.JadwalFilter) ([]model.Jadwal, error)
	CountJadwalByHari(ctx context.Context, hari int) (int64, error)
	CountJurnalByGuruInRange(ctx context.Context, guruID uuid.UUID, start, end time.Time) (int64, error)
	CountJurnalInRange(ctx context.Context, start, end time.Time) (int64, error)
	RecentJurnal(ctx context.Context, limit int) ([]model.Jurnal, error)
	FindAbsensiInRange(ctx context.Context, filter repository.AbsensiFilter) ([]model.Absensi, error)
	HolidaysBetween(ctx context.Context, start, end string) ([]model.HariLibur, error)
	CountMaster(ctx context.Context) (repository.MasterCount, error)
}

type repoStore struct {
	guru      repository.GuruRepository
	jadwal    repository.JadwalRepository
	jurnal    repository.JurnalRepository
	absensi   repository.AbsensiRepository
	hariLibur repository.HariLiburRepository
	dashboard repository.DashboardRepository
}

var _ Store = (*repoStore)(nil)

func NewRepositoryStore(db *gorm.DB) Store {
	return &repoStore{
		guru:      repository.NewGuruRepository(db),
		jadwal:    repository.NewJadwalRepository(db),
		jurnal:    repository.NewJurnalRepository(db),
		absensi:   repository.NewAbsensiRepository(db),
		hariLibur: repository.NewHariLiburRepository(db),
		dashboard: repository.NewDashboardRepository(db),
	}
}

func (s *repoStore) ListGuru(ctx context.Context) ([]model.Guru, error) {
	return s.guru.GetAll(ctx)
}

func (s *repoStore) FindJadwalByGuru(ctx context.Context, guruID uuid.UUID, filter repository.JadwalFilter) ([]model.Jadwal, error) {
	return s.jadwal.FindByGuru(ctx, guruID, filter)
}

func (s *repoStore) CountJadwalByHari(ctx context.Context, hari int) (int64, error) {
	return s.jadwal.CountByHari(ctx, hari)
}

func (s *repoStore) CountJurnalByGuruInRange(ctx context.Context, guruID uuid.UUID, start, end time.Time) (int64, error) {
	return s.jurnal.CountByGuruInRange(ctx, guruID, start, end)
}

func (s *repoStore) CountJurnalInRange(ctx context.Context, start, end time.Time) (int64, error) {
	return s.jurnal.CountInRange(ctx, start, end)
}

func (s *repoStore) RecentJurnal(ctx context.Context, limit int) ([]model.Jurnal, error) {
	return s.jurnal.Recent(ctx, limit)
}

func (s *repoStore) FindAbsensiInRange(ctx context.Context, filter repository.AbsensiFilter) ([]model.Absensi, error) {
	return s.absensi.FindInRange(ctx, filter)
}

func (s *repoStore) HolidaysBetween(ctx context.Context, start, end string) ([]model.HariLibur, error) {
	return s.hariLibur.GetBetween(ctx, start, end)
}

func (s *repoStore) CountMaster(ctx context.Context) (repository.MasterCount, error) {
	return s.dashboard.CountMaster(ctx)
}
