package repository

import (
	"context"
	"sort"
	"time"

	"jurnal-guru-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JurnalFilter struct {
	GuruID             *uuid.UUID
	KelasID            *uuid.UUID
	MataPelajaranID    *uuid.UUID
	Start              *time.Time
	End                *time.Time
	StatusKetercapaian *model.StatusKetercapaian
}

func (f JurnalFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Joins("JOIN jadwals ON jadwals.id = jurnals.jadwal_id")
	if f.GuruID != nil {
		q = q.Where("jadwals.guru_id = ?", *f.GuruID)
	}
	if f.KelasID != nil {
		q = q.Where("jadwals.kelas_id = ?", *f.KelasID)
	}
	if f.MataPelajaranID != nil {
		q = q.Where("jadwals.mata_pelajaran_id = ?", *f.MataPelajaranID)
	}
	if f.Start != nil {
		q = q.Where("jurnals.tanggal >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("jurnals.tanggal <= ?", *f.End)
	}
	if f.StatusKetercapaian != nil {
		q = q.Where("jurnals.status_ketercapaian = ?", *f.StatusKetercapaian)
	}
	return q
}

type JurnalRepository interface {
	WithTx(tx *gorm.DB) JurnalRepository

	Create(ctx context.Context, jurnal *model.Jurnal) error
	Update(ctx context.Context, jurnal *model.Jurnal) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceChildren(ctx context.Context, jurnalID uuid.UUID, absensi []model.Absensi, tags []model.TagSiswaRecord) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Jurnal, error)
	FindByJadwalAndTanggal(ctx context.Context, jadwalID uuid.UUID, tanggal time.Time) (*model.Jurnal, error)
	FilledJadwalIDs(ctx context.Context, jadwalIDs []uuid.UUID, tanggal time.Time) ([]uuid.UUID, error)
	List(ctx context.Context, filter JurnalFilter, limit, offset int) ([]model.Jurnal, int64, error)
	Recent(ctx context.Context, limit int) ([]model.Jurnal, error)

	CountByGuruInRange(ctx context.Context, guruID uuid.UUID, start, end time.Time) (int64, error)
	CountInRange(ctx context.Context, start, end time.Time) (int64, error)
}

type jurnalRepository struct {
	db *gorm.DB
}

func NewJurnalRepository(db *gorm.DB) JurnalRepository {
	return &jurnalRepository{db}
}

func (r *jurnalRepository) WithTx(tx *gorm.DB) JurnalRepository {
	return &jurnalRepository{tx}
}

// Create hanya menyimpan baris jurnal; absensi dan tag lewat ReplaceChildren.
func (r *jurnalRepository) Create(ctx context.Context, jurnal *model.Jurnal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(jurnal).Error
}

func (r *jurnalRepository) Update(ctx context.Context, jurnal *model.Jurnal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(jurnal).Error
}

func (r *jurnalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("jurnal_id = ?", id).Delete(&model.Absensi{}).Error; err != nil {
		return err
	}
	if err := db.Where("jurnal_id = ?", id).Delete(&model.TagSiswaRecord{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ?", id).Delete(&model.Jurnal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jurnalRepository) ReplaceChildren(ctx context.Context, jurnalID uuid.UUID, absensi []model.Absensi, tags []model.TagSiswaRecord) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("jurnal_id = ?", jurnalID).Delete(&model.Absensi{}).Error; err != nil {
		return err
	}
	if err := db.Where("jurnal_id = ?", jurnalID).Delete(&model.TagSiswaRecord{}).Error; err != nil {
		return err
	}
	for i := range absensi {
		absensi[i].JurnalID = jurnalID
	}
	for i := range tags {
		tags[i].JurnalID = jurnalID
	}
	if len(absensi) > 0 {
		if err := db.Omit(clause.Associations).CreateInBatches(&absensi, 100).Error; err != nil {
			return err
		}
	}
	if len(tags) > 0 {
		if err := db.Omit(clause.Associations).CreateInBatches(&tags, 100).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *jurnalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Jurnal, error) {
	var jurnal model.Jurnal
	err := r.db.WithContext(ctx).
		Preload("Jadwal.Guru").Preload("Jadwal.Kelas").Preload("Jadwal.MataPelajaran").
		Preload("Absensi.Siswa").
		Preload("TagSiswa.Siswa").
		Where("id = ?", id).First(&jurnal).Error
	if err != nil {
		return nil, err
	}
	// Absensi diurutkan berdasarkan nama siswa
	sort.SliceStable(jurnal.Absensi, func(i, j int) bool {
		return siswaNama(jurnal.Absensi[i].Siswa) < siswaNama(jurnal.Absensi[j].Siswa)
	})
	return &jurnal, nil
}

func siswaNama(s *model.Siswa) string {
	if s == nil {
		return ""
	}
	return s.Nama
}

func (r *jurnalRepository) FindByJadwalAndTanggal(ctx context.Context, jadwalID uuid.UUID, tanggal time.Time) (*model.Jurnal, error) {
	var jurnal model.Jurnal
	// Find + Limit(1) agar GORM tidak mencetak log "record not found"
	err := r.db.WithContext(ctx).
		Where("jadwal_id = ? AND tanggal = ?", jadwalID, datatypes.Date(tanggal)).
		Limit(1).Find(&jurnal).Error
	if err != nil {
		return nil, err
	}
	if jurnal.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &jurnal, nil
}

func (r *jurnalRepository) FilledJadwalIDs(ctx context.Context, jadwalIDs []uuid.UUID, tanggal time.Time) ([]uuid.UUID, error) {
	if len(jadwalIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Jurnal{}).
		Where("jadwal_id IN ? AND tanggal = ?", jadwalIDs, datatypes.Date(tanggal)).
		Pluck("jadwal_id", &ids).Error
	return ids, err
}

func (r *jurnalRepository) List(ctx context.Context, filter JurnalFilter, limit, offset int) ([]model.Jurnal, int64, error) {
	var (
		total   int64
		jurnals []model.Jurnal
	)
	base := filter.apply(r.db.WithContext(ctx).Model(&model.Jurnal{}))
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := filter.apply(r.db.WithContext(ctx).Model(&model.Jurnal{})).
		Preload("Jadwal.Guru").Preload("Jadwal.Kelas").Preload("Jadwal.MataPelajaran").
		Order("jurnals.tanggal desc").Order("jurnals.created_at desc").
		Limit(limit).Offset(offset).
		Find(&jurnals).Error
	return jurnals, total, err
}

func (r *jurnalRepository) Recent(ctx context.Context, limit int) ([]model.Jurnal, error) {
	var jurnals []model.Jurnal
	err := r.db.WithContext(ctx).
		Preload("Jadwal.Guru").Preload("Jadwal.Kelas").Preload("Jadwal.MataPelajaran").
		Order("created_at desc").Limit(limit).
		Find(&jurnals).Error
	return jurnals, err
}

func (r *jurnalRepository) CountByGuruInRange(ctx context.Context, guruID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Jurnal{}).
		Joins("JOIN jadwals ON jadwals.id = jurnals.jadwal_id").
		Where("jadwals.guru_id = ? AND jurnals.tanggal >= ? AND jurnals.tanggal <= ?", guruID, start, end).
		Count(&count).Error
	return count, err
}

func (r *jurnalRepository) CountInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Jurnal{}).
		Where("tanggal >= ? AND tanggal <= ?", start, end).
		Count(&count).Error
	return count, err
}
