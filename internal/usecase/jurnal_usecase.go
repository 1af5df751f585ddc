package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("data tidak ditemukan")
	ErrJurnalExists = errors.New("jurnal untuk jadwal dan tanggal ini sudah ada")
	ErrForbidden    = errors.New("akses ditolak")
	ErrValidation   = errors.New("validasi gagal")
)

const dateLayout = "2006-01-02"

type AbsensiInput struct {
	SiswaID uuid.UUID           `json:"siswa_id" validate:"required"`
	Status  model.StatusAbsensi `json:"status" validate:"required,oneof=HADIR SAKIT IZIN ALPA"`
}

type TagSiswaInput struct {
	SiswaID uuid.UUID      `json:"siswa_id" validate:"required"`
	Tag     model.JenisTag `json:"tag" validate:"required,oneof=REMEDIAL PENGAYAAN PERILAKU RUJUKAN_BK"`
	Catatan *string        `json:"catatan" validate:"omitempty,max=1000"`
}

// JurnalRequest dipakai untuk create maupun update.
type JurnalRequest struct {
	JadwalID           uuid.UUID                `json:"jadwal_id" validate:"required"`
	Tanggal            string                   `json:"tanggal" validate:"required,datetime=2006-01-02"`
	TujuanPembelajaran string                   `json:"tujuan_pembelajaran" validate:"required"`
	Kegiatan           string                   `json:"kegiatan" validate:"required"`
	Penilaian          string                   `json:"penilaian"`
	CatatanKhusus      string                   `json:"catatan_khusus"`
	LinkBukti          *string                  `json:"link_bukti" validate:"omitempty,url,max=512"`
	StatusKetercapaian model.StatusKetercapaian `json:"status_ketercapaian" validate:"required,oneof=TERCAPAI SEBAGIAN TIDAK_TERCAPAI"`
	Absensi            []AbsensiInput           `json:"absensi" validate:"unique=SiswaID,dive"`
	TagSiswa           []TagSiswaInput          `json:"tag_siswa" validate:"dive"`
}

// JadwalHarian adalah slot hari ini beserta status pengisian jurnalnya.
// HariLibur menandai tanggal yang terdaftar sebagai hari libur sekolah.
type JadwalHarian struct {
	model.Jadwal
	SudahDiisi bool `json:"sudah_diisi"`
	HariLibur  bool `json:"hari_libur"`
}

type JurnalUsecase struct {
	db         *gorm.DB
	jurnalRepo repository.JurnalRepository
	jadwalRepo repository.JadwalRepository
	siswaRepo  repository.SiswaRepository
	liburRepo  repository.HariLiburRepository
	validate   *validator.Validate
	loc        *time.Location
	log        *zap.Logger
}

func NewJurnalUsecase(db *gorm.DB, loc *time.Location, log *zap.Logger) *JurnalUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &JurnalUsecase{
		db:         db,
		jurnalRepo: repository.NewJurnalRepository(db),
		jadwalRepo: repository.NewJadwalRepository(db),
		siswaRepo:  repository.NewSiswaRepository(db),
		liburRepo:  repository.NewHariLiburRepository(db),
		validate:   validator.New(),
		loc:        loc,
		log:        log,
	}
}

// Create menyimpan jurnal beserta absensi dan tag siswa dalam satu transaksi.
func (u *JurnalUsecase) Create(ctx context.Context, guruID uuid.UUID, req JurnalRequest) (*model.Jurnal, error) {
	tanggal, err := u.check(req)
	if err != nil {
		return nil, err
	}
	jadwal, err := u.ownedJadwal(ctx, guruID, req.JadwalID)
	if err != nil {
		return nil, err
	}
	if err := u.checkRoster(ctx, jadwal.KelasID, req); err != nil {
		return nil, err
	}

	jurnal := &model.Jurnal{JadwalID: jadwal.ID}
	applyRequest(jurnal, req, tanggal)

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := u.jurnalRepo.WithTx(tx)

		if _, err := repo.FindByJadwalAndTanggal(ctx, jadwal.ID, tanggal); err == nil {
			return ErrJurnalExists
		} else if !repository.IsNotFound(err) {
			return err
		}

		if err := repo.Create(ctx, jurnal); err != nil {
			return err
		}
		absensi, tags := childRows(req)
		return repo.ReplaceChildren(ctx, jurnal.ID, absensi, tags)
	})
	if err != nil {
		return nil, translate("create jurnal", err)
	}

	u.log.Info("jurnal dibuat",
		zap.String("jurnal_id", jurnal.ID.String()),
		zap.String("guru_id", guruID.String()),
		zap.String("tanggal", req.Tanggal),
		zap.Int("absensi", len(req.Absensi)),
	)
	return u.Get(ctx, jurnal.ID)
}

// Update hanya boleh dilakukan guru pemilik jadwal. Absensi dan tag diganti seluruhnya.
func (u *JurnalUsecase) Update(ctx context.Context, guruID, jurnalID uuid.UUID, req JurnalRequest) (*model.Jurnal, error) {
	tanggal, err := u.check(req)
	if err != nil {
		return nil, err
	}

	existing, err := u.jurnalRepo.FindByID(ctx, jurnalID)
	if err != nil {
		return nil, translate("load jurnal", err)
	}
	if existing.Jadwal == nil || existing.Jadwal.GuruID != guruID {
		return nil, ErrForbidden
	}
	jadwal, err := u.ownedJadwal(ctx, guruID, req.JadwalID)
	if err != nil {
		return nil, err
	}
	if err := u.checkRoster(ctx, jadwal.KelasID, req); err != nil {
		return nil, err
	}

	jurnal := &model.Jurnal{Base: existing.Base, JadwalID: jadwal.ID}
	applyRequest(jurnal, req, tanggal)

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := u.jurnalRepo.WithTx(tx)

		other, err := repo.FindByJadwalAndTanggal(ctx, jadwal.ID, tanggal)
		switch {
		case err == nil && other.ID != jurnal.ID:
			return ErrJurnalExists
		case err != nil && !repository.IsNotFound(err):
			return err
		}

		if err := repo.Update(ctx, jurnal); err != nil {
			return err
		}
		absensi, tags := childRows(req)
		return repo.ReplaceChildren(ctx, jurnal.ID, absensi, tags)
	})
	if err != nil {
		return nil, translate("update jurnal", err)
	}
	return u.Get(ctx, jurnal.ID)
}

// Get mengembalikan jurnal lengkap; absensi urut nama siswa.
func (u *JurnalUsecase) Get(ctx context.Context, jurnalID uuid.UUID) (*model.Jurnal, error) {
	jurnal, err := u.jurnalRepo.FindByID(ctx, jurnalID)
	if err != nil {
		return nil, translate("load jurnal", err)
	}
	return jurnal, nil
}

// GetOwned seperti Get, tetapi menolak jurnal milik guru lain.
func (u *JurnalUsecase) GetOwned(ctx context.Context, guruID, jurnalID uuid.UUID) (*model.Jurnal, error) {
	jurnal, err := u.Get(ctx, jurnalID)
	if err != nil {
		return nil, err
	}
	if jurnal.Jadwal == nil || jurnal.Jadwal.GuruID != guruID {
		return nil, ErrForbidden
	}
	return jurnal, nil
}

func (u *JurnalUsecase) Delete(ctx context.Context, jurnalID uuid.UUID) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return u.jurnalRepo.WithTx(tx).Delete(ctx, jurnalID)
	})
	if err != nil {
		return translate("delete jurnal", err)
	}
	u.log.Info("jurnal dihapus", zap.String("jurnal_id", jurnalID.String()))
	return nil
}

func (u *JurnalUsecase) List(ctx context.Context, filter repository.JurnalFilter, limit, offset int) ([]model.Jurnal, int64, error) {
	jurnals, total, err := u.jurnalRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jurnal: %w", err)
	}
	return jurnals, total, nil
}

// JadwalHariIni mengembalikan slot guru untuk hari dari tanggal, ditandai sudah/belum diisi.
func (u *JurnalUsecase) JadwalHariIni(ctx context.Context, guruID uuid.UUID, tanggal time.Time, filter repository.JadwalFilter) ([]JadwalHarian, error) {
	tanggal = u.normalize(tanggal)
	hari := int(tanggal.Weekday())
	filter.Hari = &hari

	jadwals, err := u.jadwalRepo.FindByGuru(ctx, guruID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load jadwal hari ini: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(jadwals))
	for _, j := range jadwals {
		ids = append(ids, j.ID)
	}
	filled, err := u.jurnalRepo.FilledJadwalIDs(ctx, ids, tanggal)
	if err != nil {
		return nil, fmt.Errorf("failed to load jadwal hari ini: %w", err)
	}
	sudah := make(map[uuid.UUID]bool, len(filled))
	for _, id := range filled {
		sudah[id] = true
	}
	libur, err := u.liburRepo.IsHoliday(ctx, tanggal.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to load jadwal hari ini: %w", err)
	}

	out := make([]JadwalHarian, 0, len(jadwals))
	for _, j := range jadwals {
		out = append(out, JadwalHarian{Jadwal: j, SudahDiisi: sudah[j.ID], HariLibur: libur})
	}
	return out, nil
}

// Roster mengembalikan daftar siswa kelas dari jadwal milik guru, untuk form absensi.
func (u *JurnalUsecase) Roster(ctx context.Context, guruID, jadwalID uuid.UUID) ([]model.Siswa, error) {
	jadwal, err := u.ownedJadwal(ctx, guruID, jadwalID)
	if err != nil {
		return nil, err
	}
	siswa, err := u.siswaRepo.FindByKelas(ctx, jadwal.KelasID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	return siswa, nil
}

func (u *JurnalUsecase) check(req JurnalRequest) (time.Time, error) {
	if err := u.validate.Struct(req); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	tanggal, err := time.ParseInLocation(dateLayout, req.Tanggal, u.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return tanggal, nil
}

func (u *JurnalUsecase) normalize(t time.Time) time.Time {
	y, m, d := t.In(u.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, u.loc)
}

func (u *JurnalUsecase) ownedJadwal(ctx context.Context, guruID, jadwalID uuid.UUID) (*model.Jadwal, error) {
	jadwal, err := u.jadwalRepo.FindByID(ctx, jadwalID)
	if err != nil {
		return nil, translate("load jadwal", err)
	}
	if jadwal.GuruID != guruID {
		return nil, ErrForbidden
	}
	return jadwal, nil
}

// checkRoster memastikan setiap siswa pada absensi dan tag terdaftar di kelas jadwal.
func (u *JurnalUsecase) checkRoster(ctx context.Context, kelasID uuid.UUID, req JurnalRequest) error {
	if len(req.Absensi) == 0 && len(req.TagSiswa) == 0 {
		return nil
	}
	siswa, err := u.siswaRepo.FindByKelas(ctx, kelasID)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	terdaftar := make(map[uuid.UUID]bool, len(siswa))
	for _, s := range siswa {
		terdaftar[s.ID] = true
	}
	for _, a := range req.Absensi {
		if !terdaftar[a.SiswaID] {
			return fmt.Errorf("%w: siswa %s bukan anggota kelas", ErrValidation, a.SiswaID)
		}
	}
	for _, t := range req.TagSiswa {
		if !terdaftar[t.SiswaID] {
			return fmt.Errorf("%w: siswa %s bukan anggota kelas", ErrValidation, t.SiswaID)
		}
	}
	return nil
}

func applyRequest(j *model.Jurnal, req JurnalRequest, tanggal time.Time) {
	j.Tanggal = datatypes.Date(tanggal)
	j.TujuanPembelajaran = req.TujuanPembelajaran
	j.Kegiatan = req.Kegiatan
	j.Penilaian = req.Penilaian
	j.CatatanKhusus = req.CatatanKhusus
	j.LinkBukti = req.LinkBukti
	j.StatusKetercapaian = req.StatusKetercapaian
}

func childRows(req JurnalRequest) ([]model.Absensi, []model.TagSiswaRecord) {
	absensi := make([]model.Absensi, 0, len(req.Absensi))
	for _, a := range req.Absensi {
		absensi = append(absensi, model.Absensi{SiswaID: a.SiswaID, Status: a.Status})
	}
	tags := make([]model.TagSiswaRecord, 0, len(req.TagSiswa))
	for _, t := range req.TagSiswa {
		tags = append(tags, model.TagSiswaRecord{SiswaID: t.SiswaID, Tag: t.Tag, Catatan: t.Catatan})
	}
	return absensi, tags
}

// translate memetakan error repository ke taksonomi usecase.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, ErrJurnalExists), errors.Is(err, ErrForbidden), errors.Is(err, ErrValidation):
		return err
	case repository.IsNotFound(err):
		return fmt.Errorf("failed to %s: %w", op, ErrNotFound)
	case repository.IsDuplicate(err):
		return fmt.Errorf("failed to %s: %w", op, ErrJurnalExists)
	case repository.IsForeignKey(err):
		return fmt.Errorf("failed to %s: %w: referensi tidak valid", op, ErrValidation)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
