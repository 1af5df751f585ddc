package report

import (
	"context"
	"time"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// fakeStore menyimpan data di memori dan meniru filter repository.
type fakeStore struct {
	gurus   []model.Guru
	jadwals []model.Jadwal
	jurnals []model.Jurnal
	absensi []model.Absensi
	liburs  []model.HariLibur
	master  repository.MasterCount

	err error
}

var _ Store = (*fakeStore)(nil)

func (f *fakeStore) ListGuru(ctx context.Context) ([]model.Guru, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gurus, nil
}

func (f *fakeStore) FindJadwalByGuru(ctx context.Context, guruID uuid.UUID, filter repository.JadwalFilter) ([]model.Jadwal, error) {
	var out []model.Jadwal
	for _, j := range f.jadwals {
		if j.GuruID != guruID {
			continue
		}
		if filter.Semester != nil && j.Semester != *filter.Semester {
			continue
		}
		if filter.TahunAjaran != nil && j.TahunAjaran != *filter.TahunAjaran {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeStore) CountJadwalByHari(ctx context.Context, hari int) (int64, error) {
	var n int64
	for _, j := range f.jadwals {
		if j.Hari == hari {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) jadwal(id uuid.UUID) *model.Jadwal {
	for i := range f.jadwals {
		if f.jadwals[i].ID == id {
			return &f.jadwals[i]
		}
	}
	return nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func (f *fakeStore) CountJurnalByGuruInRange(ctx context.Context, guruID uuid.UUID, start, end time.Time) (int64, error) {
	var n int64
	for _, j := range f.jurnals {
		jd := f.jadwal(j.JadwalID)
		if jd != nil && jd.GuruID == guruID && inRange(j.TanggalTime(), start, end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountJurnalInRange(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	for _, j := range f.jurnals {
		if inRange(j.TanggalTime(), start, end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) RecentJurnal(ctx context.Context, limit int) ([]model.Jurnal, error) {
	if len(f.jurnals) < limit {
		limit = len(f.jurnals)
	}
	return f.jurnals[:limit], nil
}

func (f *fakeStore) FindAbsensiInRange(ctx context.Context, filter repository.AbsensiFilter) ([]model.Absensi, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Absensi
	for _, a := range f.absensi {
		if a.Jurnal == nil || !inRange(a.Jurnal.TanggalTime(), filter.Start, filter.End) {
			continue
		}
		if filter.KelasID != nil && (a.Jurnal.Jadwal == nil || a.Jurnal.Jadwal.KelasID != *filter.KelasID) {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, a.Status) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func containsStatus(list []model.StatusAbsensi, s model.StatusAbsensi) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (f *fakeStore) HolidaysBetween(ctx context.Context, start, end string) ([]model.HariLibur, error) {
	var out []model.HariLibur
	for _, l := range f.liburs {
		if l.Tanggal >= start && l.Tanggal <= end {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) CountMaster(ctx context.Context) (repository.MasterCount, error) {
	return f.master, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newGuru(nama string) model.Guru {
	return model.Guru{Base: model.Base{ID: uuid.New()}, Nama: nama}
}

func newJadwal(guru model.Guru, kelas *model.Kelas, hari time.Weekday) model.Jadwal {
	return model.Jadwal{
		Base:        model.Base{ID: uuid.New()},
		GuruID:      guru.ID,
		KelasID:     kelas.ID,
		Kelas:       kelas,
		Hari:        int(hari),
		JamMulai:    "07:00",
		JamSelesai:  "08:30",
		Semester:    model.SemesterGanjil,
		TahunAjaran: "2026/2027",
	}
}

func newJurnal(jd *model.Jadwal, tanggal time.Time) model.Jurnal {
	return model.Jurnal{
		Base:               model.Base{ID: uuid.New(), CreatedAt: tanggal},
		JadwalID:           jd.ID,
		Jadwal:             jd,
		Tanggal:            datatypes.Date(tanggal),
		StatusKetercapaian: model.Tercapai,
	}
}

func newKelas(nama string) *model.Kelas {
	return &model.Kelas{Base: model.Base{ID: uuid.New()}, Nama: nama, Tingkat: 10}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
