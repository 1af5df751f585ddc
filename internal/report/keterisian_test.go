package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"jurnal-guru-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dua pekan: Senin 5 Oktober s.d. Minggu 18 Oktober 2026
func duaPekan() PeriodQuery {
	start := date(2026, time.October, 5)
	end := date(2026, time.October, 18)
	return PeriodQuery{Start: &start, End: &end}
}

func TestKeterisianSatuSlotSenin(t *testing.T) {
	kelas := newKelas("X IPA 1")
	guru := newGuru("Bu Sari")
	senin := newJadwal(guru, kelas, time.Monday)

	store := &fakeStore{
		gurus:   []model.Guru{guru},
		jadwals: []model.Jadwal{senin},
		jurnals: []model.Jurnal{newJurnal(&senin, date(2026, time.October, 12))},
	}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	require.Len(t, got.GuruReports, 1)

	r := got.GuruReports[0]
	assert.Equal(t, guru.ID, r.GuruID)
	assert.Equal(t, "Bu Sari", r.NamaGuru)
	assert.Equal(t, 2, r.ExpectedSessions)
	assert.Equal(t, 1, r.FiledJournals)
	assert.Equal(t, 50, r.Persentase)
	assert.False(t, r.IsRutin)
	assert.Equal(t, PeriodCustom, got.Period)
}

func TestKeterisianTanpaJadwal(t *testing.T) {
	guru := newGuru("Pak Budi")
	store := &fakeStore{gurus: []model.Guru{guru}}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	require.Len(t, got.GuruReports, 1)
	assert.Equal(t, 0, got.GuruReports[0].ExpectedSessions)
	assert.Equal(t, 0, got.GuruReports[0].Persentase)
	assert.False(t, got.GuruReports[0].IsRutin)
}

func TestKeterisianTidakDibatasiSeratus(t *testing.T) {
	kelas := newKelas("XI IPS 2")
	guru := newGuru("Bu Rina")
	senin := newJadwal(guru, kelas, time.Monday)

	start := date(2026, time.October, 12)
	end := date(2026, time.October, 13)
	store := &fakeStore{
		gurus:   []model.Guru{guru},
		jadwals: []model.Jadwal{senin},
		jurnals: []model.Jurnal{
			newJurnal(&senin, date(2026, time.October, 12)),
			// jurnal pada hari yang tidak cocok dengan slot tetap terhitung
			newJurnal(&senin, date(2026, time.October, 13)),
		},
	}
	svc := NewService(store, fixedClock(end))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: PeriodQuery{Start: &start, End: &end}})
	require.NoError(t, err)
	assert.Equal(t, 1, got.GuruReports[0].ExpectedSessions)
	assert.Equal(t, 2, got.GuruReports[0].FiledJournals)
	assert.Equal(t, 200, got.GuruReports[0].Persentase)
	assert.True(t, got.GuruReports[0].IsRutin)
}

func TestKeterisianUrutPersentaseMenurun(t *testing.T) {
	kelas := newKelas("X IPA 1")
	rendah := newGuru("A Rendah")
	tinggi := newGuru("B Tinggi")
	sedang := newGuru("C Sedang")

	jRendah := newJadwal(rendah, kelas, time.Monday)
	jTinggi := newJadwal(tinggi, kelas, time.Tuesday)
	jSedang := newJadwal(sedang, kelas, time.Wednesday)

	store := &fakeStore{
		gurus:   []model.Guru{rendah, tinggi, sedang},
		jadwals: []model.Jadwal{jRendah, jTinggi, jSedang},
		jurnals: []model.Jurnal{
			newJurnal(&jTinggi, date(2026, time.October, 6)),
			newJurnal(&jTinggi, date(2026, time.October, 13)),
			newJurnal(&jSedang, date(2026, time.October, 7)),
		},
	}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	require.Len(t, got.GuruReports, 3)
	assert.Equal(t, []int{100, 50, 0}, []int{
		got.GuruReports[0].Persentase,
		got.GuruReports[1].Persentase,
		got.GuruReports[2].Persentase,
	})
	assert.Equal(t, tinggi.ID, got.GuruReports[0].GuruID)
	assert.True(t, got.GuruReports[0].IsRutin)
	assert.Len(t, got.BelumRutin(), 2)
}

func TestKeterisianFilterSemester(t *testing.T) {
	kelas := newKelas("X IPA 1")
	guru := newGuru("Bu Sari")
	ganjil := newJadwal(guru, kelas, time.Monday)
	genap := newJadwal(guru, kelas, time.Tuesday)
	genap.Semester = model.SemesterGenap

	store := &fakeStore{gurus: []model.Guru{guru}, jadwals: []model.Jadwal{ganjil, genap}}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	semua, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	assert.Equal(t, 4, semua.GuruReports[0].ExpectedSessions)

	sem := model.SemesterGanjil
	saja, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan(), Semester: &sem})
	require.NoError(t, err)
	assert.Equal(t, 2, saja.GuruReports[0].ExpectedSessions)
}

func TestKeterisianLewatiHariLibur(t *testing.T) {
	kelas := newKelas("X IPA 1")
	guru := newGuru("Bu Sari")
	senin := newJadwal(guru, kelas, time.Monday)

	store := &fakeStore{
		gurus:   []model.Guru{guru},
		jadwals: []model.Jadwal{senin},
		liburs:  []model.HariLibur{{Tanggal: "2026-10-12", Keterangan: "Libur sekolah"}},
	}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	tanpa, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	assert.Equal(t, 2, tanpa.GuruReports[0].ExpectedSessions)

	dengan, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan(), ExcludeHariLibur: true})
	require.NoError(t, err)
	assert.Equal(t, 1, dengan.GuruReports[0].ExpectedSessions)
}

func TestKeterisianSatuGuru(t *testing.T) {
	a := newGuru("A")
	b := newGuru("B")
	store := &fakeStore{gurus: []model.Guru{a, b}}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan(), GuruID: &b.ID})
	require.NoError(t, err)
	require.Len(t, got.GuruReports, 1)
	assert.Equal(t, b.ID, got.GuruReports[0].GuruID)
}

func TestKeterisianIdempoten(t *testing.T) {
	kelas := newKelas("X IPA 1")
	guru := newGuru("Bu Sari")
	senin := newJadwal(guru, kelas, time.Monday)
	store := &fakeStore{
		gurus:   []model.Guru{guru, newGuru("Pak Budi")},
		jadwals: []model.Jadwal{senin},
		jurnals: []model.Jurnal{newJurnal(&senin, date(2026, time.October, 5))},
	}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	first, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	second, err := svc.Keterisian(context.Background(), KeterisianQuery{PeriodQuery: duaPekan()})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeterisianGagal(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	svc := NewService(store, fixedClock(date(2026, time.October, 18)))

	got, err := svc.Keterisian(context.Background(), KeterisianQuery{})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.EqualError(t, err, "failed to compute keterisian: connection refused")
	assert.ErrorIs(t, err, store.err)
}
