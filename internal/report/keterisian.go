package report

import (
	"context"
	"fmt"
	"sort"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/google/uuid"
)

// BatasRutin: guru dengan keterisian >= nilai ini dianggap rutin mengisi jurnal.
const BatasRutin = 80

type KeterisianQuery struct {
	PeriodQuery

	// Semester dan TahunAjaran membatasi jadwal yang dihitung. Kosong berarti semua jadwal guru.
	Semester    *string
	TahunAjaran *string

	// ExcludeHariLibur melewati tanggal yang terdaftar di hari_liburs.
	ExcludeHariLibur bool

	// GuruID membatasi laporan ke satu guru.
	GuruID *uuid.UUID
}

type KeterisianGuru struct {
	GuruID           uuid.UUID `json:"guru_id"`
	NamaGuru         string    `json:"nama_guru"`
	ExpectedSessions int       `json:"jadwal_seharusnya"`
	FiledJournals    int       `json:"jurnal_terisi"`
	Persentase       int       `json:"persentase"`
	IsRutin          bool      `json:"is_rutin"`
}

type KeterisianReport struct {
	DateRange
	GuruReports []KeterisianGuru `json:"guru_reports"`
}

// Keterisian menghitung jadwal seharusnya vs jurnal terisi per guru, urut persentase menurun.
func (s *Service) Keterisian(ctx context.Context, q KeterisianQuery) (*KeterisianReport, error) {
	rng := ResolvePeriod(q.PeriodQuery, s.now())

	report, err := s.keterisian(ctx, q, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to compute keterisian: %w", err)
	}
	return report, nil
}

func (s *Service) keterisian(ctx context.Context, q KeterisianQuery, rng DateRange) (*KeterisianReport, error) {
	gurus, err := s.store.ListGuru(ctx)
	if err != nil {
		return nil, err
	}

	var libur map[string]bool
	if q.ExcludeHariLibur {
		libur, err = s.holidaySet(ctx, rng)
		if err != nil {
			return nil, err
		}
	}

	filter := repository.JadwalFilter{Semester: q.Semester, TahunAjaran: q.TahunAjaran}
	reports := make([]KeterisianGuru, 0, len(gurus))
	for _, guru := range gurus {
		if q.GuruID != nil && guru.ID != *q.GuruID {
			continue
		}

		jadwals, err := s.store.FindJadwalByGuru(ctx, guru.ID, filter)
		if err != nil {
			return nil, err
		}
		expected := countExpectedSessions(jadwals, rng, libur)

		filed, err := s.store.CountJurnalByGuruInRange(ctx, guru.ID, rng.Start, rng.End)
		if err != nil {
			return nil, err
		}

		pct := Persentase(int(filed), expected)
		reports = append(reports, KeterisianGuru{
			GuruID:           guru.ID,
			NamaGuru:         guru.Nama,
			ExpectedSessions: expected,
			FiledJournals:    int(filed),
			Persentase:       pct,
			IsRutin:          pct >= BatasRutin,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Persentase > reports[j].Persentase
	})

	return &KeterisianReport{DateRange: rng, GuruReports: reports}, nil
}

func (s *Service) holidaySet(ctx context.Context, rng DateRange) (map[string]bool, error) {
	liburs, err := s.store.HolidaysBetween(ctx, rng.Start.Format(dateLayout), rng.End.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(liburs))
	for _, l := range liburs {
		set[l.Tanggal] = true
	}
	return set, nil
}

// countExpectedSessions menelusuri setiap hari dari Start sampai End (inklusif)
// dan menjumlahkan slot jadwal yang harinya sama.
func countExpectedSessions(jadwals []model.Jadwal, rng DateRange, skip map[string]bool) int {
	var perHari [7]int
	for _, j := range jadwals {
		if j.Hari >= 0 && j.Hari < len(perHari) {
			perHari[j.Hari]++
		}
	}

	total := 0
	for d := rng.Start; !d.After(rng.End); d = d.AddDate(0, 0, 1) {
		if skip[d.Format(dateLayout)] {
			continue
		}
		total += perHari[d.Weekday()]
	}
	return total
}

// BelumRutin mengembalikan guru yang persentasenya di bawah BatasRutin.
func (r *KeterisianReport) BelumRutin() []KeterisianGuru {
	var out []KeterisianGuru
	for _, g := range r.GuruReports {
		if !g.IsRutin {
			out = append(out, g)
		}
	}
	return out
}
