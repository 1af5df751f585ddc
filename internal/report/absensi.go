package report

import (
	"context"
	"fmt"
	"sort"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/google/uuid"
)

type AbsensiQuery struct {
	PeriodQuery
	KelasID  *uuid.UUID
	Statuses []model.StatusAbsensi
}

// StatistikAbsensi: Total selalu Hadir+Sakit+Izin+Alpa.
type StatistikAbsensi struct {
	Hadir int `json:"hadir"`
	Sakit int `json:"sakit"`
	Izin  int `json:"izin"`
	Alpa  int `json:"alpa"`
	Total int `json:"total"`
}

func (s *StatistikAbsensi) add(status model.StatusAbsensi) {
	switch status {
	case model.Hadir:
		s.Hadir++
	case model.Sakit:
		s.Sakit++
	case model.Izin:
		s.Izin++
	case model.Alpa:
		s.Alpa++
	default:
		return
	}
	s.Total++
}

// PersentaseHadir dipakai lapisan presentasi.
func (s StatistikAbsensi) PersentaseHadir() int {
	return Persentase(s.Hadir, s.Total)
}

type StatistikHarian struct {
	Tanggal string `json:"tanggal"`
	StatistikAbsensi
}

type StatistikKelas struct {
	KelasID   uuid.UUID `json:"kelas_id"`
	NamaKelas string    `json:"nama_kelas"`
	StatistikAbsensi
}

type AbsensiReport struct {
	DateRange
	DailyStats []StatistikHarian `json:"daily_stats"`
	ByClass    []StatistikKelas  `json:"by_class"`
	TotalStats StatistikAbsensi  `json:"total_stats"`
}

// Absensi merangkum absensi dalam rentang menjadi tren harian, per kelas, dan total.
func (s *Service) Absensi(ctx context.Context, q AbsensiQuery) (*AbsensiReport, error) {
	rng := ResolvePeriod(q.PeriodQuery, s.now())

	rows, err := s.store.FindAbsensiInRange(ctx, repository.AbsensiFilter{
		Start:    rng.Start,
		End:      rng.End,
		KelasID:  q.KelasID,
		Statuses: q.Statuses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute attendance report: %w", err)
	}

	report := aggregateAbsensi(rows)
	report.DateRange = rng
	return report, nil
}

func aggregateAbsensi(rows []model.Absensi) *AbsensiReport {
	var (
		total    StatistikAbsensi
		harian   = make(map[string]*StatistikHarian)
		perKelas = make(map[uuid.UUID]*StatistikKelas)
	)

	for _, row := range rows {
		total.add(row.Status)

		if row.Jurnal == nil {
			continue
		}
		key := row.Jurnal.TanggalTime().Format(dateLayout)
		h, ok := harian[key]
		if !ok {
			h = &StatistikHarian{Tanggal: key}
			harian[key] = h
		}
		h.add(row.Status)

		if row.Jurnal.Jadwal == nil {
			continue
		}
		kelasID := row.Jurnal.Jadwal.KelasID
		k, ok := perKelas[kelasID]
		if !ok {
			k = &StatistikKelas{KelasID: kelasID}
			if row.Jurnal.Jadwal.Kelas != nil {
				k.NamaKelas = row.Jurnal.Jadwal.Kelas.Nama
			}
			perKelas[kelasID] = k
		}
		k.add(row.Status)
	}

	daily := make([]StatistikHarian, 0, len(harian))
	for _, h := range harian {
		daily = append(daily, *h)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Tanggal < daily[j].Tanggal })

	byClass := make([]StatistikKelas, 0, len(perKelas))
	for _, k := range perKelas {
		byClass = append(byClass, *k)
	}
	sort.Slice(byClass, func(i, j int) bool {
		if byClass[i].NamaKelas != byClass[j].NamaKelas {
			return byClass[i].NamaKelas < byClass[j].NamaKelas
		}
		return byClass[i].KelasID.String() < byClass[j].KelasID.String()
	})

	return &AbsensiReport{DailyStats: daily, ByClass: byClass, TotalStats: total}
}
