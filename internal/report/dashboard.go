package report

import (
	"context"
	"fmt"
	"time"

	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/google/uuid"
)

const jumlahJurnalTerbaru = 5

type JurnalTerbaru struct {
	ID                 uuid.UUID                `json:"id"`
	Tanggal            string                   `json:"tanggal"`
	NamaGuru           string                   `json:"nama_guru"`
	NamaKelas          string                   `json:"nama_kelas"`
	NamaMataPelajaran  string                   `json:"nama_mata_pelajaran"`
	StatusKetercapaian model.StatusKetercapaian `json:"status_ketercapaian"`
	CreatedAt          time.Time                `json:"created_at"`
}

type DashboardSnapshot struct {
	Total             repository.MasterCount `json:"total"`
	Tanggal           string                 `json:"tanggal"`
	JadwalHariIni     int64                  `json:"jadwal_hari_ini"`
	JurnalHariIni     int64                  `json:"jurnal_hari_ini"`
	PersentaseHariIni int                    `json:"persentase_hari_ini"`
	JurnalTerbaru     []JurnalTerbaru        `json:"jurnal_terbaru"`
}

// Dashboard mengembalikan ringkasan operasional hari ini.
func (s *Service) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	snap, err := s.dashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return snap, nil
}

func (s *Service) dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	now := s.now()
	today := ResolvePeriod(PeriodQuery{Period: PeriodToday}, now)

	total, err := s.store.CountMaster(ctx)
	if err != nil {
		return nil, err
	}
	jadwal, err := s.store.CountJadwalByHari(ctx, int(now.Weekday()))
	if err != nil {
		return nil, err
	}
	jurnal, err := s.store.CountJurnalInRange(ctx, today.Start, today.End)
	if err != nil {
		return nil, err
	}
	recent, err := s.store.RecentJurnal(ctx, jumlahJurnalTerbaru)
	if err != nil {
		return nil, err
	}

	feed := make([]JurnalTerbaru, 0, len(recent))
	for _, j := range recent {
		feed = append(feed, toJurnalTerbaru(j))
	}

	return &DashboardSnapshot{
		Total:             total,
		Tanggal:           now.Format(dateLayout),
		JadwalHariIni:     jadwal,
		JurnalHariIni:     jurnal,
		PersentaseHariIni: Persentase(int(jurnal), int(jadwal)),
		JurnalTerbaru:     feed,
	}, nil
}

func toJurnalTerbaru(j model.Jurnal) JurnalTerbaru {
	item := JurnalTerbaru{
		ID:                 j.ID,
		Tanggal:            j.TanggalTime().Format(dateLayout),
		StatusKetercapaian: j.StatusKetercapaian,
		CreatedAt:          j.CreatedAt,
	}
	if jd := j.Jadwal; jd != nil {
		if jd.Guru != nil {
			item.NamaGuru = jd.Guru.Nama
		}
		if jd.Kelas != nil {
			item.NamaKelas = jd.Kelas.Nama
		}
		if jd.MataPelajaran != nil {
			item.NamaMataPelajaran = jd.MataPelajaran.Nama
		}
	}
	return item
}
