package handler

import (
	"time"

	"jurnal-guru-backend/internal/helper"
	"jurnal-guru-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	svc *report.Service
	loc *time.Location
	log *zap.Logger
}

func NewReportHandler(svc *report.Service, loc *time.Location, log *zap.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, loc: loc, log: log}
}

// GetKeterisian menyediakan laporan keterisian jurnal per guru.
// Query: period | start_date & end_date, semester, tahun_ajaran, guru_id, exclude_libur.
func (h *ReportHandler) GetKeterisian(c *fiber.Ctx) error {
	pq, err := periodQuery(c, h.loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	guruID, err := queryUUID(c, "guru_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "guru_id tidak valid")
	}

	res, err := h.svc.Keterisian(c.UserContext(), report.KeterisianQuery{
		PeriodQuery:      pq,
		Semester:         queryString(c, "semester"),
		TahunAjaran:      queryString(c, "tahun_ajaran"),
		ExcludeHariLibur: queryBool(c, "exclude_libur"),
		GuruID:           guruID,
	})
	if err != nil {
		h.log.Error("laporan keterisian gagal", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung keterisian jurnal")
	}

	return helper.Success(c, "Berhasil mengambil laporan keterisian", res)
}

type statistikKelasView struct {
	report.StatistikKelas
	PersentaseHadir int `json:"persentase_hadir"`
}

type absensiView struct {
	report.DateRange
	DailyStats                 []report.StatistikHarian `json:"daily_stats"`
	ByClass                    []statistikKelasView     `json:"by_class"`
	TotalStats                 report.StatistikAbsensi  `json:"total_stats"`
	PersentaseHadirKeseluruhan int                      `json:"persentase_hadir"`
}

// GetAbsensi menyediakan rekap absensi harian dan per kelas.
// Query: period | start_date & end_date, kelas_id, status (misal HADIR,SAKIT).
func (h *ReportHandler) GetAbsensi(c *fiber.Ctx) error {
	pq, err := periodQuery(c, h.loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	kelasID, err := queryUUID(c, "kelas_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "kelas_id tidak valid")
	}
	statuses, err := queryStatuses(c, "status")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Status harus salah satu dari HADIR, SAKIT, IZIN, ALPA")
	}

	res, err := h.svc.Absensi(c.UserContext(), report.AbsensiQuery{
		PeriodQuery: pq,
		KelasID:     kelasID,
		Statuses:    statuses,
	})
	if err != nil {
		h.log.Error("laporan absensi gagal", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil rekap absensi")
	}

	byClass := make([]statistikKelasView, 0, len(res.ByClass))
	for _, k := range res.ByClass {
		byClass = append(byClass, statistikKelasView{StatistikKelas: k, PersentaseHadir: k.PersentaseHadir()})
	}

	return helper.Success(c, "Berhasil mengambil rekap absensi", absensiView{
		DateRange:                  res.DateRange,
		DailyStats:                 res.DailyStats,
		ByClass:                    byClass,
		TotalStats:                 res.TotalStats,
		PersentaseHadirKeseluruhan: res.TotalStats.PersentaseHadir(),
	})
}
