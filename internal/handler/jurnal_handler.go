package handler

import (
	"errors"
	"time"

	"jurnal-guru-backend/internal/helper"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"
	"jurnal-guru-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type JurnalHandler struct {
	uc  *usecase.JurnalUsecase
	loc *time.Location
	log *zap.Logger
}

func NewJurnalHandler(uc *usecase.JurnalUsecase, loc *time.Location, log *zap.Logger) *JurnalHandler {
	return &JurnalHandler{uc: uc, loc: loc, log: log}
}

// fail memetakan error usecase ke status HTTP.
func (h *JurnalHandler) fail(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return helper.ValidationError(c, err, "Validasi gagal")
	case errors.Is(err, usecase.ErrForbidden):
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: jadwal bukan milik Anda")
	case errors.Is(err, usecase.ErrNotFound):
		return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
	case errors.Is(err, usecase.ErrJurnalExists):
		return helper.Error(c, fiber.StatusConflict, "Jurnal untuk jadwal dan tanggal ini sudah diisi")
	}
	h.log.Error(op+" gagal", zap.Error(err))
	return helper.Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}

// listFilter membaca filter riwayat jurnal dari query string.
func (h *JurnalHandler) listFilter(c *fiber.Ctx) (repository.JurnalFilter, error) {
	var (
		f   repository.JurnalFilter
		err error
	)
	if f.GuruID, err = queryUUID(c, "guru_id"); err != nil {
		return f, err
	}
	if f.KelasID, err = queryUUID(c, "kelas_id"); err != nil {
		return f, err
	}
	if f.MataPelajaranID, err = queryUUID(c, "mata_pelajaran_id"); err != nil {
		return f, err
	}
	if f.Start, err = queryDate(c, "start_date", h.loc); err != nil {
		return f, err
	}
	if f.End, err = queryDate(c, "end_date", h.loc); err != nil {
		return f, err
	}
	if raw := queryString(c, "status"); raw != nil {
		s := model.StatusKetercapaian(*raw)
		switch s {
		case model.Tercapai, model.TercapaiSebagian, model.TidakTercapai:
			f.StatusKetercapaian = &s
		default:
			return f, errInvalidQuery
		}
	}
	return f, nil
}

func (h *JurnalHandler) list(c *fiber.Ctx, filter repository.JurnalFilter, opt helper.Options) error {
	p := helper.ParseFiber(c, opt)
	jurnals, total, err := h.uc.List(c.UserContext(), filter, p.Limit(), p.Offset())
	if err != nil {
		return h.fail(c, err, "list jurnal")
	}
	return helper.SuccessWithMeta(c, "Berhasil mengambil riwayat jurnal", jurnals, helper.BuildMeta(total, p))
}

// AdminList: semua jurnal, bisa difilter guru/kelas/mapel/tanggal/status.
func (h *JurnalHandler) AdminList(c *fiber.Ctx) error {
	filter, err := h.listFilter(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter filter tidak valid")
	}
	return h.list(c, filter, helper.AdminOpts)
}

func (h *JurnalHandler) AdminGet(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	jurnal, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "get jurnal")
	}
	return helper.Success(c, "Berhasil mengambil jurnal", jurnal)
}

func (h *JurnalHandler) AdminDelete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err, "delete jurnal")
	}
	return helper.Success(c, "Jurnal berhasil dihapus", nil)
}

// GuruList: riwayat jurnal milik guru yang login.
func (h *JurnalHandler) GuruList(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	filter, err := h.listFilter(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter filter tidak valid")
	}
	filter.GuruID = &guruID
	return h.list(c, filter, helper.DefaultOpts)
}

func (h *JurnalHandler) GuruGet(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	jurnal, err := h.uc.GetOwned(c.UserContext(), guruID, id)
	if err != nil {
		return h.fail(c, err, "get jurnal")
	}
	return helper.Success(c, "Berhasil mengambil jurnal", jurnal)
}

func (h *JurnalHandler) Create(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	var req usecase.JurnalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format data tidak valid")
	}

	jurnal, err := h.uc.Create(c.UserContext(), guruID, req)
	if err != nil {
		return h.fail(c, err, "create jurnal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jurnal berhasil disimpan", jurnal)
}

func (h *JurnalHandler) Update(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jurnal tidak valid")
	}
	var req usecase.JurnalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format data tidak valid")
	}

	jurnal, err := h.uc.Update(c.UserContext(), guruID, id, req)
	if err != nil {
		return h.fail(c, err, "update jurnal")
	}
	return helper.Success(c, "Jurnal berhasil diperbarui", jurnal)
}

// JadwalHariIni: slot mengajar guru pada tanggal (default hari ini) beserta status pengisian.
func (h *JurnalHandler) JadwalHariIni(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	tanggal, err := queryDate(c, "tanggal", h.loc)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if tanggal == nil {
		now := time.Now().In(h.loc)
		tanggal = &now
	}

	jadwals, err := h.uc.JadwalHariIni(c.UserContext(), guruID, *tanggal, repository.JadwalFilter{
		Semester:    queryString(c, "semester"),
		TahunAjaran: queryString(c, "tahun_ajaran"),
	})
	if err != nil {
		return h.fail(c, err, "jadwal hari ini")
	}
	return helper.Success(c, "Berhasil mengambil jadwal", jadwals)
}

// Roster: daftar siswa kelas dari jadwal, untuk form absensi.
func (h *JurnalHandler) Roster(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	jadwalID, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID jadwal tidak valid")
	}
	siswa, err := h.uc.Roster(c.UserContext(), guruID, jadwalID)
	if err != nil {
		return h.fail(c, err, "roster")
	}
	return helper.Success(c, "Berhasil mengambil daftar siswa", siswa)
}
