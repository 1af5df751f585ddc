package handler

import (
	"strings"
	"time"

	"jurnal-guru-backend/internal/helper"
	"jurnal-guru-backend/internal/model"
	"jurnal-guru-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HariLiburHandler struct {
	repo repository.HariLiburRepository
	loc  *time.Location
	now  func() time.Time
	log  *zap.Logger
}

func NewHariLiburHandler(repo repository.HariLiburRepository, loc *time.Location, log *zap.Logger) *HariLiburHandler {
	return &HariLiburHandler{repo: repo, loc: loc, now: time.Now, log: log}
}

// GetAll: default tahun berjalan, bisa dipersempit dengan start_date dan end_date.
func (h *HariLiburHandler) GetAll(c *fiber.Ctx) error {
	year := h.now().In(h.loc).Year()
	start := c.Query("start_date", time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(dateLayout))
	end := c.Query("end_date", time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).Format(dateLayout))
	if !validDate(start) || !validDate(end) {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	data, err := h.repo.GetBetween(c.UserContext(), start, end)
	if err != nil {
		h.log.Error("gagal mengambil hari libur", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.Success(c, "Berhasil mengambil hari libur", data)
}

type hariLiburRequest struct {
	Tanggal    string `json:"tanggal"`
	Keterangan string `json:"keterangan"`
}

func (h *HariLiburHandler) Create(c *fiber.Ctx) error {
	var req hariLiburRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Data tidak valid")
	}
	if !validDate(req.Tanggal) {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	libur := model.HariLibur{Tanggal: req.Tanggal, Keterangan: strings.TrimSpace(req.Keterangan)}
	if err := h.repo.Create(c.UserContext(), &libur); err != nil {
		if repository.IsDuplicate(err) {
			return helper.Error(c, fiber.StatusConflict, "Tanggal tersebut sudah terdaftar sebagai hari libur")
		}
		h.log.Error("gagal menyimpan hari libur", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Hari libur berhasil ditambahkan", libur)
}

func (h *HariLiburHandler) Delete(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if repository.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		h.log.Error("gagal menghapus hari libur", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus data")
	}
	return helper.Success(c, "Hari libur berhasil dihapus", nil)
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
