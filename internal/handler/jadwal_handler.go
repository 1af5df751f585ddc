package handler

import (
	"jurnal-guru-backend/internal/helper"
	"jurnal-guru-backend/internal/middleware"
	"jurnal-guru-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type JadwalHandler struct {
	repo repository.JadwalRepository
	log  *zap.Logger
}

func NewJadwalHandler(repo repository.JadwalRepository, log *zap.Logger) *JadwalHandler {
	return &JadwalHandler{repo: repo, log: log}
}

// GetMine: jadwal mingguan guru yang login, urut hari lalu jam mulai.
// Query opsional: semester, tahun_ajaran, kelas_id.
func (h *JadwalHandler) GetMine(c *fiber.Ctx) error {
	guruID, ok := middleware.GuruID(c)
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Akses ditolak: akun bukan guru")
	}
	kelasID, err := queryUUID(c, "kelas_id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "kelas_id tidak valid")
	}

	jadwals, err := h.repo.FindByGuru(c.UserContext(), guruID, repository.JadwalFilter{
		Semester:    queryString(c, "semester"),
		TahunAjaran: queryString(c, "tahun_ajaran"),
		KelasID:     kelasID,
	})
	if err != nil {
		h.log.Error("gagal mengambil jadwal", zap.String("guru_id", guruID.String()), zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.Success(c, "Berhasil mengambil jadwal", jadwals)
}
