package handler

import (
	"jurnal-guru-backend/internal/helper"
	"jurnal-guru-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	svc *report.Service
	log *zap.Logger
}

func NewDashboardHandler(svc *report.Service, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: log}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.svc.Dashboard(c.UserContext())
	if err != nil {
		h.log.Error("dashboard gagal", zap.Error(err))
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data dashboard")
	}

	return helper.Success(c, "Berhasil mengambil statistik", stats)
}
