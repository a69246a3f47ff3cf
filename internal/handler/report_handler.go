package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-booking/internal/service/report"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.reportService.GetStats(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(stats)
}
