package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-booking/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) List(c *fiber.Ctx) error {
	result, err := h.auditService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.JSON(result)
}
