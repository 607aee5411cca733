package handlers

import (
	"strconv"

	"hosteldesk/internal/core/services"
	"hosteldesk/internal/pkg/pagination"
	"hosteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuditHandler handles admin audit log endpoints
type AuditHandler struct {
	auditService *services.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListLogs lists login attempts, most recent first (Admin only)
func (h *AuditHandler) ListLogs(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListLogsInput{
		Page:  params.Page,
		Limit: params.Limit,
	}

	result, err := h.auditService.ListLogs(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list logs")
	}

	return response.Success(c, "Logs retrieved",
		pagination.NewResponse(result.Logs, params, result.Total))
}

// DeleteLog removes one audit entry (Admin only)
func (h *AuditHandler) DeleteLog(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid log ID")
	}

	if err := h.auditService.DeleteLog(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete log")
	}

	return response.Success(c, "Log deleted", nil)
}
