package handlers

import (
	"strconv"
	"strings"

	"hosteldesk/internal/core/services"
	"hosteldesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ComplaintHandler handles complaint endpoints, both resident-facing and
// admin-facing.
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// SubmitRequest represents complaint submission request body
type SubmitRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// UpdateStatusRequest represents status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListMine lists the authenticated user's own complaints
func (h *ComplaintHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	complaints, err := h.complaintService.ListForUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list complaints")
	}

	return response.Success(c, "Complaints retrieved", fiber.Map{
		"complaints": complaints,
	})
}

// Submit files a new complaint for the authenticated user
func (h *ComplaintHandler) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Category) == "" {
		return response.BadRequest(c, "Category is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, "Description is required")
	}

	input := &services.SubmitInput{
		Category:    req.Category,
		Description: req.Description,
	}

	complaint, err := h.complaintService.Submit(c.Context(), userID, input)
	if err != nil {
		return response.InternalServerError(c, "Failed to submit complaint")
	}

	return response.Created(c, "Complaint submitted", fiber.Map{
		"complaint": complaint,
	})
}

// ListAll lists every complaint with its owner's identity (Admin only)
func (h *ComplaintHandler) ListAll(c *fiber.Ctx) error {
	complaints, err := h.complaintService.ListAllWithOwner(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list complaints")
	}

	return response.Success(c, "Complaints retrieved", fiber.Map{
		"complaints": complaints,
	})
}

// UpdateStatus sets a complaint's status (Admin only)
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid complaint ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Status) == "" {
		return response.BadRequest(c, "Status is required")
	}

	if err := h.complaintService.SetStatus(c.Context(), uint(id), req.Status); err != nil {
		return response.InternalServerError(c, "Failed to update status")
	}

	return response.Success(c, "Status updated", nil)
}

// Delete removes a complaint (Admin only)
func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid complaint ID")
	}

	if err := h.complaintService.Delete(c.Context(), uint(id)); err != nil {
		return response.InternalServerError(c, "Failed to delete complaint")
	}

	return response.Success(c, "Complaint deleted", nil)
}

// Reports returns complaint counts per canonical status (Admin only)
func (h *ComplaintHandler) Reports(c *fiber.Ctx) error {
	report, err := h.complaintService.Report(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build report")
	}

	return response.Success(c, "Report generated", fiber.Map{
		"report": report,
	})
}
