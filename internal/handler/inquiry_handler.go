package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// InquiryHandler serves the public contact-form submission and the admin
// triage endpoints.
type InquiryHandler struct {
	inquiries *service.InquiryService
}

// NewInquiryHandler constructs an InquiryHandler.
func NewInquiryHandler(inquiries *service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Submit handles POST /v1/inquiries (public, rate limited)
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req service.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	inquiry, err := h.inquiries.Submit(&req)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to submit inquiry")
		return
	}

	utils.Success(c, 201, "Inquiry submitted", inquiry)
}

// List handles GET /v1/admin/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	status := c.Query("status")

	result, err := h.inquiries.List(status)
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve inquiries")
		return
	}

	utils.Success(c, 200, "Inquiries retrieved", result)
}

// CountNew handles GET /v1/admin/inquiries/new/count. The badge count never
// fails: on backend trouble it reports zero.
func (h *InquiryHandler) CountNew(c *gin.Context) {
	utils.Success(c, 200, "New inquiry count retrieved", gin.H{
		"count": h.inquiries.CountNew(),
	})
}

// UpdateStatus handles PUT /v1/admin/inquiries/:id/status
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	inquiry, err := h.inquiries.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidStatus):
			utils.Error(c, 400, "INVALID_STATUS", "Status must be new, reviewed or archived")
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "INQUIRY_NOT_FOUND", "Inquiry not found")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update inquiry status")
		}
		return
	}

	utils.Success(c, 200, "Inquiry status updated", inquiry)
}

// Delete handles DELETE /v1/admin/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
	if err := h.inquiries.Delete(c.Param("id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete inquiry")
		return
	}
	utils.Success(c, 200, "Inquiry deleted", nil)
}
