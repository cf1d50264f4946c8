package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// ContactHandler serves the WhatsApp call-to-action links. The links are a
// one-way handoff: the site opens them and nothing is read back.
type ContactHandler struct {
	phone string
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(phone string) *ContactHandler {
	return &ContactHandler{phone: phone}
}

// GetLinks handles GET /v1/contact/links
func (h *ContactHandler) GetLinks(c *gin.Context) {
	lang := c.DefaultQuery("lang", "es")

	utils.Success(c, 200, "Contact links retrieved", gin.H{
		"whatsapp": gin.H{
			"general":     utils.WhatsAppLink(h.phone, utils.GeneralInquiryMessage(lang)),
			"customOrder": utils.WhatsAppLink(h.phone, utils.CustomOrderMessage(lang)),
			"direct":      utils.WhatsAppLink(h.phone, ""),
		},
	})
}
