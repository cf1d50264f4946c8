package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// CatalogHandler serves the public product browsing endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
	phone   string
}

// NewCatalogHandler constructs a CatalogHandler. phone is the business
// WhatsApp number embedded in order links.
func NewCatalogHandler(catalog *service.CatalogService, phone string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, phone: phone}
}

// ListProducts handles GET /v1/products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")

	products := h.catalog.ListProducts(category, query)
	utils.Success(c, 200, "Products retrieved", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// ListFeatured handles GET /v1/products/featured
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	limit := service.DefaultFeaturedLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	products := h.catalog.ListFeatured(limit)
	utils.Success(c, 200, "Featured products retrieved", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET /v1/products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")
	lang := c.DefaultQuery("lang", "es")

	product, err := h.catalog.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	message := utils.ProductInquiryMessage(lang, product.DisplayName(lang))
	utils.Success(c, 200, "Product retrieved", gin.H{
		"product":     product,
		"whatsappUrl": utils.WhatsAppLink(h.phone, message),
	})
}

// GetRelated handles GET /v1/products/:slug/related
func (h *CatalogHandler) GetRelated(c *gin.Context) {
	slug := c.Param("slug")

	product, err := h.catalog.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	limit := service.DefaultRelatedLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	related := h.catalog.GetRelated(product.ID, string(product.Category), limit)
	utils.Success(c, 200, "Related products retrieved", gin.H{
		"products": related,
		"total":    len(related),
	})
}
