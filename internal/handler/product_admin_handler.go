package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
	"github.com/mueblessanmiguel/catalogo_api/internal/viewstate"
)

// ProductAdminHandler serves product CRUD for the admin panel.
type ProductAdminHandler struct {
	products *service.ProductAdminService
}

// NewProductAdminHandler constructs a ProductAdminHandler.
func NewProductAdminHandler(products *service.ProductAdminService) *ProductAdminHandler {
	return &ProductAdminHandler{products: products}
}

// List handles GET /v1/admin/products. The full list (inactive included) is
// fetched once and narrowed in memory by the same transforms the table view
// uses, so results and any derived counts stay consistent.
func (h *ProductAdminHandler) List(c *gin.Context) {
	products, err := h.products.List()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}

	products = viewstate.FilterProductsByCategory(products, c.Query("category"))
	products = viewstate.SearchProducts(products, c.Query("q"))
	if v := c.Query("active"); v != "" {
		active := v == "true"
		products = viewstate.FilterProductsByActive(products, &active)
	}

	utils.Success(c, 200, "Products retrieved", gin.H{
		"products": products,
		"total":    len(products),
	})
}

// Get handles GET /v1/admin/products/:id
func (h *ProductAdminHandler) Get(c *gin.Context) {
	product, err := h.products.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// GetBySlug handles GET /v1/admin/products/slug/:slug
func (h *ProductAdminHandler) GetBySlug(c *gin.Context) {
	product, err := h.products.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

// Create handles POST /v1/admin/products
func (h *ProductAdminHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.products.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCategory):
			utils.Error(c, 400, "INVALID_CATEGORY", "Category is not one of the catalog categories")
		case errors.Is(err, utils.ErrInvalidSlug):
			utils.Error(c, 400, "INVALID_SLUG", "A slug could not be derived from the name")
		case errors.Is(err, utils.ErrSlugExists):
			utils.Error(c, 400, "SLUG_EXISTS", "A product with this slug already exists")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		}
		return
	}

	utils.Success(c, 201, "Product created", product)
}

// Update handles PUT /v1/admin/products/:id
func (h *ProductAdminHandler) Update(c *gin.Context) {
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.products.Update(c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		case errors.Is(err, utils.ErrInvalidCategory):
			utils.Error(c, 400, "INVALID_CATEGORY", "Category is not one of the catalog categories")
		case errors.Is(err, utils.ErrSlugExists):
			utils.Error(c, 400, "SLUG_EXISTS", "A product with this slug already exists")
		default:
			utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		}
		return
	}

	utils.Success(c, 200, "Product updated", product)
}

// Delete handles DELETE /v1/admin/products/:id (soft delete)
func (h *ProductAdminHandler) Delete(c *gin.Context) {
	if err := h.products.SoftDelete(c.Param("id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}
	utils.Success(c, 200, "Product deactivated", nil)
}

// HardDelete handles DELETE /v1/admin/products/:id/permanent
func (h *ProductAdminHandler) HardDelete(c *gin.Context) {
	if err := h.products.HardDelete(c.Param("id")); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to permanently delete product")
		return
	}
	utils.Success(c, 200, "Product permanently deleted", nil)
}
