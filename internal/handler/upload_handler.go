package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/mueblessanmiguel/catalogo_api/internal/service"
	"github.com/mueblessanmiguel/catalogo_api/internal/utils"
)

// UploadHandler serves product-image uploads for the admin panel.
type UploadHandler struct {
	storage *service.StorageService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(storage *service.StorageService) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage handles POST /v1/admin/products/images. The productId form
// field is optional: images for a not-yet-created product land under "new".
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing image file")
		return
	}

	if fileHeader.Size > service.MaxImageSize {
		utils.Error(c, 400, "FILE_TOO_LARGE", "Image exceeds the 5 MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageSize+1))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read image")
		return
	}

	url, err := h.storage.UploadProductImage(
		c.Request.Context(),
		c.PostForm("productId"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrUnsupportedFileType):
			utils.Error(c, 400, "UNSUPPORTED_FILE_TYPE", "Only PNG, JPEG and WEBP images are accepted")
		case errors.Is(err, utils.ErrFileTooLarge):
			utils.Error(c, 400, "FILE_TOO_LARGE", "Image exceeds the 5 MB limit")
		default:
			utils.Error(c, 500, "UPLOAD_FAILED", "Failed to upload image")
		}
		return
	}

	utils.Success(c, 201, "Image uploaded", gin.H{"url": url})
}
