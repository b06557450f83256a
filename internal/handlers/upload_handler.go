package handlers

import (
	"errors"
	"log"
	"net/http"

	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadImages stores product images and returns their URLs for later
// association with a good.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}

	log.Printf("Uploading %d images", len(files))

	imageURLs, err := h.uploadService.SaveImages(files)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to save images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"imageUrls": imageURLs,
	})
}
