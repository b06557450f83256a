package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"flower_shop/internal/middleware"
	"flower_shop/internal/models"
	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type GoodHandler struct {
	goodService   services.GoodService
	uploadService services.UploadService
}

func NewGoodHandler(goodService services.GoodService, uploadService services.UploadService) *GoodHandler {
	return &GoodHandler{goodService: goodService, uploadService: uploadService}
}

// GetGoods returns goods with status NEW. Public endpoint.
func (h *GoodHandler) GetGoods(c *gin.Context) {
	log.Println("Fetching all goods with status NEW")

	goods, err := h.goodService.GetActiveGoods()
	if err != nil {
		log.Printf("Failed to fetch goods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goods"})
		return
	}
	c.JSON(http.StatusOK, goods)
}

// GetAllGoods returns goods regardless of status. Any authenticated user may
// call it; order history needs blocked goods too.
func (h *GoodHandler) GetAllGoods(c *gin.Context) {
	log.Printf("User %d fetching all goods (all statuses)", middleware.UserID(c))

	goods, err := h.goodService.GetAllGoods()
	if err != nil {
		log.Printf("Failed to fetch all goods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch all goods"})
		return
	}
	c.JSON(http.StatusOK, goods)
}

func (h *GoodHandler) CreateGoodCard(c *gin.Context) {
	var req models.GoodCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d creating new good card: %s", middleware.UserID(c), req.Name)

	good, err := h.goodService.CreateGood(&req)
	if err != nil {
		log.Printf("Failed to create good card: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create good card"})
		return
	}
	c.JSON(http.StatusOK, good)
}

func (h *GoodHandler) UpdateGoodCard(c *gin.Context) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.GoodCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d updating good card %d: %s", middleware.UserID(c), goodID, req.Name)

	good, err := h.goodService.UpdateGood(goodID, &req)
	if err != nil {
		log.Printf("Failed to update good card: %v", err)
		respondError(c, err,
			fmt.Sprintf("Good with id %d not found", goodID),
			"Failed to update good card")
		return
	}
	c.JSON(http.StatusOK, good)
}

// AddGoodImages uploads the files and associates them with the good in one
// call.
func (h *GoodHandler) AddGoodImages(c *gin.Context) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}

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

	log.Printf("User %d adding %d images to good %d", middleware.UserID(c), len(files), goodID)

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

	if err := h.goodService.AddImages(goodID, imageURLs); err != nil {
		log.Printf("Failed to save image URLs to database: %v", err)
		respondError(c, err,
			fmt.Sprintf("Good with id %d not found", goodID),
			"Failed to associate images with good")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"goodId":    goodID,
		"imageUrls": imageURLs,
	})
}

func (h *GoodHandler) DeleteGood(c *gin.Context) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d deleting good %d", middleware.UserID(c), goodID)

	if err := h.goodService.DeleteGood(goodID); err != nil {
		log.Printf("Failed to delete good: %v", err)
		respondError(c, err,
			fmt.Sprintf("Good with id %d not found", goodID),
			"Failed to delete good")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Good %d deleted", goodID)})
}

func (h *GoodHandler) BlockGood(c *gin.Context) {
	h.setStatus(c, models.StatusBlocked, "Failed to block good")
}

func (h *GoodHandler) ActivateGood(c *gin.Context) {
	h.setStatus(c, models.StatusNew, "Failed to activate good")
}

func (h *GoodHandler) setStatus(c *gin.Context, status, failureMessage string) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d setting good %d status to %s", middleware.UserID(c), goodID, status)

	good, err := h.goodService.SetGoodStatus(goodID, status)
	if err != nil {
		log.Printf("%s: %v", failureMessage, err)
		respondError(c, err,
			fmt.Sprintf("Good with id %d not found", goodID),
			failureMessage)
		return
	}
	c.JSON(http.StatusOK, good)
}

func (h *GoodHandler) ReorderGoodImages(c *gin.Context) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ImageReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d reordering images for good %d", middleware.UserID(c), goodID)

	good, err := h.goodService.ReorderImages(goodID, req.ImageURLs)
	if err != nil {
		log.Printf("Failed to reorder images: %v", err)
		respondError(c, err,
			fmt.Sprintf("Good with id %d not found", goodID),
			"Failed to reorder images")
		return
	}
	c.JSON(http.StatusOK, good)
}

func (h *GoodHandler) DeleteGoodImage(c *gin.Context) {
	goodID, ok := parseID(c, "id")
	if !ok {
		return
	}
	imageURL := c.Query("image_url")
	if imageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image_url query parameter is required"})
		return
	}

	log.Printf("User %d deleting image %s from good %d", middleware.UserID(c), imageURL, goodID)

	if err := h.goodService.DeleteImage(goodID, imageURL); err != nil {
		log.Printf("Failed to delete image: %v", err)
		respondError(c, err, "Image not found", "Failed to delete image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Image deleted from good %d", goodID)})
}
