package handlers

import (
	"fmt"
	"log"
	"net/http"

	"flower_shop/internal/middleware"
	"flower_shop/internal/models"
	"flower_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type PromoBannerHandler struct {
	bannerService services.PromoBannerService
}

func NewPromoBannerHandler(bannerService services.PromoBannerService) *PromoBannerHandler {
	return &PromoBannerHandler{bannerService: bannerService}
}

// GetPromoBanners returns active banners in display order. Public endpoint.
func (h *PromoBannerHandler) GetPromoBanners(c *gin.Context) {
	log.Println("Fetching all promo banners with status NEW")

	banners, err := h.bannerService.GetActiveBanners()
	if err != nil {
		log.Printf("Error fetching promo banners: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo banners"})
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *PromoBannerHandler) GetAllPromoBanners(c *gin.Context) {
	log.Printf("User %d fetching all promo banners", middleware.UserID(c))

	banners, err := h.bannerService.GetAllBanners()
	if err != nil {
		log.Printf("Failed to fetch all promo banners: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch all promo banners"})
		return
	}
	c.JSON(http.StatusOK, banners)
}

func (h *PromoBannerHandler) CreatePromoBanner(c *gin.Context) {
	var req models.PromoBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d creating new promo banner", middleware.UserID(c))

	banner, err := h.bannerService.CreateBanner(&req)
	if err != nil {
		log.Printf("Failed to create promo banner: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo banner"})
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *PromoBannerHandler) UpdatePromoBanner(c *gin.Context) {
	bannerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.PromoBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d updating promo banner %d", middleware.UserID(c), bannerID)

	banner, err := h.bannerService.UpdateBanner(bannerID, &req)
	if err != nil {
		log.Printf("Failed to update promo banner: %v", err)
		respondError(c, err,
			fmt.Sprintf("Promo banner with id %d not found", bannerID),
			"Failed to update promo banner")
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *PromoBannerHandler) BlockPromoBanner(c *gin.Context) {
	h.setStatus(c, models.StatusBlocked, "Failed to block promo banner")
}

func (h *PromoBannerHandler) ActivatePromoBanner(c *gin.Context) {
	h.setStatus(c, models.StatusNew, "Failed to activate promo banner")
}

func (h *PromoBannerHandler) setStatus(c *gin.Context, status, failureMessage string) {
	bannerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d setting promo banner %d status to %s", middleware.UserID(c), bannerID, status)

	banner, err := h.bannerService.SetBannerStatus(bannerID, status)
	if err != nil {
		log.Printf("%s: %v", failureMessage, err)
		respondError(c, err,
			fmt.Sprintf("Promo banner with id %d not found", bannerID),
			failureMessage)
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *PromoBannerHandler) DeletePromoBanner(c *gin.Context) {
	bannerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d deleting promo banner %d", middleware.UserID(c), bannerID)

	if err := h.bannerService.DeleteBanner(bannerID); err != nil {
		log.Printf("Failed to delete promo banner: %v", err)
		respondError(c, err,
			fmt.Sprintf("Promo banner with id %d not found", bannerID),
			"Failed to delete promo banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Promo banner %d deleted", bannerID)})
}
