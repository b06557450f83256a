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

type ShopAddressHandler struct {
	addressService services.ShopAddressService
}

func NewShopAddressHandler(addressService services.ShopAddressService) *ShopAddressHandler {
	return &ShopAddressHandler{addressService: addressService}
}

// GetShopAddresses is public; the Mini App shows pickup points before login.
func (h *ShopAddressHandler) GetShopAddresses(c *gin.Context) {
	log.Println("Fetching all shop addresses")

	addresses, err := h.addressService.GetAddresses()
	if err != nil {
		log.Printf("Failed to fetch shop addresses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop addresses"})
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *ShopAddressHandler) CreateShopAddress(c *gin.Context) {
	var req models.ShopAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d creating new shop address: %s", middleware.UserID(c), req.Address)

	address, err := h.addressService.CreateAddress(req.Address)
	if err != nil {
		log.Printf("Failed to create shop address: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop address"})
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *ShopAddressHandler) UpdateShopAddress(c *gin.Context) {
	addressID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.ShopAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d updating shop address %d: %s", middleware.UserID(c), addressID, req.Address)

	address, err := h.addressService.UpdateAddress(addressID, req.Address)
	if err != nil {
		log.Printf("Failed to update shop address: %v", err)
		respondError(c, err,
			fmt.Sprintf("Shop address with id %d not found", addressID),
			"Failed to update shop address")
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *ShopAddressHandler) DeleteShopAddress(c *gin.Context) {
	addressID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d deleting shop address %d", middleware.UserID(c), addressID)

	if err := h.addressService.DeleteAddress(addressID); err != nil {
		log.Printf("Failed to delete shop address: %v", err)
		respondError(c, err,
			fmt.Sprintf("Shop address with id %d not found", addressID),
			"Failed to delete shop address")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Shop address %d deleted", addressID)})
}
