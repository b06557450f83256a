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

type UserHandler struct {
	userService    services.UserService
	settingService services.SettingService
}

func NewUserHandler(userService services.UserService, settingService services.SettingService) *UserHandler {
	return &UserHandler{userService: userService, settingService: settingService}
}

func toUserInfoDTO(user *models.User) models.UserInfoDTO {
	return models.UserInfoDTO{
		ID:       user.ID,
		Role:     user.Role,
		Mode:     user.Mode,
		Status:   user.Status,
		Username: user.Username,
		Phone:    user.Phone,
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.UserID(c)
	log.Printf("Fetching user info for user_id=%d", userID)

	user, err := h.userService.GetUser(userID)
	if err != nil {
		respondError(c, err, "User not found", "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, toUserInfoDTO(user))
}

func (h *UserHandler) UpdateCurrentUserMode(c *gin.Context) {
	var req models.UserModeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Mode != models.ModeAdmin && req.Mode != models.ModeUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode must be either 'ADMIN' or 'USER'"})
		return
	}

	userID := middleware.UserID(c)
	log.Printf("Updating mode for user_id=%d to %s", userID, req.Mode)

	user, err := h.userService.UpdateMode(userID, req.Mode)
	if err != nil {
		respondError(c, err, "User not found", "Failed to update user mode")
		return
	}
	c.JSON(http.StatusOK, toUserInfoDTO(user))
}

func (h *UserHandler) UpdateCurrentUserPhone(c *gin.Context) {
	var req models.PhoneUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID := middleware.UserID(c)
	log.Printf("Updating phone for user_id=%d", userID)

	user, err := h.userService.UpdatePhone(userID, req.Phone)
	if err != nil {
		respondError(c, err, "User not found", "Failed to update user phone")
		return
	}
	c.JSON(http.StatusOK, toUserInfoDTO(user))
}

func (h *UserHandler) GetSettings(c *gin.Context) {
	log.Printf("Fetching all settings for user_id=%d", middleware.UserID(c))

	settings, err := h.settingService.GetSettings()
	if err != nil {
		log.Printf("Failed to fetch settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *UserHandler) UpsertSetting(c *gin.Context) {
	var req models.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID := middleware.UserID(c)
	log.Printf("Upserting setting type=%s for user_id=%d", req.Type, userID)

	setting, err := h.settingService.UpsertSetting(req.Type, req.Value, userID)
	if err != nil {
		log.Printf("Failed to upsert setting: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert setting"})
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *UserHandler) DeleteSetting(c *gin.Context) {
	settingType := c.Param("type")

	log.Printf("Deleting setting type=%s by user_id=%d", settingType, middleware.UserID(c))

	if err := h.settingService.DeleteSetting(settingType); err != nil {
		respondError(c, err,
			fmt.Sprintf("Setting %s not found", settingType),
			"Failed to delete setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Setting %s deleted successfully", settingType)})
}
