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

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func toCategoryDTO(category *models.Category) models.CategoryDTO {
	return models.CategoryDTO{
		ID:     category.ID,
		Title:  category.Title,
		Status: category.Status,
	}
}

func toCategoryDTOs(categories []models.Category) []models.CategoryDTO {
	dtos := make([]models.CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, toCategoryDTO(&categories[i]))
	}
	return dtos
}

// GetCategories returns categories with status NEW. Public endpoint.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	log.Println("Fetching all categories with status NEW")

	categories, err := h.categoryService.GetActiveCategories()
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, toCategoryDTOs(categories))
}

func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	log.Printf("User %d fetching all categories", middleware.UserID(c))

	categories, err := h.categoryService.GetAllCategories()
	if err != nil {
		log.Printf("Failed to fetch all categories: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch all categories"})
		return
	}
	c.JSON(http.StatusOK, toCategoryDTOs(categories))
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d fetching category %d", middleware.UserID(c), categoryID)

	category, err := h.categoryService.GetCategory(categoryID)
	if err != nil {
		respondError(c, err,
			fmt.Sprintf("Category with id %d not found", categoryID),
			"Failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, toCategoryDTO(category))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d creating new category: %s", middleware.UserID(c), req.Title)

	category, err := h.categoryService.CreateCategory(req.Title)
	if err != nil {
		log.Printf("Failed to create category: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusOK, toCategoryDTO(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	log.Printf("User %d updating category %d: %s", middleware.UserID(c), categoryID, req.Title)

	category, err := h.categoryService.UpdateCategory(categoryID, req.Title)
	if err != nil {
		log.Printf("Failed to update category: %v", err)
		respondError(c, err,
			fmt.Sprintf("Category with id %d not found", categoryID),
			"Failed to update category")
		return
	}
	c.JSON(http.StatusOK, toCategoryDTO(category))
}

func (h *CategoryHandler) UpdateCategoryStatus(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}
	newStatus := c.Query("new_status")
	if newStatus != models.StatusNew && newStatus != models.StatusBlocked {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be either 'NEW' or 'BLOCKED'"})
		return
	}

	log.Printf("User %d updating status for category %d to %s", middleware.UserID(c), categoryID, newStatus)

	category, err := h.categoryService.SetCategoryStatus(categoryID, newStatus)
	if err != nil {
		log.Printf("Failed to update category status: %v", err)
		respondError(c, err,
			fmt.Sprintf("Category with id %d not found", categoryID),
			"Failed to update category status")
		return
	}
	c.JSON(http.StatusOK, toCategoryDTO(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "id")
	if !ok {
		return
	}

	log.Printf("User %d deleting category %d", middleware.UserID(c), categoryID)

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		log.Printf("Failed to delete category: %v", err)
		respondError(c, err,
			fmt.Sprintf("Category with id %d not found", categoryID),
			"Failed to delete category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Category %d deleted", categoryID)})
}
