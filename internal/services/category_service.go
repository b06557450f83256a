package services

import (
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type CategoryService interface {
	CreateCategory(title string) (*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	GetActiveCategories() ([]models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(id uint, title string) (*models.Category, error)
	SetCategoryStatus(id uint, status string) (*models.Category, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(title string) (*models.Category, error) {
	return s.categoryRepo.Create(title)
}

func (s *categoryService) GetCategory(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

func (s *categoryService) GetActiveCategories() ([]models.Category, error) {
	return s.categoryRepo.GetByStatus(models.StatusNew)
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) UpdateCategory(id uint, title string) (*models.Category, error) {
	return s.categoryRepo.Update(id, title)
}

func (s *categoryService) SetCategoryStatus(id uint, status string) (*models.Category, error) {
	return s.categoryRepo.UpdateStatus(id, status)
}

func (s *categoryService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}
