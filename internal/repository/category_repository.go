package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(title string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetByTitle(title string) (*models.Category, error)
	GetByStatus(status string) ([]models.Category, error)
	GetAll() ([]models.Category, error)
	Update(id uint, title string) (*models.Category, error)
	UpdateStatus(id uint, status string) (*models.Category, error)
	Delete(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(title string) (*models.Category, error) {
	now := time.Now()
	category := models.Category{
		Title:       title,
		Status:      models.StatusNew,
		Createstamp: now,
		Changestamp: now,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByTitle(title string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("title = ?", title).First(&category).Error
	if err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByStatus(status string) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("status = ?", status).Order("id asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("id asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(id uint, title string) (*models.Category, error) {
	err := r.db.Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "changestamp": time.Now()}).Error
	if err != nil {
		return nil, err
	}
	// Read back so a missing row surfaces as NotFound.
	return r.GetByID(id)
}

func (r *categoryRepository) UpdateStatus(id uint, status string) (*models.Category, error) {
	err := r.db.Model(&models.Category{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "changestamp": time.Now()}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *categoryRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
