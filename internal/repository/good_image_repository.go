package repository

import (
	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type GoodImageRepository interface {
	Create(image *models.GoodImage) error
	GetByGoodID(goodID uint) ([]models.GoodImage, error)
	UpdateDisplayOrder(id uint, displayOrder int) error
	DeleteByURL(goodID uint, imageURL string) error
}

type goodImageRepository struct {
	db *gorm.DB
}

func NewGoodImageRepository(db *gorm.DB) GoodImageRepository {
	return &goodImageRepository{db: db}
}

func (r *goodImageRepository) Create(image *models.GoodImage) error {
	return r.db.Create(image).Error
}

func (r *goodImageRepository) GetByGoodID(goodID uint) ([]models.GoodImage, error) {
	var images []models.GoodImage
	err := r.db.Where("good_id = ?", goodID).Order("display_order asc").Find(&images).Error
	return images, err
}

func (r *goodImageRepository) UpdateDisplayOrder(id uint, displayOrder int) error {
	return r.db.Model(&models.GoodImage{}).
		Where("id = ?", id).
		Update("display_order", displayOrder).Error
}

func (r *goodImageRepository) DeleteByURL(goodID uint, imageURL string) error {
	result := r.db.Where("good_id = ? AND image_url = ?", goodID, imageURL).Delete(&models.GoodImage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
