package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type PromoBannerRepository interface {
	Create(banner *models.PromoBanner) error
	GetByID(id uint) (*models.PromoBanner, error)
	GetActive() ([]models.PromoBanner, error)
	GetAll() ([]models.PromoBanner, error)
	Update(banner *models.PromoBanner) (*models.PromoBanner, error)
	UpdateStatus(id uint, status string) (*models.PromoBanner, error)
	Delete(id uint) error
}

type promoBannerRepository struct {
	db *gorm.DB
}

func NewPromoBannerRepository(db *gorm.DB) PromoBannerRepository {
	return &promoBannerRepository{db: db}
}

func (r *promoBannerRepository) Create(banner *models.PromoBanner) error {
	now := time.Now()
	banner.Status = models.StatusNew
	banner.Createstamp = now
	banner.Changestamp = now
	return r.db.Create(banner).Error
}

func (r *promoBannerRepository) GetByID(id uint) (*models.PromoBanner, error) {
	var banner models.PromoBanner
	err := r.db.First(&banner, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &banner, nil
}

func (r *promoBannerRepository) GetActive() ([]models.PromoBanner, error) {
	var banners []models.PromoBanner
	err := r.db.Where("status = ?", models.StatusNew).Order("display_order asc").Find(&banners).Error
	return banners, err
}

func (r *promoBannerRepository) GetAll() ([]models.PromoBanner, error) {
	var banners []models.PromoBanner
	err := r.db.Order("id desc").Find(&banners).Error
	return banners, err
}

func (r *promoBannerRepository) Update(banner *models.PromoBanner) (*models.PromoBanner, error) {
	err := r.db.Model(&models.PromoBanner{}).
		Where("id = ?", banner.ID).
		Updates(map[string]interface{}{
			"image_url":     banner.ImageURL,
			"display_order": banner.DisplayOrder,
			"changestamp":   time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(banner.ID)
}

func (r *promoBannerRepository) UpdateStatus(id uint, status string) (*models.PromoBanner, error) {
	err := r.db.Model(&models.PromoBanner{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "changestamp": time.Now()}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *promoBannerRepository) Delete(id uint) error {
	result := r.db.Delete(&models.PromoBanner{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
