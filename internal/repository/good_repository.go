package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type GoodRepository interface {
	Create(good *models.Good) error
	GetByID(id uint) (*models.Good, error)
	GetByStatus(status string) ([]models.Good, error)
	GetAll() ([]models.Good, error)
	Update(good *models.Good) (*models.Good, error)
	UpdateStatus(id uint, status string) (*models.Good, error)
	BumpChangestamp(id uint) error
	Delete(id uint) error
}

type goodRepository struct {
	db *gorm.DB
}

func NewGoodRepository(db *gorm.DB) GoodRepository {
	return &goodRepository{db: db}
}

func (r *goodRepository) Create(good *models.Good) error {
	now := time.Now()
	good.Status = models.StatusNew
	good.Createstamp = now
	good.Changestamp = now
	return r.db.Create(good).Error
}

func (r *goodRepository) GetByID(id uint) (*models.Good, error) {
	var good models.Good
	err := r.db.First(&good, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &good, nil
}

func (r *goodRepository) GetByStatus(status string) ([]models.Good, error) {
	var goods []models.Good
	err := r.db.Where("status = ?", status).Order("id desc").Find(&goods).Error
	return goods, err
}

func (r *goodRepository) GetAll() ([]models.Good, error) {
	var goods []models.Good
	err := r.db.Order("id desc").Find(&goods).Error
	return goods, err
}

// Update replaces every editable field and bumps changestamp. The read-back
// turns a write against a missing id into NotFound.
func (r *goodRepository) Update(good *models.Good) (*models.Good, error) {
	err := r.db.Model(&models.Good{}).
		Where("id = ?", good.ID).
		Updates(map[string]interface{}{
			"name":               good.Name,
			"category_id":        good.CategoryID,
			"price":              good.Price,
			"non_discount_price": good.NonDiscountPrice,
			"description":        good.Description,
			"changestamp":        time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(good.ID)
}

func (r *goodRepository) UpdateStatus(id uint, status string) (*models.Good, error) {
	err := r.db.Model(&models.Good{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "changestamp": time.Now()}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *goodRepository) BumpChangestamp(id uint) error {
	return r.db.Model(&models.Good{}).
		Where("id = ?", id).
		Update("changestamp", time.Now()).Error
}

// Delete removes the good and its images. The image cascade is explicit; the
// store is not trusted to enforce it.
func (r *goodRepository) Delete(id uint) error {
	if err := r.db.Where("good_id = ?", id).Delete(&models.GoodImage{}).Error; err != nil {
		return err
	}
	result := r.db.Delete(&models.Good{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
