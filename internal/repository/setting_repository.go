package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Create(settingType, value string, actor int64) (*models.Setting, error)
	GetByType(settingType string) (*models.Setting, error)
	GetAllActive() ([]models.Setting, error)
	UpdateValue(id uint, value string, actor int64) (*models.Setting, error)
	SoftDelete(settingType string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Create(settingType, value string, actor int64) (*models.Setting, error) {
	now := time.Now()
	setting := models.Setting{
		Type:        settingType,
		Value:       value,
		Createstamp: now,
		Changestamp: now,
		Createuser:  actor,
		Changeuser:  actor,
		Status:      models.SettingActive,
	}
	if err := r.db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetByType only sees ACTIVE rows; soft-deleted settings are invisible to
// every reader, which is what keeps the type unique in practice.
func (r *settingRepository) GetByType(settingType string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("type = ? AND status = ?", settingType, models.SettingActive).
		First(&setting).Error
	if err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

func (r *settingRepository) GetAllActive() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Where("status = ?", models.SettingActive).Order("id asc").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) UpdateValue(id uint, value string, actor int64) (*models.Setting, error) {
	err := r.db.Model(&models.Setting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"value":       value,
			"changestamp": time.Now(),
			"changeuser":  actor,
		}).Error
	if err != nil {
		return nil, err
	}
	var setting models.Setting
	if err := r.db.First(&setting, id).Error; err != nil {
		return nil, translate(err)
	}
	return &setting, nil
}

func (r *settingRepository) SoftDelete(settingType string) error {
	result := r.db.Model(&models.Setting{}).
		Where("type = ? AND status = ?", settingType, models.SettingActive).
		Updates(map[string]interface{}{
			"status":      models.SettingDeleted,
			"changestamp": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
