package repository

import (
	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type ShopAddressRepository interface {
	Create(address string) (*models.ShopAddress, error)
	GetAll() ([]models.ShopAddress, error)
	Update(id uint, address string) (*models.ShopAddress, error)
	Delete(id uint) error
}

type shopAddressRepository struct {
	db *gorm.DB
}

func NewShopAddressRepository(db *gorm.DB) ShopAddressRepository {
	return &shopAddressRepository{db: db}
}

func (r *shopAddressRepository) Create(address string) (*models.ShopAddress, error) {
	shopAddress := models.ShopAddress{Address: address}
	if err := r.db.Create(&shopAddress).Error; err != nil {
		return nil, err
	}
	return &shopAddress, nil
}

func (r *shopAddressRepository) GetAll() ([]models.ShopAddress, error) {
	var addresses []models.ShopAddress
	err := r.db.Order("id asc").Find(&addresses).Error
	return addresses, err
}

func (r *shopAddressRepository) Update(id uint, address string) (*models.ShopAddress, error) {
	err := r.db.Model(&models.ShopAddress{}).
		Where("id = ?", id).
		Update("address", address).Error
	if err != nil {
		return nil, err
	}
	var shopAddress models.ShopAddress
	if err := r.db.First(&shopAddress, id).Error; err != nil {
		return nil, translate(err)
	}
	return &shopAddress, nil
}

func (r *shopAddressRepository) Delete(id uint) error {
	result := r.db.Delete(&models.ShopAddress{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
