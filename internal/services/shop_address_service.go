package services

import (
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type ShopAddressService interface {
	GetAddresses() ([]models.ShopAddress, error)
	CreateAddress(address string) (*models.ShopAddress, error)
	UpdateAddress(id uint, address string) (*models.ShopAddress, error)
	DeleteAddress(id uint) error
}

type shopAddressService struct {
	addressRepo repository.ShopAddressRepository
}

func NewShopAddressService(addressRepo repository.ShopAddressRepository) ShopAddressService {
	return &shopAddressService{addressRepo: addressRepo}
}

func (s *shopAddressService) GetAddresses() ([]models.ShopAddress, error) {
	return s.addressRepo.GetAll()
}

func (s *shopAddressService) CreateAddress(address string) (*models.ShopAddress, error) {
	return s.addressRepo.Create(address)
}

func (s *shopAddressService) UpdateAddress(id uint, address string) (*models.ShopAddress, error) {
	return s.addressRepo.Update(id, address)
}

func (s *shopAddressService) DeleteAddress(id uint) error {
	return s.addressRepo.Delete(id)
}
