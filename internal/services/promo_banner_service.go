package services

import (
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type PromoBannerService interface {
	GetActiveBanners() ([]models.PromoBanner, error)
	GetAllBanners() ([]models.PromoBanner, error)
	CreateBanner(req *models.PromoBannerRequest) (*models.PromoBanner, error)
	UpdateBanner(id uint, req *models.PromoBannerRequest) (*models.PromoBanner, error)
	SetBannerStatus(id uint, status string) (*models.PromoBanner, error)
	DeleteBanner(id uint) error
}

type promoBannerService struct {
	bannerRepo repository.PromoBannerRepository
}

func NewPromoBannerService(bannerRepo repository.PromoBannerRepository) PromoBannerService {
	return &promoBannerService{bannerRepo: bannerRepo}
}

func (s *promoBannerService) GetActiveBanners() ([]models.PromoBanner, error) {
	return s.bannerRepo.GetActive()
}

func (s *promoBannerService) GetAllBanners() ([]models.PromoBanner, error) {
	return s.bannerRepo.GetAll()
}

func (s *promoBannerService) CreateBanner(req *models.PromoBannerRequest) (*models.PromoBanner, error) {
	banner := models.PromoBanner{
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.bannerRepo.Create(&banner); err != nil {
		return nil, err
	}
	return &banner, nil
}

func (s *promoBannerService) UpdateBanner(id uint, req *models.PromoBannerRequest) (*models.PromoBanner, error) {
	banner := models.PromoBanner{
		ID:           id,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}
	return s.bannerRepo.Update(&banner)
}

func (s *promoBannerService) SetBannerStatus(id uint, status string) (*models.PromoBanner, error) {
	return s.bannerRepo.UpdateStatus(id, status)
}

func (s *promoBannerService) DeleteBanner(id uint) error {
	return s.bannerRepo.Delete(id)
}
