package services

import (
	"errors"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type SettingService interface {
	GetSettings() ([]models.Setting, error)
	UpsertSetting(settingType, value string, actor int64) (*models.Setting, error)
	DeleteSetting(settingType string) error
}

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) GetSettings() ([]models.Setting, error) {
	return s.settingRepo.GetAllActive()
}

// UpsertSetting is read-then-branch, not a native upsert: concurrent upserts
// of a brand-new type can race into duplicate ACTIVE rows, same class of race
// as category auto-provisioning.
func (s *settingService) UpsertSetting(settingType, value string, actor int64) (*models.Setting, error) {
	existing, err := s.settingRepo.GetByType(settingType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.settingRepo.Create(settingType, value, actor)
		}
		return nil, err
	}
	return s.settingRepo.UpdateValue(existing.ID, value, actor)
}

func (s *settingService) DeleteSetting(settingType string) error {
	return s.settingRepo.SoftDelete(settingType)
}
