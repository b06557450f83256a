package services

import (
	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type UserService interface {
	GetUser(id int64) (*models.User, error)
	RegisterContact(id int64, username *string) (*models.User, error)
	UpdateMode(id int64, mode string) (*models.User, error)
	UpdatePhone(id int64, phone string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id int64) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// RegisterContact creates the user on first contact (bot or API) and bumps
// changestamp on every subsequent one.
func (s *userService) RegisterContact(id int64, username *string) (*models.User, error) {
	return s.userRepo.Upsert(id, username, nil)
}

func (s *userService) UpdateMode(id int64, mode string) (*models.User, error) {
	if err := s.userRepo.UpdateMode(id, mode); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(id)
}

func (s *userService) UpdatePhone(id int64, phone string) (*models.User, error) {
	return s.userRepo.Upsert(id, nil, &phone)
}
