package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id int64) (*models.User, error)
	Upsert(id int64, username, phone *string) (*models.User, error)
	UpdateMode(id int64, mode string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Upsert creates the user on first contact and bumps changestamp on every
// later one. Username and phone are only touched when a value is supplied.
func (r *userRepository) Upsert(id int64, username, phone *string) (*models.User, error) {
	now := time.Now()

	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		user = models.User{
			ID:          id,
			Status:      models.StatusNew,
			Createstamp: now,
			Changestamp: now,
			Role:        models.RoleUser,
			Mode:        models.ModeUser,
			Username:    username,
			Phone:       phone,
		}
		if err := r.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	updates := map[string]interface{}{"changestamp": now}
	if username != nil {
		updates["username"] = *username
	}
	if phone != nil {
		updates["phone"] = *phone
	}
	if err := r.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *userRepository) UpdateMode(id int64, mode string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"mode": mode, "changestamp": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
