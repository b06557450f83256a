package repository

import (
	"errors"
	"testing"

	"flower_shop/internal/models"
)

func TestUserRepositoryUpsertCreatesOnFirstContact(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	username := "flowerfan"
	user, err := repo.Upsert(777, &username, nil)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if user.Role != models.RoleUser || user.Mode != models.ModeUser {
		t.Errorf("defaults = %s/%s, want USER/USER", user.Role, user.Mode)
	}
	if user.Status != models.StatusNew {
		t.Errorf("status = %q, want NEW", user.Status)
	}
	if user.Username == nil || *user.Username != "flowerfan" {
		t.Errorf("username not stored: %v", user.Username)
	}
}

func TestUserRepositoryUpsertKeepsExistingFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	username := "original"
	if _, err := repo.Upsert(42, &username, nil); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	phone := "+79990001122"
	user, err := repo.Upsert(42, nil, &phone)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if user.Username == nil || *user.Username != "original" {
		t.Errorf("username lost on phone update: %v", user.Username)
	}
	if user.Phone == nil || *user.Phone != "+79990001122" {
		t.Errorf("phone not stored: %v", user.Phone)
	}
}

func TestUserRepositoryUpdateModeMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	if err := repo.UpdateMode(1, models.ModeAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateMode err = %v, want ErrNotFound", err)
	}
}
