package services

import (
	"errors"
	"testing"

	"flower_shop/internal/repository"
)

func TestUpsertSettingCreateThenUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	created, err := svc.UpsertSetting("MANAGER_CHAT_ID", "111", 1)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated, err := svc.UpsertSetting("MANAGER_CHAT_ID", "222", 2)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("second upsert created a new row (%d vs %d)", updated.ID, created.ID)
	}
	if updated.Value != "222" {
		t.Errorf("value = %q, want 222", updated.Value)
	}
	if updated.Changeuser != 2 || updated.Createuser != 1 {
		t.Errorf("audit users = %d/%d, want create 1 / change 2", updated.Createuser, updated.Changeuser)
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if len(settings) != 1 {
		t.Fatalf("got %d settings, want 1", len(settings))
	}
}

func TestUpsertSettingAfterDeleteCreatesFreshRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	created, err := svc.UpsertSetting("ORDER_EMAIL", "old@example.com", 1)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := svc.DeleteSetting("ORDER_EMAIL"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	recreated, err := svc.UpsertSetting("ORDER_EMAIL", "new@example.com", 2)
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	if recreated.ID == created.ID {
		t.Error("upsert after soft delete must create a new row, not revive the old one")
	}

	settings, err := svc.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if len(settings) != 1 || settings[0].Value != "new@example.com" {
		t.Fatalf("settings = %+v, want only the recreated row", settings)
	}
}

func TestDeleteSettingMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	if err := svc.DeleteSetting("NOPE"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
