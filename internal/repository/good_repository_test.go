package repository

import (
	"errors"
	"testing"

	"flower_shop/internal/models"
)

func TestGoodRepositoryCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	good := &models.Good{Name: "Розы 15 шт", Price: 2500}
	if err := repo.Create(good); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if good.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if good.Status != models.StatusNew {
		t.Errorf("status = %q, want %q", good.Status, models.StatusNew)
	}
	if good.Createstamp.IsZero() || good.Changestamp.IsZero() {
		t.Error("expected createstamp and changestamp to be set")
	}
}

func TestGoodRepositoryGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	if _, err := repo.GetByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID(42) err = %v, want ErrNotFound", err)
	}
}

func TestGoodRepositoryUpdateMissingReportsNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	_, err := repo.Update(&models.Good{ID: 99, Name: "Пионы", Price: 100})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update err = %v, want ErrNotFound", err)
	}
}

func TestGoodRepositoryListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	for _, name := range []string{"first", "second", "third"} {
		if err := repo.Create(&models.Good{Name: name, Price: 100}); err != nil {
			t.Fatalf("Create(%s): %v", name, err)
		}
	}

	goods, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(goods) != 3 {
		t.Fatalf("got %d goods, want 3", len(goods))
	}
	if goods[0].Name != "third" || goods[2].Name != "first" {
		t.Errorf("expected newest first, got %s..%s", goods[0].Name, goods[2].Name)
	}
}

func TestGoodRepositoryGetByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	active := &models.Good{Name: "active", Price: 100}
	blocked := &models.Good{Name: "blocked", Price: 100}
	if err := repo.Create(active); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(blocked); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.UpdateStatus(blocked.ID, models.StatusBlocked); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	goods, err := repo.GetByStatus(models.StatusNew)
	if err != nil {
		t.Fatalf("GetByStatus: %v", err)
	}
	if len(goods) != 1 || goods[0].ID != active.ID {
		t.Fatalf("GetByStatus(NEW) = %+v, want only the active good", goods)
	}
}

func TestGoodRepositoryDeleteRemovesImages(t *testing.T) {
	db := newTestDB(t)
	goodRepo := NewGoodRepository(db)
	imageRepo := NewGoodImageRepository(db)

	good := &models.Good{Name: "Тюльпаны", Price: 1200}
	if err := goodRepo.Create(good); err != nil {
		t.Fatalf("Create good: %v", err)
	}
	for i, url := range []string{"/api/static/a.jpg", "/api/static/b.jpg"} {
		img := &models.GoodImage{GoodID: good.ID, ImageURL: url, DisplayOrder: i}
		if err := imageRepo.Create(img); err != nil {
			t.Fatalf("Create image: %v", err)
		}
	}

	if err := goodRepo.Delete(good.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := goodRepo.GetByID(good.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("good still readable after delete: %v", err)
	}
	images, err := imageRepo.GetByGoodID(good.ID)
	if err != nil {
		t.Fatalf("GetByGoodID: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("expected images removed with the good, got %d", len(images))
	}
}

func TestGoodRepositoryDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodRepository(db)

	if err := repo.Delete(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(7) err = %v, want ErrNotFound", err)
	}
}

func TestGoodImageRepositoryOrderAndDeleteByURL(t *testing.T) {
	db := newTestDB(t)
	repo := NewGoodImageRepository(db)

	urls := []string{"/api/static/c.jpg", "/api/static/a.jpg", "/api/static/b.jpg"}
	for i, url := range urls {
		img := &models.GoodImage{GoodID: 1, ImageURL: url, DisplayOrder: len(urls) - i}
		if err := repo.Create(img); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	images, err := repo.GetByGoodID(1)
	if err != nil {
		t.Fatalf("GetByGoodID: %v", err)
	}
	if images[0].ImageURL != "/api/static/b.jpg" {
		t.Errorf("expected display_order ordering, got first = %s", images[0].ImageURL)
	}

	if err := repo.DeleteByURL(1, "/api/static/a.jpg"); err != nil {
		t.Fatalf("DeleteByURL: %v", err)
	}
	if err := repo.DeleteByURL(1, "/api/static/missing.jpg"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteByURL missing err = %v, want ErrNotFound", err)
	}
}
