package services

import (
	"testing"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

func newGoodService(t *testing.T) (GoodService, repository.CategoryRepository, repository.GoodImageRepository) {
	t.Helper()
	db := newTestDB(t)
	categoryRepo := repository.NewCategoryRepository(db)
	imageRepo := repository.NewGoodImageRepository(db)
	svc := NewGoodService(repository.NewGoodRepository(db), imageRepo, categoryRepo)
	return svc, categoryRepo, imageRepo
}

func TestCreateGoodProvisionsCategory(t *testing.T) {
	svc, categoryRepo, _ := newGoodService(t)

	dto, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Букет «Весна»",
		Category: "Букеты",
		Price:    3500,
	})
	if err != nil {
		t.Fatalf("CreateGood: %v", err)
	}
	if dto.Category != "Букеты" {
		t.Errorf("dto category = %q, want Букеты", dto.Category)
	}

	category, err := categoryRepo.GetByTitle("Букеты")
	if err != nil {
		t.Fatalf("auto-provisioned category missing: %v", err)
	}
	if category.Status != models.StatusNew {
		t.Errorf("category status = %q, want NEW", category.Status)
	}

	// A second good with the same category title reuses the row.
	if _, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Букет «Лето»",
		Category: "Букеты",
		Price:    4000,
	}); err != nil {
		t.Fatalf("second CreateGood: %v", err)
	}
	categories, err := categoryRepo.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("got %d categories, want 1", len(categories))
	}
}

func TestGoodDTOImagesNeverNil(t *testing.T) {
	svc, _, _ := newGoodService(t)

	dto, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Гипсофила",
		Category: "Сухоцветы",
		Price:    500,
	})
	if err != nil {
		t.Fatalf("CreateGood: %v", err)
	}
	if dto.Images == nil {
		t.Fatal("images must be an empty slice, not nil")
	}
	if len(dto.Images) != 0 {
		t.Fatalf("unexpected images: %+v", dto.Images)
	}
}

func TestAddImagesAppendsAfterExisting(t *testing.T) {
	svc, _, imageRepo := newGoodService(t)

	dto, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Ирисы",
		Category: "Монобукеты",
		Price:    1800,
	})
	if err != nil {
		t.Fatalf("CreateGood: %v", err)
	}

	if err := svc.AddImages(dto.ID, []string{"/api/static/1.jpg", "/api/static/2.jpg"}); err != nil {
		t.Fatalf("AddImages: %v", err)
	}
	if err := svc.AddImages(dto.ID, []string{"/api/static/3.jpg"}); err != nil {
		t.Fatalf("AddImages second batch: %v", err)
	}

	images, err := imageRepo.GetByGoodID(dto.ID)
	if err != nil {
		t.Fatalf("GetByGoodID: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
	if images[2].ImageURL != "/api/static/3.jpg" || images[2].DisplayOrder != 2 {
		t.Errorf("later batch not appended after earlier one: %+v", images[2])
	}
}

func TestReorderImages(t *testing.T) {
	svc, _, imageRepo := newGoodService(t)

	dto, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Хризантемы",
		Category: "Монобукеты",
		Price:    2100,
	})
	if err != nil {
		t.Fatalf("CreateGood: %v", err)
	}
	urls := []string{"/api/static/a.jpg", "/api/static/b.jpg", "/api/static/c.jpg"}
	if err := svc.AddImages(dto.ID, urls); err != nil {
		t.Fatalf("AddImages: %v", err)
	}

	// Reversed order plus a URL the good does not own.
	if _, err := svc.ReorderImages(dto.ID, []string{
		"/api/static/c.jpg",
		"/api/static/b.jpg",
		"/api/static/foreign.jpg",
		"/api/static/a.jpg",
	}); err != nil {
		t.Fatalf("ReorderImages: %v", err)
	}

	images, err := imageRepo.GetByGoodID(dto.ID)
	if err != nil {
		t.Fatalf("GetByGoodID: %v", err)
	}
	got := []string{images[0].ImageURL, images[1].ImageURL, images[2].ImageURL}
	want := []string{"/api/static/c.jpg", "/api/static/b.jpg", "/api/static/a.jpg"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after reorder = %v, want %v", got, want)
		}
	}
}

func TestSetGoodStatusControlsVisibility(t *testing.T) {
	svc, _, _ := newGoodService(t)

	dto, err := svc.CreateGood(&models.GoodCardRequest{
		Name:     "Лаванда",
		Category: "Сухоцветы",
		Price:    900,
	})
	if err != nil {
		t.Fatalf("CreateGood: %v", err)
	}

	if _, err := svc.SetGoodStatus(dto.ID, models.StatusBlocked); err != nil {
		t.Fatalf("SetGoodStatus: %v", err)
	}

	active, err := svc.GetActiveGoods()
	if err != nil {
		t.Fatalf("GetActiveGoods: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("blocked good still active: %+v", active)
	}

	all, err := svc.GetAllGoods()
	if err != nil {
		t.Fatalf("GetAllGoods: %v", err)
	}
	if len(all) != 1 || all[0].Status != models.StatusBlocked {
		t.Errorf("admin listing = %+v, want the blocked good", all)
	}
}
