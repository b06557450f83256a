package services

import (
	"errors"
	"log"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type GoodService interface {
	CreateGood(req *models.GoodCardRequest) (*models.GoodDTO, error)
	UpdateGood(id uint, req *models.GoodCardRequest) (*models.GoodDTO, error)
	GetGood(id uint) (*models.GoodDTO, error)
	GetActiveGoods() ([]models.GoodDTO, error)
	GetAllGoods() ([]models.GoodDTO, error)
	SetGoodStatus(id uint, status string) (*models.GoodDTO, error)
	DeleteGood(id uint) error
	AddImages(goodID uint, imageURLs []string) error
	ReorderImages(goodID uint, imageURLs []string) (*models.GoodDTO, error)
	DeleteImage(goodID uint, imageURL string) error
}

type goodService struct {
	goodRepo     repository.GoodRepository
	imageRepo    repository.GoodImageRepository
	categoryRepo repository.CategoryRepository
}

func NewGoodService(
	goodRepo repository.GoodRepository,
	imageRepo repository.GoodImageRepository,
	categoryRepo repository.CategoryRepository,
) GoodService {
	return &goodService{goodRepo: goodRepo, imageRepo: imageRepo, categoryRepo: categoryRepo}
}

// resolveCategory finds a category by exact title, creating it when absent.
// The existence check and the create are separate statements: two concurrent
// creates of the same new title can both miss and insert duplicate rows. That
// matches the shipped behavior and is left as-is on purpose.
func (s *goodService) resolveCategory(title string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByTitle(title)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	log.Printf("Category %q not found, creating new category", title)
	return s.categoryRepo.Create(title)
}

func (s *goodService) CreateGood(req *models.GoodCardRequest) (*models.GoodDTO, error) {
	category, err := s.resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}

	good := models.Good{
		Name:             req.Name,
		CategoryID:       &category.ID,
		Price:            req.Price,
		NonDiscountPrice: req.NonDiscountPrice,
		Description:      req.Description,
	}
	if err := s.goodRepo.Create(&good); err != nil {
		return nil, err
	}
	return s.toDTO(&good)
}

func (s *goodService) UpdateGood(id uint, req *models.GoodCardRequest) (*models.GoodDTO, error) {
	category, err := s.resolveCategory(req.Category)
	if err != nil {
		return nil, err
	}

	good := models.Good{
		ID:               id,
		Name:             req.Name,
		CategoryID:       &category.ID,
		Price:            req.Price,
		NonDiscountPrice: req.NonDiscountPrice,
		Description:      req.Description,
	}
	updated, err := s.goodRepo.Update(&good)
	if err != nil {
		return nil, err
	}
	return s.toDTO(updated)
}

func (s *goodService) GetGood(id uint) (*models.GoodDTO, error) {
	good, err := s.goodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(good)
}

func (s *goodService) GetActiveGoods() ([]models.GoodDTO, error) {
	goods, err := s.goodRepo.GetByStatus(models.StatusNew)
	if err != nil {
		return nil, err
	}
	return s.toDTOs(goods)
}

func (s *goodService) GetAllGoods() ([]models.GoodDTO, error) {
	goods, err := s.goodRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.toDTOs(goods)
}

func (s *goodService) SetGoodStatus(id uint, status string) (*models.GoodDTO, error) {
	good, err := s.goodRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	return s.toDTO(good)
}

func (s *goodService) DeleteGood(id uint) error {
	return s.goodRepo.Delete(id)
}

// AddImages appends uploaded URLs after the good's existing images.
func (s *goodService) AddImages(goodID uint, imageURLs []string) error {
	if _, err := s.goodRepo.GetByID(goodID); err != nil {
		return err
	}
	existing, err := s.imageRepo.GetByGoodID(goodID)
	if err != nil {
		return err
	}
	next := 0
	for _, img := range existing {
		if img.DisplayOrder >= next {
			next = img.DisplayOrder + 1
		}
	}
	for i, url := range imageURLs {
		image := models.GoodImage{
			GoodID:       goodID,
			ImageURL:     url,
			DisplayOrder: next + i,
		}
		if err := s.imageRepo.Create(&image); err != nil {
			return err
		}
	}
	return s.goodRepo.BumpChangestamp(goodID)
}

// ReorderImages rewrites display_order to each URL's position in the given
// list. URLs that do not belong to the good are silently ignored.
func (s *goodService) ReorderImages(goodID uint, imageURLs []string) (*models.GoodDTO, error) {
	good, err := s.goodRepo.GetByID(goodID)
	if err != nil {
		return nil, err
	}
	images, err := s.imageRepo.GetByGoodID(goodID)
	if err != nil {
		return nil, err
	}

	byURL := make(map[string]*models.GoodImage, len(images))
	for i := range images {
		byURL[images[i].ImageURL] = &images[i]
	}
	for position, url := range imageURLs {
		image, ok := byURL[url]
		if !ok {
			continue
		}
		if err := s.imageRepo.UpdateDisplayOrder(image.ID, position); err != nil {
			return nil, err
		}
	}
	if err := s.goodRepo.BumpChangestamp(goodID); err != nil {
		return nil, err
	}
	return s.toDTO(good)
}

func (s *goodService) DeleteImage(goodID uint, imageURL string) error {
	return s.imageRepo.DeleteByURL(goodID, imageURL)
}

func (s *goodService) toDTO(good *models.Good) (*models.GoodDTO, error) {
	images, err := s.imageRepo.GetByGoodID(good.ID)
	if err != nil {
		return nil, err
	}
	// Never nil: a good with no images still serializes as "images": [].
	imageDTOs := make([]models.ImageDTO, 0, len(images))
	for _, img := range images {
		imageDTOs = append(imageDTOs, models.ImageDTO{
			ImageURL:     img.ImageURL,
			DisplayOrder: img.DisplayOrder,
		})
	}

	categoryTitle := ""
	if good.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*good.CategoryID)
		if err == nil {
			categoryTitle = category.Title
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	return &models.GoodDTO{
		ID:               good.ID,
		Name:             good.Name,
		Category:         categoryTitle,
		Price:            good.Price,
		NonDiscountPrice: good.NonDiscountPrice,
		Description:      good.Description,
		Images:           imageDTOs,
		Status:           good.Status,
	}, nil
}

func (s *goodService) toDTOs(goods []models.Good) ([]models.GoodDTO, error) {
	dtos := make([]models.GoodDTO, 0, len(goods))
	for i := range goods {
		dto, err := s.toDTO(&goods[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}
