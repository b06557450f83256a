package services

import (
	"errors"
	"log"

	"flower_shop/internal/models"
	"flower_shop/internal/repository"
)

type OrderService interface {
	CreateOrder(req *models.OrderRequest, actor int64) (*models.OrderDTO, error)
	UpdateOrder(id uint, req *models.OrderRequest, actor int64) (*models.OrderDTO, error)
	GetOrder(id uint) (*models.OrderDTO, error)
	GetOrdersByUser(userID int64) ([]models.OrderDTO, error)
	ListOrders(filter repository.OrderFilter) ([]models.OrderDTO, error)
	DeleteOrder(id uint) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	goodRepo  repository.GoodRepository
	userRepo  repository.UserRepository
	notifier  OrderNotifier
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	goodRepo repository.GoodRepository,
	userRepo repository.UserRepository,
	notifier OrderNotifier,
) OrderService {
	return &orderService{orderRepo: orderRepo, goodRepo: goodRepo, userRepo: userRepo, notifier: notifier}
}

// snapshotItems resolves each requested good and captures its current price.
// The captured price is what the order keeps forever.
func (s *orderService) snapshotItems(reqItems []models.CartItemRequest) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		good, err := s.goodRepo.GetByID(reqItem.GoodID)
		if err != nil {
			return nil, err
		}
		items = append(items, models.CartItem{
			GoodID: good.ID,
			Count:  reqItem.Count,
			Price:  good.Price,
		})
	}
	return items, nil
}

func (s *orderService) CreateOrder(req *models.OrderRequest, actor int64) (*models.OrderDTO, error) {
	items, err := s.snapshotItems(req.CartItems)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		Status:          req.Status,
		UserID:          req.UserID,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		Createuser:      &actor,
		Changeuser:      &actor,
	}
	if err := s.orderRepo.Create(&order, items); err != nil {
		return nil, err
	}

	dto, err := s.toDTO(&order)
	if err != nil {
		return nil, err
	}

	// Best-effort fan-out. The order is already persisted; whatever happens
	// in the notifier must not surface to the caller.
	if s.notifier != nil {
		s.notifier.NotifyOrderCreated(dto)
	}

	return dto, nil
}

func (s *orderService) UpdateOrder(id uint, req *models.OrderRequest, actor int64) (*models.OrderDTO, error) {
	items, err := s.snapshotItems(req.CartItems)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:              id,
		Status:          req.Status,
		DeliveryType:    req.DeliveryType,
		DeliveryAddress: req.DeliveryAddress,
		Changeuser:      &actor,
	}
	updated, err := s.orderRepo.Update(&order, items)
	if err != nil {
		return nil, err
	}
	return s.toDTO(updated)
}

func (s *orderService) GetOrder(id uint) (*models.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(order)
}

func (s *orderService) GetOrdersByUser(userID int64) ([]models.OrderDTO, error) {
	return s.ListOrders(repository.OrderFilter{UserID: &userID})
}

func (s *orderService) ListOrders(filter repository.OrderFilter) ([]models.OrderDTO, error) {
	orders, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.OrderDTO, 0, len(orders))
	for i := range orders {
		dto, err := s.toDTO(&orders[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	return s.orderRepo.Delete(id)
}

func (s *orderService) toDTO(order *models.Order) (*models.OrderDTO, error) {
	items, err := s.orderRepo.GetItems(order.ID)
	if err != nil {
		return nil, err
	}

	itemDTOs := make([]models.CartItemDTO, 0, len(items))
	for _, item := range items {
		// The display name is looked up live; the price is the stored
		// snapshot. A since-deleted good keeps its line with an empty name.
		goodName := ""
		good, err := s.goodRepo.GetByID(item.GoodID)
		if err == nil {
			goodName = good.Name
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		itemDTOs = append(itemDTOs, models.CartItemDTO{
			GoodID:   item.GoodID,
			GoodName: goodName,
			Count:    item.Count,
			Price:    item.Price,
		})
	}

	var userPhone *string
	user, err := s.userRepo.GetByID(order.UserID)
	if err == nil {
		userPhone = user.Phone
	} else if !errors.Is(err, repository.ErrNotFound) {
		log.Printf("Failed to load user %d for order %d: %v", order.UserID, order.ID, err)
	}

	return &models.OrderDTO{
		ID:              order.ID,
		Status:          order.Status,
		UserID:          order.UserID,
		UserPhone:       userPhone,
		Createstamp:     order.Createstamp,
		Changestamp:     order.Changestamp,
		Createuser:      order.Createuser,
		Changeuser:      order.Changeuser,
		DeliveryType:    order.DeliveryType,
		DeliveryAddress: order.DeliveryAddress,
		CartItems:       itemDTOs,
	}, nil
}
