package repository

import (
	"time"

	"flower_shop/internal/models"

	"gorm.io/gorm"
)

// OrderFilter narrows List. Nil fields are ignored.
type OrderFilter struct {
	OrderID *uint
	Status  *string
	UserID  *int64
}

type OrderRepository interface {
	Create(order *models.Order, items []models.CartItem) error
	GetByID(id uint) (*models.Order, error)
	GetItems(orderID uint) ([]models.CartItem, error)
	List(filter OrderFilter) ([]models.Order, error)
	Update(order *models.Order, items []models.CartItem) (*models.Order, error)
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order, items []models.CartItem) error {
	now := time.Now()
	order.Createstamp = now
	order.Changestamp = now
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) GetItems(orderID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	return items, err
}

func (r *orderRepository) List(filter OrderFilter) ([]models.Order, error) {
	query := r.db.Order("id desc")
	if filter.OrderID != nil {
		query = query.Where("id = ?", *filter.OrderID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

// Update replaces the order header and rewrites the cart items wholesale.
// The statements are sequential, not one transaction; a concurrent write can
// interleave, which is the accepted consistency model of the store.
func (r *orderRepository) Update(order *models.Order, items []models.CartItem) (*models.Order, error) {
	err := r.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":           order.Status,
			"delivery_type":    order.DeliveryType,
			"delivery_address": order.DeliveryAddress,
			"changestamp":      time.Now(),
			"changeuser":       order.Changeuser,
		}).Error
	if err != nil {
		return nil, err
	}

	updated, err := r.GetByID(order.ID)
	if err != nil {
		return nil, err
	}

	if err := r.db.Where("order_id = ?", order.ID).Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Delete removes cart items first; the store is not asked to cascade.
func (r *orderRepository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	if err := r.db.Where("order_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Order{}, id).Error
}
