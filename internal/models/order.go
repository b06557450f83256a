package models

import "time"

type Order struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Status          string    `json:"status"`
	UserID          int64     `json:"user_id" gorm:"not null;index"`
	DeliveryType    string    `json:"delivery_type"`
	DeliveryAddress string    `json:"delivery_address"`
	Createstamp     time.Time `json:"createstamp"`
	Changestamp     time.Time `json:"changestamp"`
	Createuser      *int64    `json:"createuser,omitempty"`
	Changeuser      *int64    `json:"changeuser,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// CartItem.Price is captured when the order is placed and never refreshed
// against the good's current price.
type CartItem struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	OrderID uint `json:"order_id" gorm:"not null;index"`
	GoodID  uint `json:"good_id" gorm:"not null"`
	Count   int  `json:"count" gorm:"not null"`
	Price   int  `json:"price" gorm:"not null"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

const (
	DeliveryPickUp  = "PICK_UP"
	DeliveryCourier = "COURIER"
)
