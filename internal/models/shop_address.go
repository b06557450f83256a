package models

type ShopAddress struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Address string `json:"address" gorm:"not null"`
}

func (ShopAddress) TableName() string {
	return "shop_addresses"
}
