package models

import "time"

// Good is a sellable product card. Price is in the minor currency unit;
// NonDiscountPrice, when set, is shown struck through next to the price.
type Good struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Createstamp      time.Time `json:"createstamp"`
	Changestamp      time.Time `json:"changestamp"`
	Status           string    `json:"status" gorm:"default:'NEW'"`
	Name             string    `json:"name" gorm:"not null"`
	CategoryID       *uint     `json:"category_id"`
	Price            int       `json:"price" gorm:"not null"`
	NonDiscountPrice *int      `json:"non_discount_price,omitempty"`
	Description      string    `json:"description" gorm:"type:text"`
}

func (Good) TableName() string {
	return "goods"
}

// GoodImage belongs to exactly one good. DisplayOrder is a relative
// presentation key, not required to be unique or contiguous.
type GoodImage struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	GoodID       uint   `json:"good_id" gorm:"not null;index"`
	ImageURL     string `json:"image_url" gorm:"not null"`
	DisplayOrder int    `json:"display_order"`
}

func (GoodImage) TableName() string {
	return "goods_images"
}
