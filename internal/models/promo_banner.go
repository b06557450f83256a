package models

import "time"

type PromoBanner struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Status       string    `json:"status" gorm:"default:'NEW'"`
	DisplayOrder int       `json:"display_order"`
	ImageURL     string    `json:"image_url" gorm:"not null"`
	Createstamp  time.Time `json:"createstamp"`
	Changestamp  time.Time `json:"changestamp"`
}

func (PromoBanner) TableName() string {
	return "promo_banner"
}
