package models

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Status      string    `json:"status" gorm:"default:'NEW'"`
	Createstamp time.Time `json:"createstamp"`
	Changestamp time.Time `json:"changestamp"`
}

func (Category) TableName() string {
	return "categories"
}

// Publication status shared by goods, categories and promo banners.
// NEW is visible, BLOCKED is hidden; the transition is reversible.
const (
	StatusNew     = "NEW"
	StatusBlocked = "BLOCKED"
)
