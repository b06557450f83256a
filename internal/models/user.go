package models

import "time"

// User identity comes from Telegram, so the primary key is never generated
// locally. Role is assigned out-of-band; Mode is what the user toggles.
type User struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Status      string    `json:"status" gorm:"default:'NEW'"`
	Createstamp time.Time `json:"createstamp"`
	Changestamp time.Time `json:"changestamp"`
	Role        string    `json:"role" gorm:"default:'USER'"`
	Mode        string    `json:"mode" gorm:"default:'USER'"`
	Username    *string   `json:"username,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
}

func (User) TableName() string {
	return "user_info"
}

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"

	ModeAdmin = "ADMIN"
	ModeUser  = "USER"
)
