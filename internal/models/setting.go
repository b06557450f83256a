package models

import "time"

// Setting is a key-value config row with an audit trail. Rows are never
// hard-deleted; Type is unique among ACTIVE rows only, so a type can be
// soft-deleted and created again.
type Setting struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"not null;index"`
	Value       string    `json:"value"`
	Createstamp time.Time `json:"createstamp"`
	Changestamp time.Time `json:"changestamp"`
	Createuser  int64     `json:"createuser"`
	Changeuser  int64     `json:"changeuser"`
	Status      string    `json:"status" gorm:"default:'ACTIVE'"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	SettingActive  = "ACTIVE"
	SettingDeleted = "DELETED"
)
