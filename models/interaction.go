package models

import (
	"time"
)

type Interaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"index;not null" json:"clientId"`
	Type      string    `gorm:"not null" json:"type"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Date      time.Time `gorm:"not null" json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
