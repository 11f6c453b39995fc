package models

import (
	"time"
)

// Client is the root entity; interactions, orders and notes belong to it and
// are removed by the database when the client row is deleted.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Interactions []Interaction `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Orders       []Order       `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Notes        []Note        `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}
