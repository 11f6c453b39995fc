package models

import (
	"time"
)

type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientID     uint      `gorm:"index;not null" json:"clientId"`
	OrderDetails string    `gorm:"not null" json:"orderDetails"`
	TotalAmount  float64   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
