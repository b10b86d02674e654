package models

import (
	"time"
)

// Customer is addressed by Code everywhere outside the store; ID is internal.
type Customer struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Code         string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"customer_id"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	Insta        string    `gorm:"type:varchar(120)" json:"insta"`
	Phone        string    `gorm:"type:varchar(32)" json:"phone"`
	City         string    `gorm:"type:varchar(120)" json:"city"`
	CustomerType string    `gorm:"column:ctype;type:varchar(64)" json:"ctype"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
