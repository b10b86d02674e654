package models

import (
	"time"
)

const (
	FollowUpOpen = "Open"
	FollowUpDone = "Done"
)

var FollowUpStatuses = []string{FollowUpOpen, FollowUpDone}

type FollowUp struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerCode string    `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	Customer     *Customer `gorm:"foreignKey:CustomerCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	FollowUpDate time.Time `gorm:"column:followup_date;type:date;not null;index" json:"followup_date"`
	Notes        string    `gorm:"type:text" json:"notes"`
	Status       string    `gorm:"type:varchar(32);not null;default:'Open'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
