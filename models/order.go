package models

import (
	"time"
)

const (
	PurchaseOnline  = "Online"
	PurchaseOffline = "Offline"

	PaymentPending = "Pending"
	PaymentPaid    = "Paid"

	ModeUPI     = "UPI"
	ModeCash    = "Cash"
	ModePending = "Pending"

	DeliveryPending   = "Pending"
	DeliveryShipped   = "Shipped"
	DeliveryDelivered = "Delivered"
	DeliveryCancelled = "Cancelled"
)

var (
	PurchaseTypes    = []string{PurchaseOnline, PurchaseOffline}
	PaymentStatuses  = []string{PaymentPending, PaymentPaid}
	PaidModes        = []string{ModeUPI, ModeCash}
	DeliveryStatuses = []string{DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryCancelled}
)

// Order references its customer through the customer's business key.
type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_id"`
	OrderDate      time.Time `gorm:"type:date;not null;index" json:"date"`
	CustomerCode   string    `gorm:"type:varchar(64);not null;index" json:"customer_id"`
	Customer       *Customer `gorm:"foreignKey:CustomerCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"customer,omitempty"`
	Category       string    `gorm:"column:saree_type;type:varchar(120)" json:"saree_type"`
	Amount         int64     `gorm:"not null;default:0" json:"amount"`
	PurchaseType   string    `gorm:"type:varchar(16)" json:"purchase_type"`
	PaymentStatus  string    `gorm:"type:varchar(16);index" json:"payment_status"`
	PaymentMode    string    `gorm:"type:varchar(16)" json:"payment_mode"`
	DeliveryStatus string    `gorm:"type:varchar(16)" json:"delivery_status"`
	Remarks        string    `gorm:"type:text" json:"remarks"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (o *Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}

func Contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
