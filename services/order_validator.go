package services

import (
	"strconv"
	"time"

	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/utils"
)

// OrderInput is the normalized order submission. It is returned even when
// invalid so the caller can re-render the form with what was entered.
type OrderInput struct {
	CustomerCode   string    `json:"customer_id"`
	OrderDate      time.Time `json:"date"`
	Category       string    `json:"saree_type"`
	Amount         int64     `json:"amount"`
	PurchaseType   string    `json:"purchase_type"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentMode    string    `json:"payment_mode"`
	DeliveryStatus string    `json:"delivery_status"`
	Remarks        string    `json:"remarks"`

	// DateDefaulted reports that the submitted date was blank or unreadable.
	DateDefaulted bool `json:"-"`
}

// ValidateOrderForm applies every order rule and collects all violations.
func ValidateOrderForm(form Form, today time.Time) (OrderInput, []string) {
	var errs []string

	in := OrderInput{
		CustomerCode:   field(form, "customer_id"),
		Category:       field(form, "saree_type"),
		PurchaseType:   field(form, "purchase_type"),
		PaymentStatus:  field(form, "payment_status"),
		PaymentMode:    field(form, "payment_mode"),
		DeliveryStatus: field(form, "delivery_status"),
		Remarks:        field(form, "remarks"),
	}

	if in.CustomerCode == "" {
		errs = append(errs, "Customer is required.")
	}

	amount, err := strconv.ParseInt(field(form, "amount"), 10, 64)
	switch {
	case err != nil:
		errs = append(errs, "Amount must be a whole number.")
		amount = 0
	case amount < 0:
		errs = append(errs, "Amount cannot be negative.")
	}
	in.Amount = amount

	if !models.Contains(models.PurchaseTypes, in.PurchaseType) {
		errs = append(errs, "Purchase Type must be Online or Offline.")
	}

	if !models.Contains(models.PaymentStatuses, in.PaymentStatus) {
		errs = append(errs, "Payment Status must be Pending or Paid.")
	}

	// payment mode follows payment status
	if in.PaymentStatus == models.PaymentPending {
		in.PaymentMode = models.ModePending
	} else if !models.Contains(models.PaidModes, in.PaymentMode) {
		errs = append(errs, "Payment Mode must be UPI or Cash when status is Paid.")
	}

	if !models.Contains(models.DeliveryStatuses, in.DeliveryStatus) {
		errs = append(errs, "Delivery Status must be one of Pending/Shipped/Delivered/Cancelled.")
	}

	date := utils.ParseDate(form.Get("date"), today)
	in.OrderDate = date.Value()
	in.DateDefaulted = date.Defaulted

	return in, errs
}

// apply copies the replaceable fields onto an order. Code and customer
// linkage are left alone.
func (in OrderInput) apply(o *models.Order) {
	o.OrderDate = in.OrderDate
	o.Category = in.Category
	o.Amount = in.Amount
	o.PurchaseType = in.PurchaseType
	o.PaymentStatus = in.PaymentStatus
	o.PaymentMode = in.PaymentMode
	o.DeliveryStatus = in.DeliveryStatus
	o.Remarks = in.Remarks
}
