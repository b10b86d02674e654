package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var validatorToday = time.Date(2025, time.November, 14, 9, 0, 0, 0, time.UTC)

func validOrderForm() FormMap {
	return FormMap{
		"customer_id":     "CUST0001",
		"date":            "2025-11-01",
		"saree_type":      " Banarasi silk ",
		"amount":          "12500",
		"purchase_type":   "Online",
		"payment_status":  "Paid",
		"payment_mode":    "UPI",
		"delivery_status": "Shipped",
		"remarks":         "gift wrap",
	}
}

func with(f FormMap, kv ...string) FormMap {
	out := FormMap{}
	for k, v := range f {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

func TestValidateOrderFormValid(t *testing.T) {
	in, errs := ValidateOrderForm(validOrderForm(), validatorToday)

	assert.Empty(t, errs)
	assert.Equal(t, "CUST0001", in.CustomerCode)
	assert.Equal(t, "Banarasi silk", in.Category)
	assert.Equal(t, int64(12500), in.Amount)
	assert.Equal(t, "UPI", in.PaymentMode)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), in.OrderDate)
	assert.False(t, in.DateDefaulted)
}

func TestValidateOrderFormRules(t *testing.T) {
	tests := []struct {
		name     string
		form     FormMap
		wantErrs []string
		wantMode string
	}{
		{
			name:     "pending forces mode",
			form:     with(validOrderForm(), "payment_status", "Pending", "payment_mode", "Cash"),
			wantMode: "Pending",
		},
		{
			name:     "pending ignores garbage mode",
			form:     with(validOrderForm(), "payment_status", "Pending", "payment_mode", "Cheque"),
			wantMode: "Pending",
		},
		{
			name:     "paid with cash",
			form:     with(validOrderForm(), "payment_mode", "Cash"),
			wantMode: "Cash",
		},
		{
			name:     "paid with pending mode",
			form:     with(validOrderForm(), "payment_mode", "Pending"),
			wantErrs: []string{"Payment Mode must be UPI or Cash when status is Paid."},
			wantMode: "Pending",
		},
		{
			name:     "missing customer",
			form:     with(validOrderForm(), "customer_id", "   "),
			wantErrs: []string{"Customer is required."},
			wantMode: "UPI",
		},
		{
			name:     "negative amount",
			form:     with(validOrderForm(), "amount", "-5"),
			wantErrs: []string{"Amount cannot be negative."},
			wantMode: "UPI",
		},
		{
			name:     "bad purchase type",
			form:     with(validOrderForm(), "purchase_type", "online"),
			wantErrs: []string{"Purchase Type must be Online or Offline."},
			wantMode: "UPI",
		},
		{
			name:     "bad delivery status",
			form:     with(validOrderForm(), "delivery_status", "Lost"),
			wantErrs: []string{"Delivery Status must be one of Pending/Shipped/Delivered/Cancelled."},
			wantMode: "UPI",
		},
		{
			name: "unknown status also checks mode",
			form: with(validOrderForm(), "payment_status", "Partial", "payment_mode", ""),
			wantErrs: []string{
				"Payment Status must be Pending or Paid.",
				"Payment Mode must be UPI or Cash when status is Paid.",
			},
			wantMode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, errs := ValidateOrderForm(tt.form, validatorToday)
			assert.Equal(t, tt.wantErrs, errs)
			assert.Equal(t, tt.wantMode, in.PaymentMode)
		})
	}
}

func TestValidateOrderFormNonNumericAmount(t *testing.T) {
	in, errs := ValidateOrderForm(with(validOrderForm(), "amount", "abc"), validatorToday)

	assert.Equal(t, []string{"Amount must be a whole number."}, errs)
	assert.Equal(t, int64(0), in.Amount)
	assert.Equal(t, "CUST0001", in.CustomerCode)
}

func TestValidateOrderFormCollectsEverything(t *testing.T) {
	_, errs := ValidateOrderForm(FormMap{}, validatorToday)

	assert.Equal(t, []string{
		"Customer is required.",
		"Amount must be a whole number.",
		"Purchase Type must be Online or Offline.",
		"Payment Status must be Pending or Paid.",
		"Payment Mode must be UPI or Cash when status is Paid.",
		"Delivery Status must be one of Pending/Shipped/Delivered/Cancelled.",
	}, errs)
}

func TestValidateOrderFormDateNeverErrors(t *testing.T) {
	in, errs := ValidateOrderForm(with(validOrderForm(), "date", "someday"), validatorToday)

	assert.Empty(t, errs)
	assert.True(t, in.DateDefaulted)
	assert.Equal(t, time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), in.OrderDate)
}
