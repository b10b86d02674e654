package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/vastra-crm/controllers"
	"github.com/yeremiapane/vastra-crm/models"
)

func TestCreateOrderGeneratesCode(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")

	w := postForm(r, http.MethodPost, "/orders", orderValues())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var first models.Order
	decode(t, w, &first)
	assert.Equal(t, "ORD20251101-00001", first.Code)
	assert.Equal(t, int64(4500), first.Amount)

	w = postForm(r, http.MethodPost, "/orders", orderValues())
	require.Equal(t, http.StatusCreated, w.Code)
	var second models.Order
	decode(t, w, &second)
	assert.Equal(t, "ORD20251101-00002", second.Code)
}

func TestCreateOrderValidationErrors(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")

	w := postForm(r, http.MethodPost, "/orders", orderValues(
		"amount", "abc",
		"payment_mode", "Card",
	))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var draft models.Order
	res := decode(t, w, &draft)
	assert.Contains(t, res.Errors, "Amount must be a whole number.")
	assert.Contains(t, res.Errors, "Payment Mode must be UPI or Cash when status is Paid.")
	assert.Equal(t, "CUST0001", draft.CustomerCode)

	var n int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)

	w := postForm(r, http.MethodPost, "/orders", orderValues("customer_id", "GHOST"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Duplicate or invalid reference.", decode(t, w, nil).Message)
}

func TestNewOrderFormOptions(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")
	seedCustomer(t, env, "CUST0002", "Kavya Iyer")

	w := get(r, "/orders/new")
	require.Equal(t, http.StatusOK, w.Code)
	var opts controllers.OrderFormOptions
	decode(t, w, &opts)
	require.Len(t, opts.Customers, 2)
	assert.Equal(t, "CUST0002", opts.Customers[0].Code)
	assert.Equal(t, models.PaidModes, opts.PaidModes)
	assert.Equal(t, models.DeliveryStatuses, opts.DeliveryStatuses)
}

func TestUpdateOrderKeepsCodeAndCustomer(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")
	seedCustomer(t, env, "CUST0002", "Kavya Iyer")
	seedOrder(t, env, models.Order{
		Code: "ORD20251101-00001", CustomerCode: "CUST0001", Amount: 1000,
		PaymentStatus: models.PaymentPending, PaymentMode: models.ModePending,
	})

	w := postForm(r, http.MethodPost, "/orders/edit/ORD20251101-00001", orderValues(
		"customer_id", "CUST0002",
		"amount", "2500",
		"delivery_status", "Shipped",
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Order
	require.NoError(t, env.DB.Where("code = ?", "ORD20251101-00001").First(&stored).Error)
	assert.Equal(t, "CUST0001", stored.CustomerCode)
	assert.Equal(t, int64(2500), stored.Amount)
	assert.Equal(t, models.DeliveryShipped, stored.DeliveryStatus)
	assert.Equal(t, models.PaymentPaid, stored.PaymentStatus)
}

func TestUpdateOrderPutAndMissing(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")
	seedOrder(t, env, models.Order{Code: "ORD20251101-00001", CustomerCode: "CUST0001"})

	w := postForm(r, http.MethodPut, "/orders/ORD20251101-00001", orderValues("amount", "-5"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decode(t, w, nil).Errors, "Amount cannot be negative.")

	w = postForm(r, http.MethodPut, "/orders/ORD-NOPE", orderValues())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found.", decode(t, w, nil).Message)
}

func TestListAndGetOrders(t *testing.T) {
	env := setupEnv(t)
	r := setupRouter(env)
	seedCustomer(t, env, "CUST0001", "Anita Rao")
	seedOrder(t, env, models.Order{Code: "ORD20251101-00001", CustomerCode: "CUST0001", Category: "Banarasi Silk"})
	seedOrder(t, env, models.Order{Code: "ORD20251101-00002", CustomerCode: "CUST0001", Category: "Cotton"})

	w := get(r, "/orders?q=" + url.QueryEscape("SILK"))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Orders []models.Order `json:"orders"`
	}
	decode(t, w, &list)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "ORD20251101-00001", list.Orders[0].Code)

	w = get(r, "/orders/ORD20251101-00002")
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	decode(t, w, &order)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "Anita Rao", order.Customer.Name)
}
