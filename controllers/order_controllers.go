package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/app"
	"github.com/yeremiapane/vastra-crm/models"
	"github.com/yeremiapane/vastra-crm/services"
	"github.com/yeremiapane/vastra-crm/utils"
)

type OrderController struct {
	Orders    *services.OrderService
	Customers *services.CustomerService
	Log       *logrus.Logger
}

func NewOrderController(env *app.Env) *OrderController {
	orders := services.NewOrderService(env.DB, env.Log, env.Now)
	orders.Attempts = env.Config.OrderCodeAttempts
	orders.Backoff = env.Config.OrderCodeBackoff
	return &OrderController{
		Orders:    orders,
		Customers: services.NewCustomerService(env.DB, env.Log),
		Log:       env.Log,
	}
}

// OrderFormOptions is everything an order form needs to render its selects.
type OrderFormOptions struct {
	Customers        []models.Customer `json:"customers"`
	PurchaseTypes    []string          `json:"purchase_types"`
	PaymentStatuses  []string          `json:"payment_statuses"`
	PaidModes        []string          `json:"paid_modes"`
	DeliveryStatuses []string          `json:"delivery_statuses"`
}

func (oc *OrderController) formOptions(c *gin.Context) (*OrderFormOptions, error) {
	customers, err := oc.Customers.List(c.Request.Context(), "")
	if err != nil {
		return nil, err
	}
	return &OrderFormOptions{
		Customers:        customers,
		PurchaseTypes:    models.PurchaseTypes,
		PaymentStatuses:  models.PaymentStatuses,
		PaidModes:        models.PaidModes,
		DeliveryStatuses: models.DeliveryStatuses,
	}, nil
}

// ListOrders -> GET /orders?q=
func (oc *OrderController) ListOrders(c *gin.Context) {
	q := c.Query("q")
	orders, err := oc.Orders.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, oc.Log, "List orders", err, nil, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders": orders,
		"q":      q,
	})
}

// NewOrderForm -> GET /orders/new
func (oc *OrderController) NewOrderForm(c *gin.Context) {
	opts, err := oc.formOptions(c)
	if err != nil {
		respondServiceError(c, oc.Log, "Order form options", err, nil, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "New order", opts)
}

// CreateOrder -> POST /orders. A blank order_id is generated.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	form, err := submittedForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body.")
		return
	}

	order, err := oc.Orders.Create(c.Request.Context(), form)
	if err != nil {
		respondServiceError(c, oc.Log, "Create order", err, nil, order)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order added.", order)
}

// GetOrder -> GET /orders/:code
func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.Orders.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, oc.Log, "Get order", err, ErrOrderNotFound, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> POST/PUT /orders/:code and /orders/edit/:code
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	form, err := submittedForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body.")
		return
	}

	order, err := oc.Orders.Update(c.Request.Context(), c.Param("code"), form)
	if err != nil {
		respondServiceError(c, oc.Log, "Update order", err, ErrOrderNotFound, order)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated.", order)
}
