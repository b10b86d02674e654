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

type CustomerController struct {
	Customers *services.CustomerService
	Log       *logrus.Logger
}

func NewCustomerController(env *app.Env) *CustomerController {
	return &CustomerController{
		Customers: services.NewCustomerService(env.DB, env.Log),
		Log:       env.Log,
	}
}

// ListCustomers -> GET /customers?q=
func (cc *CustomerController) ListCustomers(c *gin.Context) {
	q := c.Query("q")
	customers, err := cc.Customers.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, cc.Log, "List customers", err, nil, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of customers", gin.H{
		"customers": customers,
		"q":         q,
	})
}

// NewCustomerForm -> GET /customers/new, an empty draft for the form
func (cc *CustomerController) NewCustomerForm(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "New customer", gin.H{
		"customer": models.Customer{},
	})
}

// CreateCustomer -> POST /customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	form, err := submittedForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body.")
		return
	}

	customer, err := cc.Customers.Create(c.Request.Context(), form)
	if err != nil {
		respondServiceError(c, cc.Log, "Create customer", err, nil, customer)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Customer added.", customer)
}

// GetCustomer -> GET /customers/:code with linked orders and follow-ups
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	detail, err := cc.Customers.Detail(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, cc.Log, "Get customer", err, ErrCustNotFound, nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", detail)
}
