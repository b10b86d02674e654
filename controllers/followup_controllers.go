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

type FollowUpController struct {
	FollowUps *services.FollowUpService
	Customers *services.CustomerService
	Log       *logrus.Logger
}

func NewFollowUpController(env *app.Env) *FollowUpController {
	return &FollowUpController{
		FollowUps: services.NewFollowUpService(env.DB, env.Log, env.Now),
		Customers: services.NewCustomerService(env.DB, env.Log),
		Log:       env.Log,
	}
}

// ListFollowUps -> GET /followups?q=, with the customer list for the add form
func (fc *FollowUpController) ListFollowUps(c *gin.Context) {
	ctx := c.Request.Context()
	q := c.Query("q")

	items, err := fc.FollowUps.List(ctx, q)
	if err != nil {
		respondServiceError(c, fc.Log, "List follow-ups", err, nil, nil)
		return
	}
	customers, err := fc.Customers.List(ctx, "")
	if err != nil {
		respondServiceError(c, fc.Log, "List follow-ups", err, nil, nil)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of follow-ups", gin.H{
		"followups": items,
		"customers": customers,
		"statuses":  models.FollowUpStatuses,
		"q":         q,
	})
}

// CreateFollowUp -> POST /followups
func (fc *FollowUpController) CreateFollowUp(c *gin.Context) {
	form, err := submittedForm(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Malformed request body.")
		return
	}

	item, err := fc.FollowUps.Create(c.Request.Context(), form)
	if err != nil {
		respondServiceError(c, fc.Log, "Create follow-up", err, nil, item)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Follow-up added.", item)
}
