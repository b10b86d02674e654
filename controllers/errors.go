package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/services"
	"github.com/yeremiapane/vastra-crm/utils"
)

// CustomError is a message that is safe to show to the user.
type CustomError struct {
	Code    int
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidInput  = &CustomError{http.StatusUnprocessableEntity, "Please correct the errors and try again."}
	ErrConflict      = &CustomError{http.StatusConflict, "Duplicate or invalid reference."}
	ErrCodeBusy      = &CustomError{http.StatusConflict, "Could not allocate an order code, please retry."}
	ErrInternal      = &CustomError{http.StatusInternalServerError, "Something went wrong."}
	ErrOrderNotFound = &CustomError{http.StatusNotFound, "Order not found."}
	ErrCustNotFound  = &CustomError{http.StatusNotFound, "Customer not found."}
)

// respondServiceError maps a service error onto the JSON envelope. Store
// details go to the log, never to the response. draft is echoed back on
// validation failures so the form can be filled again.
func respondServiceError(c *gin.Context, log *logrus.Logger, action string, err error, notFound *CustomError, draft interface{}) {
	entry := log.WithError(err).WithFields(logrus.Fields{
		"action":     action,
		"request_id": c.GetString(utils.RequestIDKey),
	})

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		entry.Info("Submission rejected")
		utils.RespondErrors(c, ErrInvalidInput.Code, ErrInvalidInput.Message, verr.Messages, draft)
	case errors.Is(err, services.ErrNotFound) && notFound != nil:
		utils.RespondError(c, notFound.Code, notFound.Message)
	case errors.Is(err, services.ErrCodeExhausted):
		entry.Warn("Order code regeneration exhausted")
		utils.RespondError(c, ErrCodeBusy.Code, ErrCodeBusy.Message)
	case errors.Is(err, services.ErrConstraint):
		entry.Warn("Write rejected by constraint")
		utils.RespondError(c, ErrConflict.Code, ErrConflict.Message)
	default:
		entry.Error(action + " failed")
		utils.RespondError(c, ErrInternal.Code, ErrInternal.Message)
	}
}
