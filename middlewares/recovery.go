package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/utils"
)

// Recovery turns a panic into the generic 500 envelope.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.WithFields(logrus.Fields{
			"panic":            recovered,
			"path":             c.Request.URL.Path,
			utils.RequestIDKey: c.GetString(utils.RequestIDKey),
		}).Error("Recovered from panic")
		utils.AbortWithError(c, http.StatusInternalServerError, "Something went wrong.")
	})
}
