package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/vastra-crm/utils"
)

// LoggerMiddleware writes one line per request. Server errors log at error
// level, client errors at warn.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}
		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":           c.Request.Method,
			"status":           status,
			"latency":          time.Since(start),
			"path":             path,
			"client_ip":        c.ClientIP(),
			utils.RequestIDKey: c.GetString(utils.RequestIDKey),
		})

		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
