package routes

import (
	"time"

	"shiv_accounts/internal/infrastructure/logging"
	"shiv_accounts/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func requestLogger() gin.HandlerFunc {
	log := logging.Component("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			logging.FieldMethod:   c.Request.Method,
			logging.FieldPath:     c.Request.URL.Path,
			logging.FieldStatus:   c.Writer.Status(),
			logging.FieldDuration: time.Since(start).Milliseconds(),
			logging.FieldClientIP: c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}

// requestMetrics labels by route template so ids do not explode the series.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
