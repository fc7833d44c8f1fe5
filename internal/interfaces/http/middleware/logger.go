package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"servicehub.backend/pkg/logger"
	"servicehub.backend/pkg/metrics"
)

// LoggerMiddleware logs each request through the structured logger and
// feeds the latency histogram. RequestIDMiddleware must run first so
// the request id is already on the context.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, strconv.Itoa(status)).
			Observe(latency.Seconds())
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, status, latency, c.ClientIP())
	}
}
