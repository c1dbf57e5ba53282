package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-task-scheduler/pkg/metrics"
)

// Metrics records request latency by route template.
func (mw Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(started).Seconds())
	}
}
