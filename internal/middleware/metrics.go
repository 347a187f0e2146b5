package middleware

import (
	"time"

	"fastos/services"

	"github.com/gin-gonic/gin"
)

/**
 * HTTP请求统计中间件
 * @description
 * - Counts requests per route and records handling time
 * - Error responses (status >= 400) are counted separately
 * - Feeds the totals reported by the healthz endpoint
 */
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := c.Writer.Status()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		services.IncrementRequestCount(path)
		services.RecordRequestDuration(path, duration)

		if statusCode >= 400 {
			services.IncrementErrorCount(path)
		}
	}
}
