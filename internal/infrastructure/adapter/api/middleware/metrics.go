package middleware

import (
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
