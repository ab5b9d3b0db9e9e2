package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID middleware propagates X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFrom returns the request id assigned by RequestID
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  RequestIDFrom(c),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}

		if statusCode >= 500 {
			logger.Warn("Request processed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
