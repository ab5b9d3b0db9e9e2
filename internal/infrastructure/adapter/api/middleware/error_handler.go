package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics and returns the standard error body
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// ErrorHandler turns the last error attached with c.Error into a response.
// Status and message come from the domain error taxonomy; wrapped driver or
// gateway text is logged, never returned.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		status := domainerr.HTTPStatus(err)
		fields := domainerr.LogFields(err)
		fields["path"] = c.Request.URL.Path
		fields["method"] = c.Request.Method
		fields["status"] = status
		fields["request_id"] = RequestIDFrom(c)

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Warn("Request rejected", fields)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: domainerr.PublicMessage(err),
		})
	}
}
