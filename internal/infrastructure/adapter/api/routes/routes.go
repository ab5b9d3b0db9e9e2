package routes

import (
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")

	paymentRoutes := api.Group("/payment")
	{
		paymentRoutes.POST("/create-order", paymentHandler.CreateOrder)
		paymentRoutes.POST("/verify", paymentHandler.VerifyPayment)
		paymentRoutes.POST("/cancel", paymentHandler.CancelPayment)
		paymentRoutes.POST("/webhook", paymentHandler.Webhook)
		paymentRoutes.GET("/history", paymentHandler.History)
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.GET("/:userId/credits", userHandler.GetCredits)
	}
}

// SetupMiddlewares configures global middlewares for the API.
// Recovery runs outermost so a panic in any later middleware is answered.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, withMetrics bool) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	if withMetrics {
		router.Use(middleware.Metrics())
	}
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(logger))
}
