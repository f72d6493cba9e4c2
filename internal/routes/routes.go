package routes

import (
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все HTTP маршруты.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, jwtSecret string) {
	ginRouter.GET("/health", appHandlers.HealthHandler.Health)
	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Все маршруты API требуют bearer-токен
	api := ginRouter.Group("/api/v1", middleware.AuthMiddleware(jwtSecret))
	{
		appHandlers.AIHandler.RegisterRoutes(api)
		appHandlers.FreelancerHandler.RegisterRoutes(api)
		appHandlers.MatchingHandler.RegisterRoutes(api)
		appHandlers.RatingHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered", "count", len(ginRouter.Routes()))
}
