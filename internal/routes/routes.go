package routes

import (
	"github.com/gin-gonic/gin"

	"huurly_backend/internal/handlers"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/middleware"
	"huurly_backend/ws"
)

// RegisterRoutes wires every HTTP and WebSocket route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Auth.RegisterRoutes(api)
		appHandlers.User.RegisterRoutes(api)
		appHandlers.Profile.RegisterRoutes(api)
		appHandlers.Search.RegisterRoutes(api)
		appHandlers.Document.RegisterRoutes(api)
		appHandlers.Notification.RegisterRoutes(api)
		appHandlers.Favorite.RegisterRoutes(api)
		appHandlers.Subscription.RegisterRoutes(api)
	}

	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware())
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
