package routes

import (
	"github.com/gin-gonic/gin"

	notificationhandlers "helpdesk/internal/interfaces/http/handlers/notification"
	"helpdesk/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler *notificationhandlers.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	notifications := engine.Group("/api/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", config.NotificationHandler.ListNotifications)
		notifications.POST("/clear", config.NotificationHandler.ClearNotifications)
		notifications.POST("/:id/navigate", config.NotificationHandler.NavigateNotification)
		notifications.DELETE("/:id", config.NotificationHandler.DismissNotification)
	}
}
