package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/api/users")
	{
		users.POST("/register", config.UserHandler.Register)
		users.POST("/login", config.UserHandler.Login)
	}

	authed := engine.Group("/api/users")
	authed.Use(config.AuthMiddleware.RequireAuth())
	{
		authed.POST("/logout", config.UserHandler.Logout)
		authed.POST("/change-password", config.UserHandler.ChangePassword)
		authed.GET("", config.UserHandler.ListUsers)
		authed.GET("/:id", config.UserHandler.GetUser)
	}
}
