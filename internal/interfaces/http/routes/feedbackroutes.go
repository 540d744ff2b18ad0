package routes

import (
	"github.com/gin-gonic/gin"

	feedbackhandlers "helpdesk/internal/interfaces/http/handlers/feedback"
	"helpdesk/internal/interfaces/http/middleware"
)

type FeedbackRouteConfig struct {
	FeedbackHandler *feedbackhandlers.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupFeedbackRoutes(engine *gin.Engine, config *FeedbackRouteConfig) {
	feedback := engine.Group("/api/feedback")
	feedback.Use(config.AuthMiddleware.RequireAuth())
	{
		feedback.POST("", config.FeedbackHandler.CreateFeedback)
		feedback.GET("", config.FeedbackHandler.ListFeedback)
		feedback.DELETE("/:id", config.FeedbackHandler.DeleteFeedback)
	}
}
