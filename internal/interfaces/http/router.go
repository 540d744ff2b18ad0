// Package http wires the gin engine: middleware, repositories, use cases,
// the notification center and the route groups.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	feedbackusecases "helpdesk/internal/application/feedback/usecases"
	"helpdesk/internal/application/notification"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/infrastructure/scheduler"
	"helpdesk/internal/infrastructure/storage"
	feedbackhandlers "helpdesk/internal/interfaces/http/handlers/feedback"
	notificationhandlers "helpdesk/internal/interfaces/http/handlers/notification"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandlers "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type Router struct {
	engine *gin.Engine
	center *notification.Center
	log    logger.Interface
}

func NewRouter(cfg *config.Config, db *gorm.DB) (*Router, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	log := logger.NewLogger()

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	store, err := storage.NewAttachmentStore(&cfg.Upload, log)
	if err != nil {
		return nil, err
	}

	markdownService := markdown.NewService()

	var alerter scheduler.Alerter
	if cfg.Email.Enabled {
		alerter = email.NewAssignmentAlerter(email.NewSMTPNotifier(&cfg.Email), userRepo)
	} else {
		alerter = email.NoopAlerter{}
	}

	pollInterval := time.Duration(cfg.Notification.PollIntervalSeconds) * time.Second
	toastTTL := time.Duration(cfg.Notification.ToastTTLSeconds) * time.Second

	center := notification.NewCenter(func(userID uint, sinks ...notification.Sink) notification.Poller {
		return scheduler.NewAssignmentPoller(userID, ticketRepo, alerter, pollInterval, log, sinks...)
	}, toastTTL, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketusecases.NewCreateTicketUseCase(ticketRepo, markdownService, log),
		ticketusecases.NewUpdateTicketUseCase(ticketRepo, markdownService, log),
		ticketusecases.NewSubmitRatingUseCase(ticketRepo, log),
		ticketusecases.NewAppendImagesUseCase(ticketRepo, log),
		ticketusecases.NewDeleteTicketUseCase(ticketRepo, store, log),
		ticketusecases.NewGetTicketUseCase(ticketRepo, markdownService, log),
		ticketusecases.NewListTicketsUseCase(ticketRepo, log),
		store,
		cfg.Upload.MaxPerBatch,
	)

	userHandler := userhandlers.NewUserHandler(
		userusecases.NewRegisterUseCase(userRepo, hasher, log),
		userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userusecases.NewChangePasswordUseCase(userRepo, hasher, log),
		userusecases.NewListUsersUseCase(userRepo, log),
		userusecases.NewGetUserUseCase(userRepo, log),
		center,
	)

	feedbackHandler := feedbackhandlers.NewFeedbackHandler(
		feedbackusecases.NewCreateFeedbackUseCase(feedbackRepo, log),
		feedbackusecases.NewListFeedbackUseCase(feedbackRepo, log),
		feedbackusecases.NewDeleteFeedbackUseCase(feedbackRepo, log),
	)

	notificationHandler := notificationhandlers.NewNotificationHandler(center)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.Static(cfg.Upload.URLPrefix, store.Dir())

	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupFeedbackRoutes(engine, &routes.FeedbackRouteConfig{
		FeedbackHandler: feedbackHandler,
		AuthMiddleware:  authMiddleware,
	})
	routes.SetupNotificationRoutes(engine, &routes.NotificationRouteConfig{
		NotificationHandler: notificationHandler,
		AuthMiddleware:      authMiddleware,
	})

	return &Router{
		engine: engine,
		center: center,
		log:    log,
	}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
