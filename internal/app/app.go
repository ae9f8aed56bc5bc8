package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"contala_backend/internal/auth"
	"contala_backend/internal/config"
	"contala_backend/internal/database"
	"contala_backend/internal/email"
	"contala_backend/internal/handlers"
	"contala_backend/internal/logger"
	"contala_backend/internal/middleware"
	"contala_backend/internal/models"
	"contala_backend/internal/repositories"
	"contala_backend/internal/routes"
	"contala_backend/internal/services"
	"contala_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstStaff(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first staff user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg.Email)
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		emailProvider = email.NewMockProvider()
		logger.Warn("Email disabled, using mock provider")
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	projectRepo := repositories.NewProjectRepository()
	proposalRepo := repositories.NewProposalRepository()
	invitationRepo := repositories.NewInvitationRepository()
	messageRepo := repositories.NewMessageRepository()
	convocatoriaRepo := repositories.NewConvocatoriaRepository()
	applicationRepo := repositories.NewApplicationRepository()
	reviewRepo := repositories.NewReviewRepository()
	notificationRepo := repositories.NewNotificationRepository()

	notificationService := services.NewNotificationService(notificationRepo, userRepo, emailProvider)
	authService := services.NewAuthService(userRepo, profileRepo)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	projectService := services.NewProjectService(projectRepo, proposalRepo, messageRepo)
	proposalService := services.NewProposalService(proposalRepo, projectRepo, invitationRepo, userRepo, notificationService)
	invitationService := services.NewInvitationService(invitationRepo, proposalRepo, projectRepo, userRepo, notificationService)
	messageService := services.NewMessageService(messageRepo, projectRepo, userRepo, notificationService)
	convocatoriaService := services.NewConvocatoriaService(convocatoriaRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, convocatoriaRepo, projectRepo, userRepo, notificationService)
	reviewService := services.NewReviewService(reviewRepo, projectRepo, profileRepo, notificationService)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ProfileService:      profileService,
		ProjectService:      projectService,
		ProposalService:     proposalService,
		InvitationService:   invitationService,
		MessageService:      messageService,
		ConvocatoriaService: convocatoriaService,
		ApplicationService:  applicationService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		EmailProvider:       emailProvider,
	}
}

func initializeHandlers(svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, svc.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, svc.UserService, svc.ReviewService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, svc.ProfileService),
		ProjectHandler:      handlers.NewProjectHandler(baseHandler, svc.ProjectService, svc.ReviewService),
		ProposalHandler:     handlers.NewProposalHandler(baseHandler, svc.ProposalService),
		InvitationHandler:   handlers.NewInvitationHandler(baseHandler, svc.InvitationService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, svc.MessageService),
		ConvocatoriaHandler: handlers.NewConvocatoriaHandler(baseHandler, svc.ConvocatoriaService),
		ApplicationHandler:  handlers.NewApplicationHandler(baseHandler, svc.ApplicationService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, svc.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, svc.NotificationService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstStaff creates a bootstrap staff account when configured and
// not present yet.
func seedFirstStaff(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstStaffEmail == "" || cfg.FirstStaffPassword == "" {
		logger.Warn("first staff credentials not set, skipping staff seeding")
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.FirstStaffEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstStaffPassword)
	if err != nil {
		return err
	}

	staff := &models.User{
		Email:        cfg.FirstStaffEmail,
		PasswordHash: hash,
		FirstName:    "Staff",
		IsStaff:      true,
	}
	if err := db.Create(staff).Error; err != nil {
		return err
	}
	logger.Info("Seeded first staff user", "email", cfg.FirstStaffEmail)
	return nil
}
