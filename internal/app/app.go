package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/handlers"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/middleware"
	"huurly_backend/internal/models"
	"huurly_backend/internal/repositories"
	"huurly_backend/internal/routes"
	"huurly_backend/internal/services"
	"huurly_backend/internal/storage"
	"huurly_backend/internal/validator"
	"huurly_backend/internal/workers"
	"huurly_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, svc := SetupRouter(cfg, gormDB)

	worker := workers.NewSubscriptionWorker(gormDB, svc.Subscription, repositories.NewRefreshTokenRepository())
	worker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full engine. Tests call this directly with a
// transaction-scoped db.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(cfg, storageInstance, wsManager)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, pusher services.RealtimePusher) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	tenantProfileRepo := repositories.NewTenantProfileRepository()
	landlordProfileRepo := repositories.NewLandlordProfileRepository()
	documentRepo := repositories.NewDocumentRepository()
	notificationRepo := repositories.NewNotificationRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()

	customValidator := validator.New()

	notificationService := services.NewNotificationService(notificationRepo, pusher)

	return &services.ServiceContainer{
		Auth:            services.NewAuthService(userRepo, refreshTokenRepo),
		User:            services.NewUserService(userRepo),
		TenantProfile:   services.NewTenantProfileService(tenantProfileRepo, customValidator),
		LandlordProfile: services.NewLandlordProfileService(landlordProfileRepo),
		Search:          services.NewSearchService(tenantProfileRepo),
		Document:        services.NewDocumentService(documentRepo, notificationService, storageInstance, cfg),
		Notification:    notificationService,
		Favorite:        services.NewFavoriteService(favoriteRepo, tenantProfileRepo),
		Subscription:    services.NewSubscriptionService(subscriptionRepo, notificationService, cfg),
	}
}

func initializeHandlers(svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:         handlers.NewAuthHandler(baseHandler, svc.Auth),
		User:         handlers.NewUserHandler(baseHandler, svc.User),
		Profile:      handlers.NewProfileHandler(baseHandler, svc.TenantProfile, svc.LandlordProfile),
		Search:       handlers.NewSearchHandler(baseHandler, svc.Search),
		Document:     handlers.NewDocumentHandler(baseHandler, svc.Document),
		Notification: handlers.NewNotificationHandler(baseHandler, svc.Notification),
		Favorite:     handlers.NewFavoriteHandler(baseHandler, svc.Favorite),
		Subscription: handlers.NewSubscriptionHandler(baseHandler, svc.Subscription),
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

// seedFirstAdmin bootstraps the beheerder account on first start. Later
// starts find the user and do nothing.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Naam:         "Beheerder",
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleBeheerder,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
