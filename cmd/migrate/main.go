// Command migrate applies the GORM auto-migrations for every model.
// Run it once per deploy, before starting the web process.
package main

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"huurly_backend/internal/config"
	"huurly_backend/internal/logger"
	"huurly_backend/internal/models"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	// uuid_generate_v4 comes from this extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		logger.Fatal("Failed to create uuid-ossp extension", "error", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.TenantProfile{},
		&models.LandlordProfile{},
		&models.Document{},
		&models.Notification{},
		&models.FavoriteProfile{},
		&models.UserSubscription{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	logger.Info("Migrations applied")
}
