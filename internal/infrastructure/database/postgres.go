package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/config"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Operation{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedAdminUser creates the initial administrator account when one is
// configured and no user with that username exists yet.
func SeedAdminUser(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("username = ?", cfg.Username).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", cfg.Username)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "Administrador"
	}

	admin := entity.User{
		ID:       uuid.New(),
		Name:     name,
		Username: cfg.Username,
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", cfg.Username)
	return nil
}
