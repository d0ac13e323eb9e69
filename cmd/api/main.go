package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/config"
	"github.com/alavista-lab/cotizador-api/internal/infrastructure/database"
	"github.com/alavista-lab/cotizador-api/internal/infrastructure/repository"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/handler"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/routes"
	"github.com/alavista-lab/cotizador-api/pkg/analyzer"
	"github.com/alavista-lab/cotizador-api/pkg/pdf"
	"github.com/alavista-lab/cotizador-api/pkg/textgen"
	"github.com/alavista-lab/cotizador-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed the initial administrator account
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		logger.WithError(err).Warn("Failed to seed admin user")
	}

	// Connect to Redis for draft persistence
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.Redis.DraftTTL)

	// External analysis and text generation clients. Empty URLs keep them
	// in local fallback mode.
	analyzerClient := analyzer.NewClient(cfg.Services.AnalyzerURL, cfg.Services.Timeout, logger)
	textgenClient := textgen.NewClient(cfg.Services.TextGenURL, cfg.Services.Timeout, logger)

	// PDF renderer
	renderer := pdf.NewRenderer()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	quotationService := service.NewQuotationService(renderer)
	draftService := service.NewDraftService(draftRepo)
	enrichmentService := service.NewEnrichmentService(analyzerClient, textgenClient)
	operationService := service.NewOperationService(operationRepo)
	dashboardService := service.NewDashboardService(operationRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Quotation: handler.NewQuotationHandler(quotationService, draftService),
		Analysis:  handler.NewAnalysisHandler(enrichmentService, quotationService),
		Operation: handler.NewOperationHandler(operationService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
