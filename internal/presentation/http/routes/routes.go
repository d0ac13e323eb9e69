package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/alavista-lab/cotizador-api/internal/config"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/handler"
	"github.com/alavista-lab/cotizador-api/internal/presentation/http/middleware"
	"github.com/alavista-lab/cotizador-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Quotation *handler.QuotationHandler
	Analysis  *handler.AnalysisHandler
	Operation *handler.OperationHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	// The login screen needs the areas list before any token exists
	v1.GET("/areas", h.Auth.Areas)
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/validate", h.Auth.Validate)
	protected.GET("/profile", h.Auth.Profile)

	// Quotation form support
	protected.GET("/catalog", h.Quotation.Catalog)
	protected.GET("/quotations/defaults", h.Quotation.Defaults)
	protected.POST("/quotations/pricing", h.Quotation.Pricing)
	protected.POST("/quotations/export", h.Quotation.Export)

	// Draft auto-persistence, one slot per user
	protected.PUT("/quotations/draft", h.Quotation.SaveDraft)
	protected.GET("/quotations/draft", h.Quotation.GetDraft)
	protected.DELETE("/quotations/draft", h.Quotation.DeleteDraft)

	// Text enrichment
	analysis := protected.Group("/analysis")
	{
		analysis.POST("/structure", h.Analysis.Structure)
		analysis.POST("/requirements", h.Analysis.Requirements)
		analysis.POST("/duration", h.Analysis.Duration)
		analysis.POST("/service-need", h.Analysis.ServiceNeed)
	}

	// Persisted operations
	operations := protected.Group("/operations")
	{
		operations.POST("", h.Operation.Create)
		operations.GET("", h.Operation.List)
		operations.GET("/:id", h.Operation.GetByID)
		operations.PUT("/:id", h.Operation.Update)
		operations.PATCH("/:id/status", h.Operation.UpdateStatus)
		operations.DELETE("/:id", h.Operation.Delete)
	}

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetStats)
}
