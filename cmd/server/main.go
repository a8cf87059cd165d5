package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	customerapp "github.com/crm/backend/internal/application/customer"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/persistence"
	"github.com/crm/backend/internal/infrastructure/telemetry"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
	"github.com/crm/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//	@title			CRM Backend API
//	@version		1.0
//	@description	Customer relationship backend with consolidated 360 views and a TMF-style party-role API

//	@contact.name	API Support
//	@contact.url	https://github.com/crm/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		TimeFormat:  "2006-01-02T15:04:05.000Z07:00",
		ServiceName: cfg.App.Name,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CRM Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize OpenTelemetry tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	caseRepo := persistence.NewGormCaseRepository(db.DB)
	interactionRepo := persistence.NewGormInteractionRepository(db.DB)
	view360Repo := persistence.NewGormCustomer360Repository(db.DB)
	viewScope := persistence.NewGormViewTransactionScope(db.DB)

	// Initialize application services
	customerService := customerapp.NewCustomerService(customerRepo)
	caseService := customerapp.NewCaseService(caseRepo, customerRepo)
	interactionService := customerapp.NewInteractionService(interactionRepo, customerRepo, caseRepo)
	viewService := customerapp.NewViewService(viewScope, view360Repo, log,
		customerapp.WithRecentInteractionLimit(cfg.View.RecentInteractionLimit))

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerService)
	caseHandler := handler.NewCaseHandler(caseService)
	interactionHandler := handler.NewInteractionHandler(interactionService)
	view360Handler := handler.NewView360Handler(viewService)
	partyRoleHandler := handler.NewPartyRoleHandler(customerService)
	systemHandler := handler.NewSystemHandler()

	// Configure Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Create Gin engine
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Global middleware
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}

	// Health check outside the API version prefix
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Customer domain (profiles, lifecycle)
	customerRoutes := router.NewDomainGroup("customers", "")
	customerRoutes.POST("/customers", customerHandler.Create)
	customerRoutes.GET("/customers", customerHandler.List)
	customerRoutes.GET("/customers/counts", customerHandler.CountByStatus)
	customerRoutes.GET("/customers/external/:externalId", customerHandler.GetByExternalID)
	customerRoutes.GET("/customers/:id", customerHandler.GetByID)
	customerRoutes.PATCH("/customers/:id", customerHandler.Update)
	customerRoutes.DELETE("/customers/:id", customerHandler.Delete)
	customerRoutes.POST("/customers/:id/activate", customerHandler.Activate)
	customerRoutes.POST("/customers/:id/deactivate", customerHandler.Deactivate)
	customerRoutes.POST("/customers/:id/suspend", customerHandler.Suspend)

	// Case management
	customerRoutes.POST("/customers/:id/cases", caseHandler.Create)
	customerRoutes.GET("/customers/:id/cases", caseHandler.ListByCustomer)
	customerRoutes.GET("/customers/:id/cases/open", caseHandler.ListOpenByCustomer)
	customerRoutes.GET("/cases", caseHandler.List)
	customerRoutes.GET("/cases/number/:caseNumber", caseHandler.GetByCaseNumber)
	customerRoutes.GET("/cases/:id", caseHandler.GetByID)
	customerRoutes.PUT("/cases/:id", caseHandler.Update)
	customerRoutes.POST("/cases/:id/resolve", caseHandler.Resolve)
	customerRoutes.POST("/cases/:id/escalate", caseHandler.Escalate)

	// Interaction history
	customerRoutes.POST("/customers/:id/interactions", interactionHandler.Record)
	customerRoutes.GET("/customers/:id/interactions", interactionHandler.ListByCustomer)
	customerRoutes.GET("/cases/:id/interactions", interactionHandler.ListByCase)
	customerRoutes.GET("/interactions/:id", interactionHandler.GetByID)

	// Consolidated 360 views
	customerRoutes.GET("/customers/:id/view360", view360Handler.GetView360)
	customerRoutes.GET("/customers/:id/consolidated", view360Handler.GetConsolidated)
	customerRoutes.GET("/consolidated", view360Handler.ListConsolidated)
	customerRoutes.GET("/consolidated/external/:externalId", view360Handler.GetConsolidatedByExternalID)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(customerRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// TMF party-role API lives on its own standards-mandated base path
	partyRoleGroup := engine.Group(handler.PartyRoleBasePath)
	{
		partyRoleGroup.POST("", partyRoleHandler.Create)
		partyRoleGroup.GET("", partyRoleHandler.List)
		partyRoleGroup.GET("/:id", partyRoleHandler.GetByID)
		partyRoleGroup.PATCH("/:id", partyRoleHandler.Patch)
		partyRoleGroup.DELETE("/:id", partyRoleHandler.Delete)
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
