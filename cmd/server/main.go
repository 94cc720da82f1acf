package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/careops/staff-dashboard-backend/internal/config"
	"github.com/careops/staff-dashboard-backend/internal/database"
	"github.com/careops/staff-dashboard-backend/internal/handlers"
	"github.com/careops/staff-dashboard-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting CareOps Staff Dashboard Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize repositories
	store := database.NewStore(db)

	// Initialize services. The evaluator and the dashboard share the same
	// due-soon window from config, so the reminder selection and the
	// dashboard counts always agree.
	logger.Info("Initializing services...")
	evaluator := services.NewStatusEvaluator(cfg.Compliance.DueSoonWindowDays)
	dashboardService := services.NewDashboardService(store, evaluator, cfg.Compliance.UpcomingShiftWindowDays)
	notificationService := services.NewNotificationService(evaluator, cfg.Compliance.UpcomingShiftWindowDays, cfg.Notify.MaxConcurrentSends)
	reportService := services.NewReportService(store, evaluator)

	// Initialize and start cron service
	cronService := services.NewCronService(dashboardService, logger)
	if err := cronService.Start(); err != nil {
		logger.Fatalf("Failed to start cron service: %v", err)
	}

	logger.Info("Services initialized")

	// Initialize handlers
	staffHandler := handlers.NewStaffHandler(store.Staff, evaluator)
	shiftHandler := handlers.NewShiftHandler(store.Shifts, store.Staff)
	safetyHandler := handlers.NewSafetyHandler(store.Safety)
	inventoryHandler := handlers.NewInventoryHandler(store.Inventory, evaluator)
	feedbackHandler := handlers.NewFeedbackHandler(store.Feedback)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	notificationHandler := handlers.NewNotificationHandler(
		store.Staff,
		store.Shifts,
		notificationService,
		cfg.SMTP,
		cfg.Notify.SendTimeout,
	)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		staff := v1.Group("/staff")
		{
			staff.GET("", staffHandler.ListStaff)
			staff.GET("/:id", staffHandler.GetStaff)
			staff.POST("", staffHandler.CreateStaff)
			staff.PUT("/:id", staffHandler.UpdateStaff)
			staff.DELETE("/:id", staffHandler.DeleteStaff)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", shiftHandler.CreateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
		}

		safety := v1.Group("/safety")
		{
			safety.GET("", safetyHandler.ListSafetyConcerns)
			safety.POST("", safetyHandler.CreateSafetyConcern)
			safety.POST("/:id/resolve", safetyHandler.ResolveSafetyConcern)
			safety.POST("/:id/toggle", safetyHandler.ToggleSafetyConcern)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.ListInventory)
			inventory.POST("", inventoryHandler.SaveInventoryItem)
			inventory.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.GET("", feedbackHandler.ListFeedback)
			feedback.POST("", feedbackHandler.CreateFeedback)
		}

		v1.GET("/dashboard/summary", dashboardHandler.GetSummary)

		notifications := v1.Group("/notifications")
		{
			notifications.POST("/certifications", notificationHandler.SendCertificationReminders)
			notifications.POST("/shifts", notificationHandler.SendShiftReminders)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/staff", reportHandler.ExportStaff)
			reports.GET("/certifications-due", reportHandler.ExportCertificationsDue)
			reports.GET("/inventory", reportHandler.ExportInventory)
			reports.GET("/feedback", reportHandler.ExportFeedback)
			reports.GET("/safety", reportHandler.ExportSafety)
		}

		// Admin cron management routes
		admin := v1.Group("/admin")
		{
			admin.POST("/cron/compliance-sweep", func(c *gin.Context) {
				cronService.RunComplianceSweepNow()
				c.JSON(200, gin.H{"message": "Compliance sweep triggered"})
			})

			admin.GET("/cron/status", func(c *gin.Context) {
				c.JSON(200, cronService.GetJobStatus())
			})
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop cron service
	cronService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		entry := logger.WithFields(fields)

		if len(c.Errors) > 0 {
			for i, err := range c.Errors {
				entry = entry.WithField(fmt.Sprintf("error_%d", i), err.Error())
			}
			entry.Error("Request failed with errors")
		} else {
			status := c.Writer.Status()
			if status >= 500 {
				entry.Error("Request completed with server error")
			} else if status >= 400 {
				entry.Warn("Request completed with client error")
			} else {
				entry.Info("Request completed successfully")
			}
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
