package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/handlers"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/logger"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/middleware"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/services"
	"github.com/eumoitinho/DASHBOARDNINETWO/pkg/database"
)

const version = "1.0.0"

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if err := logger.Init(logger.Config{
		Level:       getenv("LOG_LEVEL", "info"),
		Environment: getenv("APP_ENV", "development"),
		ServiceName: "dashboard-api",
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		zap.L().Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		zap.L().Warn("JWT_SECRET not set, using generated secret")
	}

	// MinIO configuration for the report archive
	minioEndpoint := getenv("MINIO_ENDPOINT", "localhost:9000")
	minioAccessKey := getenv("MINIO_ACCESS_KEY", "minioadmin")
	minioSecretKey := getenv("MINIO_SECRET_KEY", "minioadmin")
	minioBucket := getenv("MINIO_REPORTS_BUCKET", "report-archive")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	storageSvc, err := services.NewMinioStorage(minioEndpoint, minioAccessKey, minioSecretKey, minioBucket, useSSL)
	if err != nil {
		zap.L().Fatal("Failed to initialize storage service", zap.Error(err))
	}
	if err := storageSvc.EnsureBucketExists(context.Background()); err != nil {
		// Report archiving degrades gracefully; generation itself still works
		zap.L().Warn("Report archive bucket unavailable", zap.Error(err))
	}

	// Google Ads credentials are server-side only, injected explicitly
	googleAdsCreds := services.GoogleAdsCredentials{
		DeveloperToken: os.Getenv("GOOGLE_ADS_DEVELOPER_TOKEN"),
		ClientID:       os.Getenv("GOOGLE_ADS_CLIENT_ID"),
		ClientSecret:   os.Getenv("GOOGLE_ADS_CLIENT_SECRET"),
		RefreshToken:   os.Getenv("GOOGLE_ADS_REFRESH_TOKEN"),
	}

	// Create repositories
	clientRepo := repositories.NewClientRepository(pool)
	reportRepo := repositories.NewReportRepository(pool)

	// Create services
	tagSvc := services.NewTagService(clientRepo)
	chartSvc := services.NewChartService(clientRepo)
	reportSvc := services.NewReportService(clientRepo, reportRepo, services.NewPlaceholderMetricsSource(), storageSvc)
	settingsSvc := services.NewSettingsService(clientRepo)
	googleAdsSvc := services.NewGoogleAdsService(googleAdsCreds)

	// Create handlers
	tagHandlers := handlers.NewTagHandlers(tagSvc)
	chartHandlers := handlers.NewChartHandlers(chartSvc)
	reportHandlers := handlers.NewReportHandlers(reportSvc)
	settingsHandlers := handlers.NewSettingsHandlers(settingsSvc)
	connectionHandlers := handlers.NewConnectionHandlers(googleAdsSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, storageSvc, version)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	session := middleware.SessionMiddleware(jwtSecret)

	// Admin tag routes
	admin := e.Group("/admin", session, middleware.RequireAdmin())
	admin.PUT("/tags/:id", tagHandlers.UpdateTag)
	admin.DELETE("/tags/:id", tagHandlers.DeleteTag)

	// Tenant-scoped routes
	charts := e.Group("/charts", session, middleware.RequireClientAccess("client"))
	charts.GET("/:client", chartHandlers.ListCharts)
	charts.POST("/:client", chartHandlers.SaveChart)
	charts.DELETE("/:client/:chartId", chartHandlers.DeleteChart)

	reports := e.Group("/reports", session, middleware.RequireClientAccess("client"))
	reports.GET("/:client", reportHandlers.ListReports)
	reports.POST("/:client", reportHandlers.GenerateReport)
	reports.GET("/:client/:id/export", reportHandlers.ExportReport)

	settings := e.Group("/settings", session, middleware.RequireClientAccess("client"))
	settings.GET("/:client", settingsHandlers.GetSettings)
	settings.PUT("/:client", settingsHandlers.UpdateSettings)

	// Credential test: POST needs a session, GET only documents usage
	e.POST("/test-connection/googleAds", connectionHandlers.TestGoogleAds, session)
	e.GET("/test-connection/googleAds", connectionHandlers.TestGoogleAdsInfo)

	// Start server
	port := getenv("PORT", "8080")
	zap.L().Info("Dashboard API starting", zap.String("version", version), zap.String("port", port))
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", port)))
}
