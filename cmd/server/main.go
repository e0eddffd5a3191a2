package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/database"
	"expense-manager/internal/handlers"
	custommw "expense-manager/internal/middleware"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	if err := db.SeedVendorMappings(); err != nil {
		slog.Error("failed to seed vendor category mappings", "error", err.Error())
		os.Exit(1)
	}

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	mappingRepo := repositories.NewVendorCategoryMappingRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	categorization := services.NewRuleBasedCategorizationStrategy(mappingRepo)
	anomalyDetector := services.NewAnomalyDetector(expenseRepo)
	expenseService := services.NewExpenseService(expenseRepo, categorization, anomalyDetector, metrics)
	csvService := services.NewCsvIngestService(expenseService, metrics)

	if cfg.Upload.SeedSampleExpenses && !cfg.IsProduction() {
		seedSampleExpenses(expenseService, cfg.Upload.SampleExpenseCount)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(echomw.BodyLimit("10M"))

	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	expenseHandler := handlers.NewExpenseHandler(expenseService, csvService, cfg.Upload.MaxCSVBytes)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/expenses", expenseHandler.CreateExpense)
	v1.POST("/expenses/upload-csv", expenseHandler.UploadCSV)
	v1.GET("/expenses/dashboard/monthly-totals", expenseHandler.GetMonthlyTotals)
	v1.GET("/expenses/dashboard/top-vendors", expenseHandler.GetTopVendors)
	v1.GET("/expenses/dashboard/anomalies", expenseHandler.GetAnomalies)
	v1.GET("/expenses/dashboard/anomalies/count", expenseHandler.GetAnomalyCount)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(expenseService)
		v1.POST("/dev/generate-test-data", devHandler.GenerateTestData)
	}

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err.Error())
	}
}

// seedSampleExpenses loads generated expenses through the normal ingestion
// pipeline so categories and anomaly flags are assigned the same way as real
// traffic
func seedSampleExpenses(expenseService services.ExpenseServiceInterface, count int) {
	generator := services.NewSampleExpenseGenerator()
	created := 0
	for _, request := range generator.GenerateSampleExpenses(count) {
		if _, err := expenseService.AddExpense(request); err != nil {
			slog.Warn("failed to seed sample expense", "error", err.Error())
			continue
		}
		created++
	}
	slog.Info("seeded sample expenses", "count", created)
}
