package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/finances_app/internal/core/services"
	"github.com/SscSPs/finances_app/internal/handlers"
	"github.com/SscSPs/finances_app/internal/middleware"
	"github.com/SscSPs/finances_app/internal/platform/config"
	"github.com/SscSPs/finances_app/internal/repositories/cache"
	"github.com/SscSPs/finances_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/finances_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Finances Backend API
// @version 1.0
// @description Accounts, users and credentials for the personal finances backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Database migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("Redis unavailable, account cache disabled", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			repos.AccountRepo = cache.NewCachedAccountRepository(repos.AccountRepo, redisClient, cfg.AccountCacheTTL)
			logger.Info("Account cache enabled", slog.Duration("ttl", cfg.AccountCacheTTL))
		}
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
