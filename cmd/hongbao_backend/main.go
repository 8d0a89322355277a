package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	_ "github.com/hongbao-tally/hongbao_tally_app/cmd/docs"
	"github.com/hongbao-tally/hongbao_tally_app/internal/adapters/memstore"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portsrepo "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/repositories"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/dto"
	"github.com/hongbao-tally/hongbao_tally_app/internal/handlers"
	"github.com/hongbao-tally/hongbao_tally_app/internal/middleware"
	"github.com/hongbao-tally/hongbao_tally_app/internal/platform/config"
)

// @title Hongbao Tally API
// @version 1.0
// @description Backend API for the red envelope cash tally.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build the denomination catalog: fixed for the process lifetime
	catalog := domain.DefaultCatalog()
	if cfg.CatalogFile != "" {
		catalog, err = domain.LoadCatalogFile(cfg.CatalogFile)
		if err != nil {
			logger.Error("Failed to load denomination catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Loaded denomination catalog", slog.String("file", cfg.CatalogFile), slog.Int("denominations", catalog.Len()))
	}

	// In-memory session store; nothing persists across runs
	sessionRepo := memstore.NewSessionRepository()
	repos := portsrepo.RepositoryProvider{SessionRepo: sessionRepo}
	serviceContainer := services.NewServiceContainer(repos, catalog, cfg.CurrencyCode, cfg.NotificationTTL, time.Now)

	// Seed the initial sheet: two empty rows
	if _, err := serviceContainer.Tally.ResetAll(context.Background()); err != nil {
		logger.Error("Failed to seed initial sheet", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	// CORS for the browser frontend
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	// Per-IP rate limiting
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermemory.NewStore(), rate)))

	handlers.RegisterRoutes(r, cfg, catalog, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
