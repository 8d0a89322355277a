package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hongbao-tally/hongbao_tally_app/cmd/docs"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	catalog *domain.Catalog,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", getHome)

	// API v1 routes (single-session tool, no auth)
	v1 := r.Group("/api/v1")
	registerTallyRoutes(v1, services.Tally, catalog)
	registerExportRoutes(v1, services.Export)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
