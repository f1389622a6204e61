package router

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"docugen/internal/domain"
	"docugen/internal/handler"
	"docugen/internal/middleware"
	"docugen/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	corsOrigins []string,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	registryH *handler.RegistryHandler,
	templateH *handler.TemplateHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Document generation
	documents := protected.Group("/documents")
	documents.POST("/generate", documentH.Generate)

	// Company registry lookups
	registry := protected.Group("/registry")
	registry.GET("/companies", registryH.Companies)

	// Template management
	templates := protected.Group("/templates")
	templates.GET("", templateH.List)
	templates.POST("", middleware.RequireRole(domain.RoleAdmin), templateH.Upload)
	templates.POST("/sync", middleware.RequireRole(domain.RoleAdmin), templateH.Sync)

	// Usage reports
	reports := protected.Group("/reports")
	reports.GET("/usage", middleware.RequireRole(domain.RoleAdmin), reportH.Usage)

	return r
}
