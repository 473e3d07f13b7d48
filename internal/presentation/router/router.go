package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/thassiov/challenge/internal/middleware"
	"github.com/thassiov/challenge/internal/presentation/handlers"
)

// Handlers groups the HTTP handlers mounted by New
type Handlers struct {
	Health     *handlers.HealthHandler
	Repository *handlers.RepositoryHandler
}

// New builds the gin engine with middleware and routes.
// verbose enables full error chains in 500 responses.
func New(h Handlers, logger *zap.Logger, verbose bool) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered))
		c.String(http.StatusInternalServerError, middleware.GenericErrorMessage)
	}))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.ErrorHandler(logger, verbose))

	router.GET("/health", h.Health.Health)
	router.GET("/get-repos", h.Repository.GetRepos)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
