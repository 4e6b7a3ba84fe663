package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/chefmaster/backend/internal/api"
	"github.com/pageza/chefmaster/backend/internal/metrics"
	"github.com/pageza/chefmaster/backend/internal/middleware"
	"github.com/pageza/chefmaster/backend/internal/service"
)

// Dependencies are the collaborators the HTTP surface is built from
type Dependencies struct {
	Recipes     service.IRecipeService
	Feedback    service.IFeedbackService
	Limiter     *middleware.RateLimiter
	CORSOrigins []string
	Health      map[string]api.HealthChecker
}

// SetupRouter configures the application routes
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS(deps.CORSOrigins))

	// Operational endpoints
	router.GET("/health", api.HealthCheck(deps.Health))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api.RegisterRoutes(router, deps.Recipes, deps.Feedback, deps.Limiter)

	return router
}
