package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/chefmaster/backend/internal/middleware"
	"github.com/pageza/chefmaster/backend/internal/service"
)

// RegisterRoutes mounts the recipe API under /api/v1. limiter may be nil.
func RegisterRoutes(router *gin.Engine, recipes service.IRecipeService, feedback service.IFeedbackService, limiter *middleware.RateLimiter) {
	v1 := router.Group("/api/v1")

	NewRecipeHandler(recipes, limiter).RegisterRoutes(v1)
	NewFeedbackHandler(feedback).RegisterRoutes(v1)
}
