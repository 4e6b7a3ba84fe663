package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/service"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker func(ctx context.Context) error

// HealthCheck returns the health status of the API and its dependencies
func HealthCheck(checks map[string]HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}

		state := "healthy"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{
			"status":       state,
			"message":      "Chef Master API is running",
			"dependencies": deps,
		})
	}
}

// statusFor maps service and generator errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, generator.ErrUnknownCuisine),
		errors.Is(err, generator.ErrInvalidFacet),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidFeedback):
		return http.StatusBadRequest
	case errors.Is(err, generator.ErrInsufficientIngredients):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON body. Internal failures are logged and
// replaced by message.
func respondError(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[API] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(status, gin.H{"error": message})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
