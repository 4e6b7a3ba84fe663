package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/chefmaster/backend/internal/middleware"
	"github.com/pageza/chefmaster/backend/internal/service"
	"github.com/pageza/chefmaster/backend/internal/store"
)

type RecipeHandler struct {
	recipes service.IRecipeService
	limiter *middleware.RateLimiter
}

func NewRecipeHandler(recipes service.IRecipeService, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		limiter: limiter,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/facets", h.Facets)

	recipes := router.Group("/recipes")
	{
		generate := []gin.HandlerFunc{h.GenerateRecipe}
		if h.limiter != nil {
			generate = append([]gin.HandlerFunc{h.limiter.RateLimitMiddleware()}, generate...)
		}
		recipes.POST("/generate", generate...)
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/image", h.GetRecipeImage)
	}
}

// Facets returns the selection menus for each facet
func (h *RecipeHandler) Facets(c *gin.Context) {
	c.JSON(http.StatusOK, h.recipes.Facets())
}

// GenerateRecipe synthesizes a recipe from the submitted facets
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req service.GenerateRequest
	// An empty body, chunked or not, selects every facet at random
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to generate recipe")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	filter := store.ListFilter{
		Query:      c.Query("q"),
		Cuisine:    c.Query("cuisine"),
		Difficulty: c.Query("difficulty"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filter.Limit = limit
	}

	recipes, err := h.recipes.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to fetch recipes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

// GetRecipeImage resolves the recipe's image, substituting a placeholder on failure
func (h *RecipeHandler) GetRecipeImage(c *gin.Context) {
	img, err := h.recipes.Image(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to resolve image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": img})
}
