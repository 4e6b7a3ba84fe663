package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/chefmaster/backend/internal/imaging"
	"github.com/pageza/chefmaster/backend/internal/model"
	"github.com/pageza/chefmaster/backend/internal/store"
)

// RecipeStore persists generated recipes and feedback
type RecipeStore interface {
	Create(ctx context.Context, rec *model.GeneratedRecipe) error
	Get(ctx context.Context, id uuid.UUID) (*model.GeneratedRecipe, error)
	List(ctx context.Context, f store.ListFilter) ([]model.GeneratedRecipe, error)
	SaveFeedback(ctx context.Context, fb *model.Feedback) error
	Summary(ctx context.Context, recipeID uuid.UUID) (*model.FeedbackSummary, error)
}

// ImageResolver turns an image reference into a displayable image
type ImageResolver interface {
	Resolve(ctx context.Context, ref string) *imaging.Image
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Generate(ctx context.Context, req GenerateRequest) (*StoredRecipe, error)
	Get(ctx context.Context, id string) (*StoredRecipe, error)
	List(ctx context.Context, f store.ListFilter) ([]*StoredRecipe, error)
	Image(ctx context.Context, id string) (*imaging.Image, error)
	Facets() FacetMenu
}

// IFeedbackService defines the interface for feedback operations
type IFeedbackService interface {
	Record(ctx context.Context, recipeID, rating, comment string) (*model.Feedback, error)
	Summary(ctx context.Context, recipeID string) (*model.FeedbackSummary, error)
}
