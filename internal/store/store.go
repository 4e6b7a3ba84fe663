package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/chefmaster/backend/internal/model"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ErrNotFound is returned when a recipe does not exist in the history
var ErrNotFound = errors.New("recipe not found")

// ListFilter narrows a history listing
type ListFilter struct {
	Query      string
	Cuisine    string
	Difficulty string
	Limit      int
}

func (f ListFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	}
	return f.Limit
}

// RecipeStore persists generated recipes and their feedback
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new RecipeStore instance
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// Create saves a generated recipe
func (s *RecipeStore) Create(ctx context.Context, rec *model.GeneratedRecipe) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}

// Get retrieves a recipe by ID
func (s *RecipeStore) Get(ctx context.Context, id uuid.UUID) (*model.GeneratedRecipe, error) {
	var rec model.GeneratedRecipe
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &rec, nil
}

// List returns history entries matching the filter, newest first. A query on
// Postgres is ranked by embedding distance; other databases use keyword matching.
func (s *RecipeStore) List(ctx context.Context, f ListFilter) ([]model.GeneratedRecipe, error) {
	q := s.db.WithContext(ctx).Model(&model.GeneratedRecipe{})

	if f.Cuisine != "" {
		q = q.Where("LOWER(cuisine) = ?", strings.ToLower(strings.TrimSpace(f.Cuisine)))
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", strings.ToLower(strings.TrimSpace(f.Difficulty)))
	}

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + query + "%"
		if s.db.Dialector.Name() == "postgres" {
			q = q.Where("LOWER(name) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like).
				Order(clause.OrderBy{Expression: clause.Expr{
					SQL:                "embedding <-> ?",
					Vars:               []interface{}{model.Embed(query)},
					WithoutParentheses: true,
				}})
		} else {
			q = q.Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like)
		}
	}

	var recs []model.GeneratedRecipe
	if err := q.Order("created_at DESC").Limit(f.limit()).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recs, nil
}

// SaveFeedback records a rating against an existing recipe
func (s *RecipeStore) SaveFeedback(ctx context.Context, fb *model.Feedback) error {
	if _, err := s.Get(ctx, fb.RecipeID); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(fb).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// Summary counts the ratings left on a recipe
func (s *RecipeStore) Summary(ctx context.Context, recipeID uuid.UUID) (*model.FeedbackSummary, error) {
	var rows []struct {
		Rating model.Rating
		Count  int
	}
	err := s.db.WithContext(ctx).Model(&model.Feedback{}).
		Select("rating, COUNT(*) AS count").
		Where("recipe_id = ?", recipeID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize feedback: %w", err)
	}

	summary := &model.FeedbackSummary{
		RecipeID: recipeID,
		Counts:   make(map[model.Rating]int, len(rows)),
	}
	for _, r := range rows {
		summary.Counts[r.Rating] = r.Count
		summary.Total += r.Count
	}
	return summary, nil
}
