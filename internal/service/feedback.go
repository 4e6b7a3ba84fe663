package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/pageza/chefmaster/backend/internal/model"
	"github.com/pageza/chefmaster/backend/internal/store"
)

// ErrInvalidFeedback is returned for unknown ratings or oversized comments
var ErrInvalidFeedback = errors.New("invalid feedback")

const maxCommentLength = 1000

// FeedbackService records how cooks liked generated recipes. Ratings are
// kept for reporting only.
type FeedbackService struct {
	store RecipeStore
}

func NewFeedbackService(store RecipeStore) *FeedbackService {
	return &FeedbackService{store: store}
}

// Record validates and stores a rating for an existing recipe
func (s *FeedbackService) Record(ctx context.Context, recipeID, rating, comment string) (*model.Feedback, error) {
	uid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, recipeID)
	}

	r, err := model.ParseRating(rating)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeedback, err)
	}

	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidFeedback, maxCommentLength)
	}

	fb := &model.Feedback{RecipeID: uid, Rating: r, Comment: comment}
	if err := s.store.SaveFeedback(ctx, fb); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, uid)
		}
		return nil, err
	}

	log.Printf("[FeedbackService] Recorded %s for recipe %s", r, uid)
	return fb, nil
}

// Summary counts ratings for a recipe
func (s *FeedbackService) Summary(ctx context.Context, recipeID string) (*model.FeedbackSummary, error) {
	uid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, recipeID)
	}
	if _, err := s.store.Get(ctx, uid); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, uid)
		}
		return nil, err
	}
	return s.store.Summary(ctx, uid)
}
