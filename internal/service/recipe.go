package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/chefmaster/backend/internal/cache"
	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/imaging"
	"github.com/pageza/chefmaster/backend/internal/metrics"
	"github.com/pageza/chefmaster/backend/internal/model"
	"github.com/pageza/chefmaster/backend/internal/store"
)

var (
	// ErrRecipeNotFound is returned when no recipe exists for an id
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInvalidID is returned when an id is not a valid UUID
	ErrInvalidID = errors.New("invalid recipe id")
)

// GenerateRequest is a facet selection as submitted by the display surface.
// Empty strings and "Any"/"None" mean unset.
type GenerateRequest struct {
	Cuisine    string `json:"cuisine"`
	MealType   string `json:"meal_type"`
	Dietary    string `json:"dietary"`
	Difficulty string `json:"difficulty"`
	Seed       *int64 `json:"seed,omitempty"`
}

// StoredRecipe is a generated recipe together with its history identity
type StoredRecipe struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	*generator.Recipe
}

func storedFrom(rec *model.GeneratedRecipe) *StoredRecipe {
	return &StoredRecipe{
		ID:        rec.ID,
		Seed:      rec.Seed,
		CreatedAt: rec.CreatedAt,
		Recipe:    rec.Recipe(),
	}
}

// FacetMenu lists the selectable values for each facet, unset sentinel first
type FacetMenu struct {
	Cuisines     []string `json:"cuisines"`
	MealTypes    []string `json:"meal_types"`
	Dietary      []string `json:"dietary"`
	Difficulties []string `json:"difficulties"`
}

// RecipeService handles recipe operations
type RecipeService struct {
	gen    *generator.Generator
	store  RecipeStore
	drafts cache.DraftCache
	images ImageResolver
	seeds  func() int64
}

// NewRecipeService creates a new RecipeService instance. drafts and images may be nil.
func NewRecipeService(gen *generator.Generator, store RecipeStore, drafts cache.DraftCache, images ImageResolver) *RecipeService {
	return &RecipeService{
		gen:    gen,
		store:  store,
		drafts: drafts,
		images: images,
		seeds:  rand.Int63,
	}
}

// Generate produces a recipe for the request, records it in the history and
// caches it as a draft. The seed used is returned so the recipe can be replayed.
func (s *RecipeService) Generate(ctx context.Context, req GenerateRequest) (*StoredRecipe, error) {
	start := time.Now()
	defer func() { metrics.GenerationDuration.Observe(time.Since(start).Seconds()) }()

	facets, err := generator.ParseFacets(req.Cuisine, req.MealType, req.Dietary, req.Difficulty)
	if err != nil {
		recordFailure(err)
		return nil, err
	}

	seed := s.seeds()
	if req.Seed != nil {
		seed = *req.Seed
	}

	recipe, err := s.gen.Generate(facets, generator.NewSource(seed))
	if err != nil {
		log.Printf("[RecipeService] Generation failed for %+v (seed %d): %v", facets, seed, err)
		recordFailure(err)
		return nil, err
	}

	rec := model.FromRecipe(recipe, seed)
	if err := s.store.Create(ctx, rec); err != nil {
		metrics.GenerationFailures.WithLabelValues(metrics.FailureStorage).Inc()
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}
	s.cacheDraft(ctx, rec)

	metrics.RecipesGenerated.WithLabelValues(recipe.Cuisine, recipe.Difficulty).Inc()
	log.Printf("[RecipeService] Generated %q (%s, %s, seed %d) as %s",
		recipe.Name, recipe.Cuisine, recipe.Difficulty, seed, rec.ID)

	return storedFrom(rec), nil
}

// Get retrieves a recipe by id, preferring the draft cache
func (s *RecipeService) Get(ctx context.Context, id string) (*StoredRecipe, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return storedFrom(rec), nil
}

// List returns recipes from the history
func (s *RecipeService) List(ctx context.Context, f store.ListFilter) ([]*StoredRecipe, error) {
	if f.Difficulty != "" {
		d, err := generator.ParseDifficulty(f.Difficulty)
		if err != nil {
			return nil, err
		}
		f.Difficulty = string(d)
	}

	recs, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	result := make([]*StoredRecipe, len(recs))
	for i := range recs {
		result[i] = storedFrom(&recs[i])
	}
	return result, nil
}

// Image resolves the display image for a recipe, falling back to a placeholder
func (s *RecipeService) Image(ctx context.Context, id string) (*imaging.Image, error) {
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.images == nil {
		return &imaging.Image{URL: rec.ImageURL, Source: rec.ImageURL}, nil
	}
	return s.images.Resolve(ctx, rec.ImageURL), nil
}

// Facets returns the selection menus for the display surface
func (s *RecipeService) Facets() FacetMenu {
	menu := FacetMenu{
		Cuisines:     []string{"Any"},
		MealTypes:    []string{generator.MealTypeAny.String()},
		Dietary:      []string{generator.DietaryNone.String()},
		Difficulties: []string{},
	}
	menu.Cuisines = append(menu.Cuisines, s.gen.Base().CuisineIDs()...)
	for _, m := range generator.MealTypes() {
		menu.MealTypes = append(menu.MealTypes, string(m))
	}
	for _, d := range generator.Dietaries() {
		menu.Dietary = append(menu.Dietary, string(d))
	}
	for _, d := range generator.Difficulties() {
		menu.Difficulties = append(menu.Difficulties, string(d))
	}
	return menu
}

func (s *RecipeService) load(ctx context.Context, id string) (*model.GeneratedRecipe, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if s.drafts != nil {
		rec, err := s.drafts.Get(ctx, uid.String())
		if err == nil {
			metrics.DraftCacheHits.Inc()
			return rec, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("[RecipeService] Draft cache lookup failed for %s: %v", uid, err)
		}
		metrics.DraftCacheMisses.Inc()
	}

	rec, err := s.store.Get(ctx, uid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, uid)
	}
	if err != nil {
		return nil, err
	}
	s.cacheDraft(ctx, rec)
	return rec, nil
}

// cacheDraft is best effort; the store remains the source of truth
func (s *RecipeService) cacheDraft(ctx context.Context, rec *model.GeneratedRecipe) {
	if s.drafts == nil {
		return
	}
	if err := s.drafts.Save(ctx, rec); err != nil {
		log.Printf("[RecipeService] Failed to cache draft %s: %v", rec.ID, err)
	}
}

func recordFailure(err error) {
	kind := metrics.FailureInsufficient
	switch {
	case errors.Is(err, generator.ErrUnknownCuisine):
		kind = metrics.FailureUnknownCuisine
	case errors.Is(err, generator.ErrInvalidFacet):
		kind = metrics.FailureInvalidFacet
	}
	metrics.GenerationFailures.WithLabelValues(kind).Inc()
}
