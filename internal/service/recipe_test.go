package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/chefmaster/backend/internal/cache"
	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/imaging"
	"github.com/pageza/chefmaster/backend/internal/kb"
	"github.com/pageza/chefmaster/backend/internal/model"
	"github.com/pageza/chefmaster/backend/internal/store"
)

func setupTestStore(t *testing.T) *store.RecipeStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.GeneratedRecipe{}, &model.Feedback{}))
	return store.NewRecipeStore(db)
}

type stubResolver struct {
	refs []string
}

func (r *stubResolver) Resolve(ctx context.Context, ref string) *imaging.Image {
	r.refs = append(r.refs, ref)
	return &imaging.Image{URL: "https://cdn.example.com/placeholder.png", Source: ref, Placeholder: true}
}

type countingStore struct {
	RecipeStore
	gets int
}

func (s *countingStore) Get(ctx context.Context, id uuid.UUID) (*model.GeneratedRecipe, error) {
	s.gets++
	return s.RecipeStore.Get(ctx, id)
}

func newTestRecipeService(t *testing.T) (*RecipeService, *countingStore, *stubResolver) {
	t.Helper()
	st := &countingStore{RecipeStore: setupTestStore(t)}
	images := &stubResolver{}
	svc := NewRecipeService(generator.New(kb.Default()), st, cache.NewMemoryCache(time.Hour), images)
	return svc, st, images
}

func seed(v int64) *int64 { return &v }

func TestGenerateIsReproducible(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	ctx := context.Background()
	req := GenerateRequest{Cuisine: "italian", Difficulty: "hard", Dietary: "vegetarian", Seed: seed(42)}

	first, err := svc.Generate(ctx, req)
	require.NoError(t, err)
	second, err := svc.Generate(ctx, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(42), first.Seed)
	assert.Equal(t, first.Recipe, second.Recipe)

	direct, err := generator.Generate(kb.Default(), generator.Facets{
		Cuisine:    "italian",
		Difficulty: generator.DifficultyHard,
		Dietary:    generator.DietaryVegetarian,
	}, generator.NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, direct, first.Recipe)
}

func TestGenerateUsesRandomSeedWhenAbsent(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	svc.seeds = func() int64 { return 7 }

	got, err := svc.Generate(context.Background(), GenerateRequest{Cuisine: "Any", MealType: "Any", Dietary: "None"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, "Any", got.MealType)
	assert.Equal(t, "None", got.Dietary)
	assert.Equal(t, "medium", got.Difficulty)
}

func TestGenerateErrors(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  GenerateRequest
		want error
	}{
		{"unknown cuisine", GenerateRequest{Cuisine: "martian"}, generator.ErrUnknownCuisine},
		{"bad dietary", GenerateRequest{Dietary: "carnivore"}, generator.ErrInvalidFacet},
		{"bad difficulty", GenerateRequest{Difficulty: "extreme"}, generator.ErrInvalidFacet},
		{"bad meal type", GenerateRequest{MealType: "brunch"}, generator.ErrInvalidFacet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(ctx, tt.req)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestGenerateInsufficientIngredients(t *testing.T) {
	base := kb.MustNew(kb.CuisineProfile{
		ID:             "steakhouse",
		Proteins:       []string{"beef"},
		Carbs:          []string{"potatoes"},
		Vegetables:     []string{"onions", "mushrooms"},
		Spices:         []string{"pepper", "salt", "garlic"},
		CookingMethods: []string{"grill"},
		Signature:      []string{"butter"},
		Image:          "https://example.com/steak.jpg",
	})
	svc := NewRecipeService(generator.New(base), setupTestStore(t), nil, nil)

	_, err := svc.Generate(context.Background(), GenerateRequest{Dietary: "vegan"})
	assert.ErrorIs(t, err, generator.ErrInsufficientIngredients)
}

func TestGetPrefersDraftCache(t *testing.T) {
	svc, st, _ := newTestRecipeService(t)
	ctx := context.Background()

	created, err := svc.Generate(ctx, GenerateRequest{Seed: seed(1)})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, 0, st.gets)

	// A cold cache falls through to the store and warms the cache again
	require.NoError(t, svc.drafts.Delete(ctx, created.ID.String()))
	got, err = svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Instructions, got.Instructions)
	assert.Equal(t, 1, st.gets)

	_, err = svc.Get(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, st.gets)
}

func TestGetErrors(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestList(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	ctx := context.Background()

	for i, c := range []string{"indian", "japanese", "indian"} {
		_, err := svc.Generate(ctx, GenerateRequest{Cuisine: c, Difficulty: "easy", Seed: seed(int64(i))})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, store.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	indian, err := svc.List(ctx, store.ListFilter{Cuisine: "Indian", Difficulty: "EASY"})
	require.NoError(t, err)
	assert.Len(t, indian, 2)
	for _, r := range indian {
		assert.Equal(t, "Indian", r.Cuisine)
	}

	_, err = svc.List(ctx, store.ListFilter{Difficulty: "impossible"})
	assert.ErrorIs(t, err, generator.ErrInvalidFacet)
}

func TestImage(t *testing.T) {
	svc, _, images := newTestRecipeService(t)
	ctx := context.Background()

	created, err := svc.Generate(ctx, GenerateRequest{Cuisine: "mexican", Seed: seed(3)})
	require.NoError(t, err)

	img, err := svc.Image(ctx, created.ID.String())
	require.NoError(t, err)
	assert.True(t, img.Placeholder)
	assert.Equal(t, []string{created.ImageURL}, images.refs)
}

func TestFacets(t *testing.T) {
	svc, _, _ := newTestRecipeService(t)
	menu := svc.Facets()

	assert.Equal(t, []string{"Any", "indian", "italian", "japanese", "mexican"}, menu.Cuisines)
	assert.Equal(t, []string{"Any", "breakfast", "lunch", "dinner", "dessert", "snack"}, menu.MealTypes)
	assert.Equal(t, "None", menu.Dietary[0])
	assert.Len(t, menu.Dietary, 7)
	assert.Equal(t, []string{"easy", "medium", "hard"}, menu.Difficulties)
}
