package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/chefmaster/backend/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedRecipe(t *testing.T, s *RecipeStore, name, cuisine, difficulty string, created time.Time, ingredients ...string) *model.GeneratedRecipe {
	t.Helper()
	rec := &model.GeneratedRecipe{
		Name:         name,
		Cuisine:      cuisine,
		Difficulty:   difficulty,
		CreatedAt:    created,
		Ingredients:  model.JSONBStringArray(ingredients),
		Instructions: model.JSONBStringArray{"Prepare all ingredients."},
		Embedding:    model.Embed(name),
	}
	require.NoError(t, s.Create(context.Background(), rec))
	return rec
}

func TestCreateAndGet(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()

	rec := seedRecipe(t, s, "Grill salmon Japanese", "Japanese", "medium", time.Now(), "salmon", "rice")
	assert.NotEqual(t, uuid.Nil, rec.ID)

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grill salmon Japanese", got.Name)
	assert.Equal(t, model.JSONBStringArray{"salmon", "rice"}, got.Ingredients)

	_, err = s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seedRecipe(t, s, "Grill salmon Japanese", "Japanese", "medium", base, "salmon", "rice")
	seedRecipe(t, s, "Bake chicken Italian", "Italian", "easy", base.Add(time.Minute), "chicken", "pasta")
	seedRecipe(t, s, "Roast tofu Italian", "Italian", "hard", base.Add(2*time.Minute), "tofu", "polenta")

	tests := []struct {
		name   string
		filter ListFilter
		want   []string
	}{
		{"all newest first", ListFilter{}, []string{"Roast tofu Italian", "Bake chicken Italian", "Grill salmon Japanese"}},
		{"cuisine case insensitive", ListFilter{Cuisine: "italian"}, []string{"Roast tofu Italian", "Bake chicken Italian"}},
		{"difficulty", ListFilter{Difficulty: "EASY"}, []string{"Bake chicken Italian"}},
		{"query on name", ListFilter{Query: "salmon"}, []string{"Grill salmon Japanese"}},
		{"query on ingredients", ListFilter{Query: "Polenta"}, []string{"Roast tofu Italian"}},
		{"limit", ListFilter{Limit: 1}, []string{"Roast tofu Italian"}},
		{"no match", ListFilter{Query: "lamb"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := s.List(ctx, tt.filter)
			require.NoError(t, err)
			var names []string
			for _, r := range recs {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestListFilterLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ListFilter{}.limit())
	assert.Equal(t, MaxListLimit, ListFilter{Limit: 5000}.limit())
	assert.Equal(t, 3, ListFilter{Limit: 3}.limit())
}

func TestFeedback(t *testing.T) {
	s := NewRecipeStore(setupTestDB(t))
	ctx := context.Background()
	rec := seedRecipe(t, s, "Fry shrimp Mexican", "Mexican", "easy", time.Now(), "shrimp")

	for _, r := range []model.Rating{model.RatingLoved, model.RatingLoved, model.RatingOkay} {
		require.NoError(t, s.SaveFeedback(ctx, &model.Feedback{RecipeID: rec.ID, Rating: r}))
	}

	summary, err := s.Summary(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Counts[model.RatingLoved])
	assert.Equal(t, 1, summary.Counts[model.RatingOkay])
	assert.Zero(t, summary.Counts[model.RatingNotForMe])

	err = s.SaveFeedback(ctx, &model.Feedback{RecipeID: uuid.New(), Rating: model.RatingOkay})
	assert.ErrorIs(t, err, ErrNotFound)
}
