package main

import (
	"context"
	"errors"
	"log"

	"github.com/pageza/chefmaster/backend/config"
	"github.com/pageza/chefmaster/backend/internal/database"
	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/kb"
	"github.com/pageza/chefmaster/backend/internal/model"
	"github.com/pageza/chefmaster/backend/internal/store"
)

const (
	numRecipes = 25 // Number of recipes to generate
	batchSize  = 5  // Number of recipes to generate in each batch
)

// seedDietaries cycles through the restrictions so the history covers them
var seedDietaries = append([]generator.Dietary{generator.DietaryNone}, generator.Dietaries()...)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	base := kb.Default()
	if cfg.CatalogPath != "" {
		if base, err = kb.LoadFile(cfg.CatalogPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	gen := generator.New(base)
	recipes := store.NewRecipeStore(db)
	ctx := context.Background()
	cuisines := base.CuisineIDs()
	difficulties := generator.Difficulties()

	saved := 0
	for i := 0; i < numRecipes; i += batchSize {
		batchEnd := min(i+batchSize, numRecipes)
		log.Printf("Generating batch of recipes %d-%d", i+1, batchEnd)

		for j := i; j < batchEnd; j++ {
			facets := generator.Facets{
				Cuisine:    cuisines[j%len(cuisines)],
				Difficulty: difficulties[j%len(difficulties)],
				Dietary:    seedDietaries[j%len(seedDietaries)],
			}
			seed := int64(j + 1)

			recipe, err := gen.Generate(facets, generator.NewSource(seed))
			if errors.Is(err, generator.ErrInsufficientIngredients) {
				log.Printf("Skipping %s/%s/%s: %v", facets.Cuisine, facets.Difficulty, facets.Dietary, err)
				continue
			}
			if err != nil {
				log.Fatalf("Failed to generate recipe: %v", err)
			}

			if err := recipes.Create(ctx, model.FromRecipe(recipe, seed)); err != nil {
				log.Printf("Failed to save recipe %q: %v", recipe.Name, err)
				continue
			}
			saved++
			log.Printf("Saved %q", recipe.Name)
		}
	}

	log.Printf("Seeded %d recipes", saved)
}
