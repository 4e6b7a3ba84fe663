package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/chefmaster/backend/internal/model"
)

// RunMigrations creates or updates the recipe history schema
func RunMigrations(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		// Install pgvector extension for similarity search
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return fmt.Errorf("failed to install pgvector extension: %w", err)
		}
	}

	if err := db.AutoMigrate(&model.GeneratedRecipe{}, &model.Feedback{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Printf("Applied %s schema migrations", db.Dialector.Name())
	return nil
}
