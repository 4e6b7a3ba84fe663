package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/pageza/chefmaster/backend/internal/generator"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// GeneratedRecipe is a generated recipe persisted in the history
type GeneratedRecipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Cuisine      string           `gorm:"size:50;index" json:"cuisine"`
	MealType     string           `gorm:"size:20" json:"meal_type"`
	Dietary      string           `gorm:"size:20" json:"dietary"`
	Difficulty   string           `gorm:"size:10;index" json:"difficulty"`
	CookTime     string           `gorm:"size:20" json:"cook_time"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	ImageURL     string           `gorm:"size:255" json:"image_url"`
	Seed         int64            `json:"seed"`
	Embedding    pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

// TableName returns the table name for the GeneratedRecipe model
func (GeneratedRecipe) TableName() string {
	return "generated_recipes"
}

// BeforeCreate assigns an id when the caller did not
func (r *GeneratedRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// FromRecipe converts a generator result into a persistable record
func FromRecipe(r *generator.Recipe, seed int64) *GeneratedRecipe {
	return &GeneratedRecipe{
		ID:           uuid.New(),
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		MealType:     r.MealType,
		Dietary:      r.Dietary,
		Difficulty:   r.Difficulty,
		CookTime:     r.CookTime,
		Ingredients:  JSONBStringArray(r.Ingredients),
		Instructions: JSONBStringArray(r.Instructions),
		ImageURL:     r.ImageURL,
		Seed:         seed,
		Embedding:    Embed(r.Name + " " + r.Cuisine),
	}
}

// Recipe converts the record back into a generator result
func (r *GeneratedRecipe) Recipe() *generator.Recipe {
	return &generator.Recipe{
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		MealType:     r.MealType,
		Dietary:      r.Dietary,
		Difficulty:   r.Difficulty,
		CookTime:     r.CookTime,
		Ingredients:  []string(r.Ingredients),
		Instructions: []string(r.Instructions),
		ImageURL:     r.ImageURL,
	}
}
