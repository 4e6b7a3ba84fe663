package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is the reaction a cook leaves on a generated recipe
type Rating string

const (
	RatingLoved    Rating = "loved"
	RatingOkay     Rating = "okay"
	RatingNotForMe Rating = "not_for_me"
)

// ParseRating validates a rating string
func ParseRating(s string) (Rating, error) {
	switch r := Rating(strings.ToLower(strings.TrimSpace(s))); r {
	case RatingLoved, RatingOkay, RatingNotForMe:
		return r, nil
	}
	return "", fmt.Errorf("invalid rating %q (want loved, okay or not_for_me)", s)
}

type Feedback struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	RecipeID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Rating    Rating         `gorm:"size:20;not null" json:"rating"`
	Comment   string         `gorm:"type:text" json:"comment,omitempty"`
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// FeedbackSummary counts ratings for a single recipe
type FeedbackSummary struct {
	RecipeID uuid.UUID      `json:"recipe_id"`
	Counts   map[Rating]int `json:"counts"`
	Total    int            `json:"total"`
}
