package generator

import (
	"fmt"
	"strings"
)

// Dietary is a dietary restriction facet. The zero value means no restriction.
type Dietary string

const (
	DietaryNone       Dietary = ""
	DietaryVegetarian Dietary = "vegetarian"
	DietaryVegan      Dietary = "vegan"
	DietaryGlutenFree Dietary = "gluten-free"
	DietaryDairyFree  Dietary = "dairy-free"
	DietaryNutFree    Dietary = "nut-free"
	DietaryLowCarb    Dietary = "low-carb"
)

// Dietaries lists the selectable dietary restrictions, excluding the unset value.
func Dietaries() []Dietary {
	return []Dietary{
		DietaryVegetarian,
		DietaryVegan,
		DietaryGlutenFree,
		DietaryDairyFree,
		DietaryNutFree,
		DietaryLowCarb,
	}
}

// String renders the facet as it appears on a Recipe, "None" when unset.
func (d Dietary) String() string {
	if d == DietaryNone {
		return "None"
	}
	return string(d)
}

// ExcludesFlesh reports whether the restriction removes flesh proteins.
func (d Dietary) ExcludesFlesh() bool {
	return d == DietaryVegetarian || d == DietaryVegan
}

// ExcludesDairy reports whether the restriction removes dairy-derived signature items.
func (d Dietary) ExcludesDairy() bool {
	return d == DietaryVegan
}

// ParseDietary maps user input to a Dietary. "", "none" and "any" yield DietaryNone.
func ParseDietary(s string) (Dietary, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "none", "any":
		return DietaryNone, nil
	}
	for _, d := range Dietaries() {
		if string(d) == v {
			return d, nil
		}
	}
	return DietaryNone, fmt.Errorf("%w: dietary restriction %q", ErrInvalidFacet, s)
}

// Difficulty is the difficulty tier facet. The zero value resolves to medium.
type Difficulty string

const (
	DifficultyUnset  Difficulty = ""
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the concrete tiers in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Resolve returns the concrete tier, defaulting to medium.
func (d Difficulty) Resolve() Difficulty {
	if d == DifficultyUnset {
		return DifficultyMedium
	}
	return d
}

func (d Difficulty) String() string {
	return string(d.Resolve())
}

// ParseDifficulty maps user input to a Difficulty. "" and "any" yield DifficultyUnset.
func ParseDifficulty(s string) (Difficulty, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "any":
		return DifficultyUnset, nil
	}
	for _, d := range Difficulties() {
		if string(d) == v {
			return d, nil
		}
	}
	return DifficultyUnset, fmt.Errorf("%w: difficulty %q", ErrInvalidFacet, s)
}

// MealType is echoed on the generated recipe and does not affect generation.
type MealType string

const (
	MealTypeAny       MealType = ""
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeDessert   MealType = "dessert"
	MealTypeSnack     MealType = "snack"
)

func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeDessert, MealTypeSnack}
}

func (m MealType) String() string {
	if m == MealTypeAny {
		return "Any"
	}
	return string(m)
}

// ParseMealType maps user input to a MealType. "" and "any" yield MealTypeAny.
func ParseMealType(s string) (MealType, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "any":
		return MealTypeAny, nil
	}
	for _, m := range MealTypes() {
		if string(m) == v {
			return m, nil
		}
	}
	return MealTypeAny, fmt.Errorf("%w: meal type %q", ErrInvalidFacet, s)
}

// Facets is a caller's selection. Every field is optional.
type Facets struct {
	Cuisine    string
	MealType   MealType
	Dietary    Dietary
	Difficulty Difficulty
}

// ParseFacets validates raw facet strings, treating "Any"/"None" as unset.
func ParseFacets(cuisine, mealType, dietary, difficulty string) (Facets, error) {
	var f Facets
	var err error

	c := strings.TrimSpace(cuisine)
	if !strings.EqualFold(c, "any") {
		f.Cuisine = c
	}
	if f.MealType, err = ParseMealType(mealType); err != nil {
		return Facets{}, err
	}
	if f.Dietary, err = ParseDietary(dietary); err != nil {
		return Facets{}, err
	}
	if f.Difficulty, err = ParseDifficulty(difficulty); err != nil {
		return Facets{}, err
	}
	return f, nil
}
