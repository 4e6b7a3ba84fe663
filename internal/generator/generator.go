// Package generator synthesizes recipes from a cuisine knowledge base.
//
// Generation is a pure function of the knowledge base, the caller's facets
// and an injected random Source; the same seed and facets always yield the
// same Recipe.
package generator

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageza/chefmaster/backend/internal/kb"
)

var (
	// ErrUnknownCuisine is returned when the requested cuisine is not registered.
	ErrUnknownCuisine = kb.ErrUnknownCuisine
	// ErrInsufficientIngredients is returned when a pool is too small for a draw.
	ErrInsufficientIngredients = errors.New("insufficient ingredients")
	// ErrInvalidFacet is returned for facet values outside their closed set.
	ErrInvalidFacet = errors.New("invalid facet")
)

// Recipe is the result of one generation call.
type Recipe struct {
	Name         string   `json:"name" yaml:"name"`
	Cuisine      string   `json:"cuisine" yaml:"cuisine"`
	MealType     string   `json:"meal_type" yaml:"meal_type"`
	Dietary      string   `json:"dietary" yaml:"dietary"`
	Difficulty   string   `json:"difficulty" yaml:"difficulty"`
	CookTime     string   `json:"cook_time" yaml:"cook_time"`
	Ingredients  []string `json:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	ImageURL     string   `json:"image_url" yaml:"image_url"`
}

// Generator binds a knowledge base for repeated generation calls.
type Generator struct {
	base *kb.Base
}

// New creates a Generator over base.
func New(base *kb.Base) *Generator {
	return &Generator{base: base}
}

// Base returns the knowledge base the generator draws from.
func (g *Generator) Base() *kb.Base {
	return g.base
}

// Generate produces one recipe. See the package-level Generate.
func (g *Generator) Generate(f Facets, src Source) (*Recipe, error) {
	return Generate(g.base, f, src)
}

// Generate resolves unset facets, filters the chosen cuisine's pools by the
// dietary restriction, assembles ingredients sized by difficulty and renders
// the name and instructions. The shared profile is never modified.
func Generate(base *kb.Base, f Facets, src Source) (*Recipe, error) {
	if err := validateFacets(f); err != nil {
		return nil, err
	}

	cuisine, err := resolveCuisine(base, f.Cuisine, src)
	if err != nil {
		return nil, err
	}
	profile, err := base.ProfileFor(cuisine)
	if err != nil {
		return nil, err
	}

	difficulty := f.Difficulty.Resolve()
	tier := Tier(difficulty)

	wp := filterPools(profile, f.Dietary)
	if err := checkPools(profile, wp, tier, f.Dietary); err != nil {
		return nil, err
	}

	a, err := assemble(src, profile, wp, tier)
	if err != nil {
		return nil, err
	}

	method, err := choice(src, profile.CookingMethods, "cooking methods")
	if err != nil {
		return nil, err
	}
	title := cases.Title(language.English)
	name := fmt.Sprintf("%s %s %s", title.String(method), a.protein, title.String(profile.ID))

	steps, err := renderInstructions(src, difficulty, a, profile, wp)
	if err != nil {
		return nil, err
	}

	cookTime := tier.CookTime.format(between(src, tier.CookTime.Min, tier.CookTime.Max))

	return &Recipe{
		Name:         name,
		Cuisine:      title.String(profile.ID),
		MealType:     f.MealType.String(),
		Dietary:      f.Dietary.String(),
		Difficulty:   string(difficulty),
		CookTime:     cookTime,
		Ingredients:  a.ingredients(),
		Instructions: steps,
		ImageURL:     profile.Image,
	}, nil
}

func validateFacets(f Facets) error {
	if f.Dietary != DietaryNone && !slices.Contains(Dietaries(), f.Dietary) {
		return fmt.Errorf("%w: dietary restriction %q", ErrInvalidFacet, string(f.Dietary))
	}
	if f.Difficulty != DifficultyUnset && !slices.Contains(Difficulties(), f.Difficulty) {
		return fmt.Errorf("%w: difficulty %q", ErrInvalidFacet, string(f.Difficulty))
	}
	if f.MealType != MealTypeAny && !slices.Contains(MealTypes(), f.MealType) {
		return fmt.Errorf("%w: meal type %q", ErrInvalidFacet, string(f.MealType))
	}
	return nil
}

func resolveCuisine(base *kb.Base, requested string, src Source) (string, error) {
	if requested != "" {
		if !base.Has(requested) {
			return "", fmt.Errorf("%w: %q", ErrUnknownCuisine, requested)
		}
		return requested, nil
	}
	return choice(src, base.CuisineIDs(), "cuisines")
}

// checkPools fails before any sampling when a filtered pool cannot satisfy the tier.
func checkPools(p kb.CuisineProfile, wp pools, tier TierSpec, d Dietary) error {
	if len(wp.proteins) == 0 {
		return fmt.Errorf("%w: cuisine %q has no proteins compatible with %s", ErrInsufficientIngredients, p.ID, d)
	}
	if len(wp.signature) == 0 {
		return fmt.Errorf("%w: cuisine %q has no signature items compatible with %s", ErrInsufficientIngredients, p.ID, d)
	}
	if spices := len(distinct(p.Spices)); spices < tier.SpiceCount {
		return fmt.Errorf("%w: cuisine %q has %d distinct spices, %s needs %d",
			ErrInsufficientIngredients, p.ID, spices, tier.Difficulty, tier.SpiceCount)
	}
	return nil
}

func assemble(src Source, p kb.CuisineProfile, wp pools, tier TierSpec) (assembly, error) {
	var a assembly
	var err error

	if a.protein, err = choice(src, wp.proteins, "proteins"); err != nil {
		return a, err
	}
	if a.carb, err = choice(src, p.Carbs, "carbs"); err != nil {
		return a, err
	}
	if a.vegetables, err = sample(src, p.Vegetables, min(2, len(distinct(p.Vegetables))), "vegetables"); err != nil {
		return a, err
	}
	if a.spices, err = sample(src, p.Spices, tier.SpiceCount, "spices"); err != nil {
		return a, err
	}
	if a.signature, err = choice(src, wp.signature, "signature items"); err != nil {
		return a, err
	}
	return a, nil
}
