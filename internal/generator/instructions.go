package generator

import (
	"fmt"
	"strings"

	"github.com/pageza/chefmaster/backend/internal/kb"
)

const prepStep = "Prepare all ingredients by cleaning and chopping as needed."

// assembly is the ingredient set chosen for one recipe.
type assembly struct {
	protein    string
	carb       string
	vegetables []string
	spices     []string
	signature  string
}

func (a assembly) ingredients() []string {
	out := make([]string, 0, 3+len(a.vegetables)+len(a.spices))
	out = append(out, a.protein, a.carb)
	out = append(out, a.vegetables...)
	out = append(out, a.spices...)
	out = append(out, a.signature)
	return out
}

// renderInstructions builds the ordered steps for difficulty. Sub-choices are
// drawn fresh from src and may repeat values already used in the assembly.
func renderInstructions(src Source, d Difficulty, a assembly, p kb.CuisineProfile, wp pools) ([]string, error) {
	method, err := choice(src, p.CookingMethods, "cooking methods")
	if err != nil {
		return nil, err
	}

	steps := []string{prepStep}

	switch d {
	case DifficultyEasy:
		steps = append(steps,
			fmt.Sprintf("Heat a pan and %s the %s with %s for flavor.", method, a.protein, a.spices[0]),
			fmt.Sprintf("Cook the %s according to package instructions.", a.carb),
			fmt.Sprintf("Combine all ingredients and cook for %d minutes.", between(src, 5, 15)),
			fmt.Sprintf("Garnish with %s and serve.", a.signature),
		)

	case DifficultyMedium:
		marinade, err := sample(src, p.Spices, 2, "spices")
		if err != nil {
			return nil, err
		}
		steps = append(steps,
			fmt.Sprintf("Marinate the %s with %s for %d minutes.", a.protein, strings.Join(marinade, ", "), between(src, 15, 30)),
			fmt.Sprintf("In a large pan, %s the %s until golden brown.", method, a.protein),
			fmt.Sprintf("Add %s and cook for %d minutes.", strings.Join(a.vegetables, ", "), between(src, 5, 10)),
			fmt.Sprintf("Meanwhile, prepare the %s separately.", a.carb),
			fmt.Sprintf("Combine all components and simmer for %d minutes.", between(src, 5, 10)),
			fmt.Sprintf("Adjust seasoning and garnish with %s before serving.", a.signature),
		)

	case DifficultyHard:
		marinade, err := sample(src, p.Spices, 3, "spices")
		if err != nil {
			return nil, err
		}
		marinateFor := between(src, 30, 120)
		caramelized, err := choice(src, p.Vegetables, "vegetables")
		if err != nil {
			return nil, err
		}
		caramelSpice, err := choice(src, p.Spices, "spices")
		if err != nil {
			return nil, err
		}
		sauceBase, err := choice(src, wp.signature, "signature items")
		if err != nil {
			return nil, err
		}
		sauceSpice, err := choice(src, p.Spices, "spices")
		if err != nil {
			return nil, err
		}
		liquid, err := choice(src, wp.liquids, "sauce liquids")
		if err != nil {
			return nil, err
		}
		steps = append(steps,
			fmt.Sprintf("Prepare a marinade with %s and coat the %s. Let sit for %d minutes.", strings.Join(marinade, ", "), a.protein, marinateFor),
			fmt.Sprintf("Working in batches, %s the %s to ensure even cooking.", method, a.protein),
			fmt.Sprintf("In a separate pan, caramelize the %s with %s.", caramelized, caramelSpice),
			fmt.Sprintf("Prepare a sauce by combining %s, %s, and %s.", sauceBase, sauceSpice, liquid),
			fmt.Sprintf("Cook the %s using a specialized technique (like pilaf for rice or al dente for pasta).", a.carb),
			fmt.Sprintf("Layer all components in a serving dish and bake for %d minutes for flavors to meld.", between(src, 10, 20)),
			fmt.Sprintf("Finish with a garnish of %s and serve with accompaniments.", a.signature),
		)

	default:
		return nil, fmt.Errorf("%w: difficulty %q", ErrInvalidFacet, string(d))
	}

	return steps, nil
}
