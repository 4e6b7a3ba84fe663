package generator

import "fmt"

// CookTimeRange is an inclusive duration range in a single unit.
type CookTimeRange struct {
	Min  int
	Max  int
	Unit string
}

// Contains reports whether value falls within the range.
func (r CookTimeRange) Contains(value int) bool {
	return value >= r.Min && value <= r.Max
}

func (r CookTimeRange) format(value int) string {
	unit := r.Unit
	if value == 1 && unit == "hours" {
		unit = "hour"
	}
	return fmt.Sprintf("%d %s", value, unit)
}

// TierSpec sizes a recipe for one difficulty tier.
type TierSpec struct {
	Difficulty Difficulty
	SpiceCount int
	// IngredientHint is informational only and never drives sampling.
	IngredientHint [2]int
	CookTime       CookTimeRange
	Steps          int
}

var tiers = map[Difficulty]TierSpec{
	DifficultyEasy: {
		Difficulty:     DifficultyEasy,
		SpiceCount:     1,
		IngredientHint: [2]int{4, 6},
		CookTime:       CookTimeRange{Min: 10, Max: 30, Unit: "minutes"},
		Steps:          5,
	},
	DifficultyMedium: {
		Difficulty:     DifficultyMedium,
		SpiceCount:     2,
		IngredientHint: [2]int{6, 8},
		CookTime:       CookTimeRange{Min: 30, Max: 60, Unit: "minutes"},
		Steps:          7,
	},
	DifficultyHard: {
		Difficulty:     DifficultyHard,
		SpiceCount:     3,
		IngredientHint: [2]int{8, 10},
		CookTime:       CookTimeRange{Min: 1, Max: 3, Unit: "hours"},
		Steps:          8,
	},
}

// Tier returns the sizing for d, resolving the unset tier to medium.
func Tier(d Difficulty) TierSpec {
	return tiers[d.Resolve()]
}

// DifficultyTiers returns the sizing table in ascending difficulty.
func DifficultyTiers() []TierSpec {
	out := make([]TierSpec, 0, len(tiers))
	for _, d := range Difficulties() {
		out = append(out, tiers[d])
	}
	return out
}
