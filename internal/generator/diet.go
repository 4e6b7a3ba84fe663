package generator

import (
	"slices"
	"strings"

	"github.com/pageza/chefmaster/backend/internal/kb"
)

var (
	fleshProteins = []string{"chicken", "beef", "pork", "lamb", "fish"}
	dairyTokens   = []string{"cheese", "yogurt", "sour cream"}
)

// FleshProteins returns the fixed animal-flesh protein set.
func FleshProteins() []string { return slices.Clone(fleshProteins) }

// DairyTokens returns the tokens that mark a signature item as dairy-derived.
func DairyTokens() []string { return slices.Clone(dairyTokens) }

// IsFlesh reports whether protein is in the fixed flesh set or in tagged.
func IsFlesh(protein string, tagged []string) bool {
	p := strings.ToLower(strings.TrimSpace(protein))
	if slices.Contains(fleshProteins, p) {
		return true
	}
	for _, t := range tagged {
		if strings.EqualFold(strings.TrimSpace(t), p) {
			return true
		}
	}
	return false
}

// IsDairy reports whether item contains any dairy-derived token.
func IsDairy(item string) bool {
	s := strings.ToLower(item)
	for _, tok := range dairyTokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// pools are the per-call working collections after dietary filtering.
// They never alias the profile's slices.
type pools struct {
	proteins  []string
	signature []string
	liquids   []string
}

func filterPools(p kb.CuisineProfile, d Dietary) pools {
	out := pools{
		proteins:  slices.Clone(p.Proteins),
		signature: slices.Clone(p.Signature),
		liquids:   []string{"broth", "cream", "coconut milk"},
	}
	if d.ExcludesFlesh() {
		out.proteins = slices.DeleteFunc(out.proteins, func(s string) bool {
			return IsFlesh(s, p.FleshProteins)
		})
		out.liquids = []string{"vegetable broth", "cream", "coconut milk"}
	}
	if d.ExcludesDairy() {
		out.signature = slices.DeleteFunc(out.signature, IsDairy)
		out.liquids = slices.DeleteFunc(out.liquids, func(s string) bool { return s == "cream" })
	}
	return out
}
