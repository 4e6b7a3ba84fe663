package kb

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrUnknownCuisine is returned when a cuisine id is not registered in the base
var ErrUnknownCuisine = errors.New("unknown cuisine")

// CuisineProfile holds the categorized ingredient pools for a single cuisine
type CuisineProfile struct {
	ID             string   `yaml:"id" json:"id"`
	Proteins       []string `yaml:"proteins" json:"proteins"`
	Carbs          []string `yaml:"carbs" json:"carbs"`
	Vegetables     []string `yaml:"vegetables" json:"vegetables"`
	Spices         []string `yaml:"spices" json:"spices"`
	CookingMethods []string `yaml:"cooking_methods" json:"cooking_methods"`
	Signature      []string `yaml:"signature" json:"signature"`
	Image          string   `yaml:"image" json:"image"`

	// FleshProteins tags cuisine-specific proteins that vegetarian and vegan
	// filtering treat the same as the fixed flesh set. May be empty.
	FleshProteins []string `yaml:"flesh_proteins,omitempty" json:"flesh_proteins,omitempty"`
}

func (p CuisineProfile) clone() CuisineProfile {
	return CuisineProfile{
		ID:             p.ID,
		Proteins:       slices.Clone(p.Proteins),
		Carbs:          slices.Clone(p.Carbs),
		Vegetables:     slices.Clone(p.Vegetables),
		Spices:         slices.Clone(p.Spices),
		CookingMethods: slices.Clone(p.CookingMethods),
		Signature:      slices.Clone(p.Signature),
		Image:          p.Image,
		FleshProteins:  slices.Clone(p.FleshProteins),
	}
}

func (p CuisineProfile) validate() error {
	pools := []struct {
		name  string
		items []string
	}{
		{"proteins", p.Proteins},
		{"carbs", p.Carbs},
		{"vegetables", p.Vegetables},
		{"spices", p.Spices},
		{"cooking_methods", p.CookingMethods},
		{"signature", p.Signature},
	}
	for _, pool := range pools {
		if len(pool.items) == 0 {
			return fmt.Errorf("cuisine %q: %s pool is empty", p.ID, pool.name)
		}
		seen := make(map[string]bool, len(pool.items))
		for _, item := range pool.items {
			key := strings.ToLower(strings.TrimSpace(item))
			if key == "" {
				return fmt.Errorf("cuisine %q: %s pool contains a blank entry", p.ID, pool.name)
			}
			if seen[key] {
				return fmt.Errorf("cuisine %q: %s pool contains duplicate entry %q", p.ID, pool.name, item)
			}
			seen[key] = true
		}
	}
	return nil
}

// Base is a read-only mapping from cuisine id to profile. It is never
// mutated after New returns, so any number of goroutines may read it.
type Base struct {
	profiles map[string]CuisineProfile
	ids      []string
}

// New validates the given profiles and builds a Base from defensive copies.
func New(profiles ...CuisineProfile) (*Base, error) {
	if len(profiles) == 0 {
		return nil, errors.New("knowledge base requires at least one cuisine")
	}

	b := &Base{profiles: make(map[string]CuisineProfile, len(profiles))}
	for _, p := range profiles {
		id := normalize(p.ID)
		if id == "" {
			return nil, errors.New("cuisine profile is missing an id")
		}
		if _, dup := b.profiles[id]; dup {
			return nil, fmt.Errorf("duplicate cuisine %q", id)
		}
		cp := p.clone()
		cp.ID = id
		if err := cp.validate(); err != nil {
			return nil, err
		}
		b.profiles[id] = cp
		b.ids = append(b.ids, id)
	}
	sort.Strings(b.ids)

	return b, nil
}

// MustNew is like New but panics on invalid input. Intended for static catalogs.
func MustNew(profiles ...CuisineProfile) *Base {
	b, err := New(profiles...)
	if err != nil {
		panic(err)
	}
	return b
}

// ProfileFor returns a copy of the profile registered under id.
func (b *Base) ProfileFor(id string) (CuisineProfile, error) {
	p, ok := b.profiles[normalize(id)]
	if !ok {
		return CuisineProfile{}, fmt.Errorf("%w: %q", ErrUnknownCuisine, id)
	}
	return p.clone(), nil
}

// Has reports whether id is a registered cuisine.
func (b *Base) Has(id string) bool {
	_, ok := b.profiles[normalize(id)]
	return ok
}

// CuisineIDs returns the registered cuisine ids in sorted order.
func (b *Base) CuisineIDs() []string {
	return slices.Clone(b.ids)
}

// Len returns the number of registered cuisines.
func (b *Base) Len() int {
	return len(b.ids)
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
