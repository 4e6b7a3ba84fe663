package kb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile(id string) CuisineProfile {
	return CuisineProfile{
		ID:             id,
		Proteins:       []string{"tofu"},
		Carbs:          []string{"rice"},
		Vegetables:     []string{"peas", "carrots"},
		Spices:         []string{"salt", "pepper", "cumin"},
		CookingMethods: []string{"steam"},
		Signature:      []string{"lime"},
		Image:          "http://example.com/" + id + ".jpg",
	}
}

func TestDefaultCatalog(t *testing.T) {
	b := Default()
	assert.Equal(t, []string{"indian", "italian", "japanese", "mexican"}, b.CuisineIDs())
	assert.Equal(t, 4, b.Len())

	p, err := b.ProfileFor("italian")
	require.NoError(t, err)
	assert.Equal(t, "italian", p.ID)
	assert.Contains(t, p.Signature, "parmesan cheese")
	assert.NotEmpty(t, p.Image)
}

func TestProfileForIsCaseInsensitive(t *testing.T) {
	p, err := Default().ProfileFor("  Mexican ")
	require.NoError(t, err)
	assert.Equal(t, "mexican", p.ID)
	assert.True(t, Default().Has("JAPANESE"))
}

func TestProfileForUnknown(t *testing.T) {
	_, err := Default().ProfileFor("martian")
	assert.True(t, errors.Is(err, ErrUnknownCuisine))
	assert.False(t, Default().Has("martian"))
}

func TestProfileForReturnsCopy(t *testing.T) {
	b := Default()
	p, err := b.ProfileFor("mexican")
	require.NoError(t, err)
	p.Signature[0] = "mutated"
	p.Signature = p.Signature[:1]

	again, err := b.ProfileFor("mexican")
	require.NoError(t, err)
	assert.Equal(t, "lime", again.Signature[0])
	assert.Len(t, again.Signature, 5)
}

func TestCuisineIDsReturnsCopy(t *testing.T) {
	b := Default()
	ids := b.CuisineIDs()
	ids[0] = "mutated"
	assert.Equal(t, "indian", b.CuisineIDs()[0])
}

func TestNewCopiesInput(t *testing.T) {
	p := testProfile("test")
	b, err := New(p)
	require.NoError(t, err)

	p.Proteins[0] = "beef"
	got, err := b.ProfileFor("test")
	require.NoError(t, err)
	assert.Equal(t, []string{"tofu"}, got.Proteins)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *CuisineProfile)
		wantErr string
	}{
		{"empty proteins", func(p *CuisineProfile) { p.Proteins = nil }, "proteins pool is empty"},
		{"empty carbs", func(p *CuisineProfile) { p.Carbs = nil }, "carbs pool is empty"},
		{"empty vegetables", func(p *CuisineProfile) { p.Vegetables = []string{} }, "vegetables pool is empty"},
		{"empty spices", func(p *CuisineProfile) { p.Spices = nil }, "spices pool is empty"},
		{"empty methods", func(p *CuisineProfile) { p.CookingMethods = nil }, "cooking_methods pool is empty"},
		{"empty signature", func(p *CuisineProfile) { p.Signature = nil }, "signature pool is empty"},
		{"blank entry", func(p *CuisineProfile) { p.Carbs = []string{"rice", " "} }, "blank entry"},
		{"missing id", func(p *CuisineProfile) { p.ID = "" }, "missing an id"},
		{"duplicate vegetable", func(p *CuisineProfile) { p.Vegetables = []string{"onions", "onions"} }, "vegetables pool contains duplicate entry"},
		{"duplicate spice differing in case", func(p *CuisineProfile) { p.Spices = []string{"salt", "pepper", " Salt"} }, "spices pool contains duplicate entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile("test")
			tt.mutate(&p)
			_, err := New(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsDuplicatesAndEmpty(t *testing.T) {
	_, err := New(testProfile("thai"), testProfile("Thai"))
	assert.ErrorContains(t, err, "duplicate cuisine")

	_, err = New()
	assert.Error(t, err)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew() })
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
cuisines:
  - id: thai
    proteins: [tofu, shrimp]
    carbs: [jasmine rice]
    vegetables: [bok choy, bean sprouts]
    spices: [lemongrass, galangal]
    cooking_methods: [stir-fry]
    signature: [fish sauce]
    image: http://example.com/thai.jpg
    flesh_proteins: [shrimp]
`)
	b, err := Parse(data)
	require.NoError(t, err)

	p, err := b.ProfileFor("thai")
	require.NoError(t, err)
	assert.Equal(t, []string{"tofu", "shrimp"}, p.Proteins)
	assert.Equal(t, []string{"shrimp"}, p.FleshProteins)
	assert.Equal(t, "http://example.com/thai.jpg", p.Image)
}

func TestParseCatalogInvalid(t *testing.T) {
	_, err := Parse([]byte("cuisines:\n  - id: thai\n    proteins: [tofu]\n"))
	assert.ErrorContains(t, err, "invalid catalog")

	_, err = Parse([]byte("cuisines: ["))
	assert.ErrorContains(t, err, "failed to parse catalog")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cuisines:
  - id: greek
    proteins: [lamb, chickpeas]
    carbs: [pita]
    vegetables: [cucumber, tomatoes]
    spices: [oregano, mint]
    cooking_methods: [grill]
    signature: [feta cheese, olive oil]
    image: http://example.com/greek.jpg
`), 0o600))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"greek"}, b.CuisineIDs())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read catalog")
}

func TestParseRejectsDuplicatePoolEntries(t *testing.T) {
	_, err := Parse([]byte(`cuisines:
  - id: diner
    proteins: [tofu]
    carbs: [rice]
    vegetables: [onions, onions]
    spices: [salt, salt, salt]
    cooking_methods: [fry]
    signature: [lime]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate entry")
}
