package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource replays values modulo n.
type fixedSource struct {
	vals []int
	pos  int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.pos%len(f.vals)]
	f.pos++
	return v % n
}

func TestChoice(t *testing.T) {
	got, err := choice(&fixedSource{vals: []int{2}}, []string{"a", "b", "c"}, "letters")
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	_, err = choice(&fixedSource{vals: []int{0}}, nil, "letters")
	assert.True(t, errors.Is(err, ErrInsufficientIngredients))
}

func TestSample(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	got, err := sample(&fixedSource{vals: []int{3, 0}}, pool, 2, "letters")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b"}, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pool)

	empty, err := sample(&fixedSource{vals: []int{0}}, pool, 0, "letters")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = sample(&fixedSource{vals: []int{0}}, pool, 5, "letters")
	assert.True(t, errors.Is(err, ErrInsufficientIngredients))
}

func TestSampleIsDistinct(t *testing.T) {
	src := NewSource(5)
	pool := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 50; i++ {
		got, err := sample(src, pool, 5, "letters")
		require.NoError(t, err)
		assert.ElementsMatch(t, pool, got)
	}
}

func TestSampleDrawsDistinctValues(t *testing.T) {
	pool := []string{"salt", "salt", "Salt", "pepper"}

	_, err := sample(NewSource(1), pool, 3, "spices")
	assert.True(t, errors.Is(err, ErrInsufficientIngredients))

	for seed := int64(0); seed < 20; seed++ {
		got, err := sample(NewSource(seed), pool, 2, "spices")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"salt", "pepper"}, got)
	}
}

func TestDistinct(t *testing.T) {
	pool := []string{"onions", "Onions ", "leeks", "onions"}
	assert.Equal(t, []string{"onions", "leeks"}, distinct(pool))
	assert.Len(t, pool, 4)
}

func TestBetween(t *testing.T) {
	src := NewSource(11)
	for i := 0; i < 200; i++ {
		v := between(src, 5, 15)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 15)
	}
	assert.Equal(t, 3, between(&fixedSource{vals: []int{0}}, 3, 3))
}
