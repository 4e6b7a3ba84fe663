package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// Source produces uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic source for seed. The result is not safe
// for concurrent use; wrap it with NewLockedSource when sharing.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// LockedSource serializes access to an underlying Source.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

// choice draws one element of pool uniformly.
func choice(src Source, pool []string, what string) (string, error) {
	if len(pool) == 0 {
		return "", fmt.Errorf("%w: no %s to choose from", ErrInsufficientIngredients, what)
	}
	return pool[src.Intn(len(pool))], nil
}

// sample draws k distinct values of pool without replacement. pool is not modified.
func sample(src Source, pool []string, k int, what string) ([]string, error) {
	cp := distinct(pool)
	if k > len(cp) {
		return nil, fmt.Errorf("%w: need %d %s, have %d", ErrInsufficientIngredients, k, what, len(cp))
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}
	return cp[:k:k], nil
}

// distinct returns a copy of pool keeping the first of any entries that match
// case-insensitively.
func distinct(pool []string) []string {
	out := make([]string, 0, len(pool))
	seen := make(map[string]bool, len(pool))
	for _, item := range pool {
		key := strings.ToLower(strings.TrimSpace(item))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// between draws an integer in [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
