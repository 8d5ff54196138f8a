package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r       *rand.Rand
	scratch []int
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Sample appends k distinct elements drawn uniformly without replacement from
// src to dst. When k >= len(src) every element of src is appended. src is
// left untouched.
func (r *RNG) Sample(dst, src []int, k int) []int {
	if k <= 0 || len(src) == 0 {
		return dst
	}
	if k >= len(src) {
		return append(dst, src...)
	}
	r.scratch = append(r.scratch[:0], src...)
	s := r.scratch
	for i := 0; i < k; i++ {
		j := i + r.r.IntN(len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
	return append(dst, s[:k]...)
}
