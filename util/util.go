// Package util provides small, dependency-free helpers shared across the
// repository — currently a seeded RNG used to synthesize relations for
// property-based testing.
package util

import (
	"fmt"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// RandomTable generates a synthetic CSV-shaped relation: rows rows by cols
// columns, each cell a string drawn from a domain of domainSize distinct
// values per column. A small domainSize relative to rows forces repeated
// values, so more row pairs agree on a column set and fewer functional
// dependencies with small LHS hold; a large domainSize approaches an
// all-distinct relation in which every single column is a key.
func (r *RNG) RandomTable(rows, cols, domainSize int) [][]string {
	if domainSize < 1 {
		domainSize = 1
	}
	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, cols)
		for j := range out[i] {
			out[i][j] = fmt.Sprintf("v%d", r.rand.Intn(domainSize))
		}
	}
	return out
}

// FunctionalTable generates a relation over cols columns where column 0
// is a key drawn from a domain of keyDomainSize distinct values, and every
// other column's value is a pure function of the key — so every
// key -> other_column dependency holds exactly. Useful for exercising the
// miner against a relation with a known, non-trivial minimal cover.
func (r *RNG) FunctionalTable(rows, cols, keyDomainSize int) [][]string {
	if keyDomainSize < 1 {
		keyDomainSize = 1
	}
	out := make([][]string, rows)
	for i := range out {
		out[i] = make([]string, cols)
		key := r.rand.Intn(keyDomainSize)
		out[i][0] = fmt.Sprintf("k%d", key)
		for j := 1; j < cols; j++ {
			out[i][j] = fmt.Sprintf("c%d-%d", j, key)
		}
	}
	return out
}
