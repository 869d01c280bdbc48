package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness source consumed by the simulation
// *math/rand.Rand satisfies it; tests inject a seeded instance
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source, seed 0 selects a time-based seed
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
