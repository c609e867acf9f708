package core

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by interaction logic
// Injected so tests can seed or script the sequence
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
}

// NewRand returns a deterministic source for the given seed
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeSeededRand returns a source seeded from the wall clock
func TimeSeededRand() Rand {
	return NewRand(time.Now().UnixNano())
}
