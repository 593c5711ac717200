package random

import (
	"math/rand"
	"sync"
)

// seededSource implements Source using a seeded math/rand generator guarded
// by a mutex, for reproducible dungeon assembly.
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource returns a Source producing the same sequence for the same
// seed. Use for deterministic assembly runs and tests; production assembly
// defaults to NewCryptoSource.
func NewSeededSource(seed int64) Source {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n) from the seeded sequence.
//
// Precondition: n > 0. Panics with "random: Intn called with n <= 0" if n <= 0.
func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
