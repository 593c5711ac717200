// Package random provides the randomness port used for mesh selection
// during dungeon assembly.
package random

import (
	"crypto/rand"
	"math/big"
)

// Source is the randomness provider for mesh selection.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// cryptoSource implements Source using crypto/rand.
//
// Invariant: All values produced are uniformly distributed in [0, n) for
// any n > 0.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "random: Intn called with n <= 0" if n <= 0.
// Panics with "random: crypto/rand failure: <err>" if crypto/rand fails.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("random: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// Pick returns a uniformly-selected element of pool.
//
// Precondition: pool must be non-empty and src non-nil. Panics with
// "random: Pick called with empty pool" on an empty pool; callers are
// expected to have validated the pool first.
func Pick[T any](src Source, pool []T) T {
	if len(pool) == 0 {
		panic("random: Pick called with empty pool")
	}
	return pool[src.Intn(len(pool))]
}
